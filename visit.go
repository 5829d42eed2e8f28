// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

// Visit applies visitor to the alternative stored in v. §4.4 describes
// this as a lookup into a precomputed jump table indexed by the
// discriminant; the idiomatic Go equivalent, per the "Jump tables for
// variant dispatch" design note, is to let visitor type-switch on its
// argument and have the compiler generate the equivalent table.
func Visit[R any](v Variant, visitor func(Alternative) R) R {
	return visitor(v.Raw())
}

// BinaryVisit applies visitor to the pair of alternatives stored in x and
// y. When x and y hold different alternatives, visitor is responsible for
// providing a fall-through case in its type switch; if it has none, a
// missing case falls through to the switch's default and is the caller's
// contract violation to avoid, per §4.4.
func BinaryVisit[R any](x, y Variant, visitor func(a, b Alternative) R) R {
	return visitor(x.Raw(), y.Raw())
}

// VisitHandle is Visit applied to the variant stored behind a Handle.
func VisitHandle[R any](h Handle[Variant], visitor func(Alternative) R) R {
	return Visit(h.Value(), visitor)
}

// BinaryVisitHandle is BinaryVisit applied to the variants stored behind
// two Handles.
func BinaryVisitHandle[R any](x, y Handle[Variant], visitor func(a, b Alternative) R) R {
	return BinaryVisit(x.Value(), y.Value(), visitor)
}
