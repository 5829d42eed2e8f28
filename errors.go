// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

import "errors"

// ErrDuplicateHandler is the sentinel coredd panics with. Every other
// contract violation (double release, erasing an absent element, a zero
// alternative Tag) panics with a plain string instead, matching
// the split rudd makes between b.error (recoverable) and log.Panicf
// (programmer error) in hkernel.go; this one gets a proper sentinel because
// callers reasonably want to check for it specifically (see
// handle_test.go's require.PanicsWithValue).
var ErrDuplicateHandler = errors.New("coredd: deletion handler already installed for this type")
