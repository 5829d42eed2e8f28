// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type unicityTestValue int

//********************************************************************************************

func TestUnicityMakeUnifiesAndReclaims(t *testing.T) {
	u := NewUnicity[unicityTestValue](
		func(a, b unicityTestValue) bool { return a == b },
		func(a unicityTestValue) uint64 { return uint64(a) },
		nil,
	)
	defer u.Close()

	h1 := u.Make(9)
	h2 := u.Make(9)
	require.True(t, h1.Equal(h2), "equal values must unify to the same cell")
	require.Equal(t, 1, u.UniqueTableStats().Size)

	h1.Release()
	require.Equal(t, 1, u.UniqueTableStats().Size, "one live handle remains")
	h2.Release()
	require.Equal(t, 0, u.UniqueTableStats().Size, "no handles remain")
}

//********************************************************************************************

func TestUnicityDuplicateConstructionPanics(t *testing.T) {
	u := NewUnicity[unicityTestValue](
		func(a, b unicityTestValue) bool { return a == b },
		func(a unicityTestValue) uint64 { return uint64(a) },
		nil,
	)
	defer u.Close()

	require.Panics(t, func() {
		NewUnicity[unicityTestValue](
			func(a, b unicityTestValue) bool { return a == b },
			func(a unicityTestValue) uint64 { return uint64(a) },
			nil,
		)
	})
}
