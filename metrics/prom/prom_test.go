// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package prom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestAdapterForwardsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := New(reg, "coredd", "test", nil)

	a.Hit()
	a.Hit()
	a.Miss()
	a.Filtered()
	a.Discarded()
	a.Rehash()
	a.UniqueSize(7)
	a.CacheSize(3)

	require.Equal(t, float64(2), counterValue(t, a.hits))
	require.Equal(t, float64(1), counterValue(t, a.misses))
	require.Equal(t, float64(1), counterValue(t, a.filtered))
	require.Equal(t, float64(1), counterValue(t, a.discarded))
	require.Equal(t, float64(1), counterValue(t, a.rehashes))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}
