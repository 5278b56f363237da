package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisters(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := New(reg)
	m.Generations.Add(3)
	m.Cycling.Set(1)

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Generations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Cycling))
}

func TestNewWithoutRegistry(t *testing.T) {
	m := New(nil)
	m.Frames.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Frames))
}
