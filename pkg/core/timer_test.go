package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedStepShouldStep(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	assert.True(t, fs.ShouldStep(), "first tick is due immediately")
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(50 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(50 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
}

func TestFixedStepFallback(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/60, fs.Interval())
	fs.SetTPS(4)
	assert.Equal(t, 250*time.Millisecond, fs.Interval())
}

func TestFixedStepWait(t *testing.T) {
	fs := NewFixedStep(1000)
	require.NoError(t, fs.Wait(context.Background()))
	require.NoError(t, fs.Wait(context.Background()))

	slow := NewFixedStep(1)
	require.NoError(t, slow.Wait(context.Background()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, slow.Wait(ctx), context.Canceled)
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(11), NewRNG(11)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Bool(), b.Bool())
	}
}
