package bootstrap

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type proberFunc func(ctx context.Context) bool

func (f proberFunc) Probe(ctx context.Context) bool { return f(ctx) }

func TestBootstrap_ProbeRunsExactlyOnce(t *testing.T) {
	var calls atomic.Int32
	b := New(proberFunc(func(ctx context.Context) bool {
		calls.Add(1)
		return false
	}))

	ctx := context.Background()
	b.Start(ctx)
	b.Start(ctx)
	b.Start(ctx)

	require.NoError(t, b.Wait(ctx))
	assert.Equal(t, int32(1), calls.Load())
}

func TestBootstrap_StartDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	b := New(proberFunc(func(ctx context.Context) bool {
		<-release
		return true
	}))

	done := make(chan struct{})
	go func() {
		b.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start blocked on the probe")
	}
	close(release)
	require.NoError(t, b.Wait(context.Background()))
}

func TestBootstrap_WaitHonorsContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	b := New(proberFunc(func(ctx context.Context) bool {
		<-release
		return false
	}))
	b.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := b.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
