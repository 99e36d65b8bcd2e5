package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/worker"
)

func stopPool(t *testing.T, pool *worker.Pool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, pool.Stop(ctx))
}

func TestScheduler_RunsRepeatedly(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer stopPool(t, pool)

	sched := New(pool)
	defer sched.Stop()

	done := make(chan struct{}, 10)
	sched.Schedule("tick", 10*time.Millisecond, worker.JobFunc(func(ctx context.Context) error {
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	}))

	timeout := time.After(time.Second)
	for runs := 0; runs < 2; {
		select {
		case <-done:
			runs++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}
}

func TestScheduler_SkipsWhilePending(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer stopPool(t, pool)

	sched := New(pool)

	var started atomic.Int32
	release := make(chan struct{})
	sched.Schedule("slow", 5*time.Millisecond, worker.JobFunc(func(ctx context.Context) error {
		started.Add(1)
		<-release
		return nil
	}))

	time.Sleep(60 * time.Millisecond)
	sched.Stop()
	close(release)

	assert.Equal(t, int32(1), started.Load(), "overlapping ticks must not queue another run")
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start()
	defer stopPool(t, pool)

	sched := New(pool)
	sched.Schedule("noop", time.Hour, worker.JobFunc(func(ctx context.Context) error { return nil }))
	sched.Stop()
	sched.Stop()
}
