package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/CraftPlanner_Go/internal/logger"
	"github.com/osse101/CraftPlanner_Go/internal/worker"
)

// LogMsgTickSkipped is logged when a job is still queued or running at its next tick
const LogMsgTickSkipped = "Scheduled job still pending, skipping tick"

// Scheduler runs jobs at fixed intervals on a worker pool
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. A tick is skipped while
// the previous run of the same job has not finished.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	var pending atomic.Bool
	run := worker.JobFunc(func(ctx context.Context) error {
		defer pending.Store(false)
		return job.Process(ctx)
	})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !pending.CompareAndSwap(false, true) {
					logger.FromContext(context.Background()).Debug(LogMsgTickSkipped, "job", name)
					continue
				}
				if !s.workerPool.Enqueue(run) {
					pending.Store(false)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. Runs already enqueued are left to the pool.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
