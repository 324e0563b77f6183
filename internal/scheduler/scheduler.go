// Package scheduler runs maintenance jobs on fixed intervals through a worker pool.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/BabyBank_Go/internal/logger"
	"github.com/osse101/BabyBank_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) error
}

type entry struct {
	name     string
	interval time.Duration
	job      worker.Job
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool    Enqueuer
	entries []entry
	quit    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
	started bool
}

// New creates a scheduler that hands jobs to pool
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers job to run every interval once Start is called.
// Non-positive intervals disable the job.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	if interval <= 0 {
		logger.FromContext(context.Background()).Info(LogMsgJobDisabled, "job", name)
		return
	}
	s.entries = append(s.entries, entry{name: name, interval: interval, job: job})
}

// Start launches a ticker per registered job
func (s *Scheduler) Start() {
	if s.started {
		return
	}
	s.started = true
	for _, e := range s.entries {
		s.wg.Add(1)
		go s.loop(e)
	}
}

func (s *Scheduler) loop(e entry) {
	defer s.wg.Done()
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	log := logger.FromContext(context.Background())
	log.Info(LogMsgJobScheduled, "job", e.name, "interval", e.interval)

	for {
		select {
		case <-ticker.C:
			// a full queue skips this tick rather than stalling the ticker
			if err := s.pool.TryEnqueue(e.job); err != nil {
				if errors.Is(err, worker.ErrPoolStopped) {
					return
				}
				log.Warn(LogMsgJobSkipped, "job", e.name, "error", err)
			}
		case <-s.quit:
			return
		}
	}
}

// Stop stops all scheduled jobs and waits for their tickers to exit
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
