package scheduler

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Task is a periodic sweep such as approving testing updates.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs its tasks on their own intervals until the context ends.
type Scheduler struct {
	tasks   []Task
	running atomic.Bool
}

// NewScheduler creates a new scheduler
func NewScheduler(tasks ...Task) *Scheduler {
	return &Scheduler{tasks: tasks}
}

// Start runs every task once, then on its interval, and blocks until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.running.Store(true)
	defer s.running.Store(false)
	log.Printf("Scheduler started with %d tasks", len(s.tasks))

	var wg sync.WaitGroup
	for _, t := range s.tasks {
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()
			s.loop(ctx, t)
		}(t)
	}
	wg.Wait()
	log.Println("Scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) loop(ctx context.Context, t Task) {
	s.runTask(ctx, t)
	if t.Interval <= 0 {
		return
	}
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runTask(ctx, t)
		}
	}
}

func (s *Scheduler) runTask(ctx context.Context, t Task) {
	start := time.Now()
	if err := t.Run(ctx); err != nil {
		log.Printf("[scheduler] %s failed: %v", t.Name, err)
		return
	}
	log.Printf("[scheduler] %s done in %s", t.Name, time.Since(start).Round(time.Millisecond))
}

// RunOnce runs every task a single time, in order.
func (s *Scheduler) RunOnce(ctx context.Context) {
	for _, t := range s.tasks {
		s.runTask(ctx, t)
	}
}

// IsRunning returns if active
func (s *Scheduler) IsRunning() bool {
	return s.running.Load()
}

// Tasks lists the registered task names.
func (s *Scheduler) Tasks() []string {
	names := make([]string, 0, len(s.tasks))
	for _, t := range s.tasks {
		names = append(names, t.Name)
	}
	return names
}
