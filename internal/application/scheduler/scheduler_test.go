package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewScheduler(t *testing.T) {
	sched := NewScheduler(
		Task{Name: "approve_testing", Interval: time.Hour, Run: func(context.Context) error { return nil }},
		Task{Name: "expire_overrides", Interval: time.Hour, Run: func(context.Context) error { return nil }},
	)

	assert.False(t, sched.IsRunning())
	assert.Equal(t, []string{"approve_testing", "expire_overrides"}, sched.Tasks())
}

func TestRunOnce(t *testing.T) {
	var order []string
	sched := NewScheduler(
		Task{Name: "first", Run: func(context.Context) error {
			order = append(order, "first")
			return errors.New("boom")
		}},
		Task{Name: "second", Run: func(context.Context) error {
			order = append(order, "second")
			return nil
		}},
	)

	sched.RunOnce(context.Background())
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestStart_RunsImmediatelyAndStopsOnCancel(t *testing.T) {
	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	sched := NewScheduler(Task{Name: "sweep", Interval: time.Hour, Run: func(context.Context) error {
		runs.Add(1)
		cancel()
		return nil
	}})

	done := make(chan error, 1)
	go func() { done <- sched.Start(ctx) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Equal(t, int32(1), runs.Load())
	assert.False(t, sched.IsRunning())
}
