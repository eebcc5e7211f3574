package scheduler

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type countingEvaluator struct {
	calls int64
	err   error
}

func (c *countingEvaluator) EvaluateUser(_ context.Context, _ string) error { return nil }

func (c *countingEvaluator) EvaluateAllUsers(_ context.Context) error {
	atomic.AddInt64(&c.calls, 1)
	return c.err
}

type countingProcessor struct {
	calls int64
	err   error
}

func (c *countingProcessor) ProcessDue(_ context.Context) error {
	atomic.AddInt64(&c.calls, 1)
	return c.err
}

func TestSchedulerRunsBothLoopsAndStopsOnCancel(t *testing.T) {
	evaluator := &countingEvaluator{}
	processor := &countingProcessor{}

	s := New(newTestLogger(), evaluator, processor, 10*time.Millisecond, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after context cancellation")
	}

	if got := atomic.LoadInt64(&evaluator.calls); got < 1 {
		t.Errorf("EvaluateAllUsers calls = %d, want at least 1", got)
	}
	if got := atomic.LoadInt64(&processor.calls); got < 1 {
		t.Errorf("ProcessDue calls = %d, want at least 1", got)
	}
}

func TestSchedulerSurvivesIterationErrors(t *testing.T) {
	evaluator := &countingEvaluator{err: errors.New("sweep failed")}
	processor := &countingProcessor{err: errors.New("pass failed")}

	s := New(newTestLogger(), evaluator, processor, 10*time.Millisecond, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	if got := atomic.LoadInt64(&evaluator.calls); got < 2 {
		t.Errorf("EvaluateAllUsers calls = %d, want loop to keep ticking past errors", got)
	}
	if got := atomic.LoadInt64(&processor.calls); got < 2 {
		t.Errorf("ProcessDue calls = %d, want loop to keep ticking past errors", got)
	}
}

func TestSchedulerDefaultsNonPositiveIntervals(t *testing.T) {
	s := New(newTestLogger(), &countingEvaluator{}, &countingProcessor{}, 0, -time.Minute)

	if s.evaluationInterval != DefaultEvaluationInterval {
		t.Errorf("evaluationInterval = %v, want %v", s.evaluationInterval, DefaultEvaluationInterval)
	}
	if s.recurringInterval != DefaultRecurringInterval {
		t.Errorf("recurringInterval = %v, want %v", s.recurringInterval, DefaultRecurringInterval)
	}
}
