package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	goalService "github.com/ademomeragic/budget-tracker-sub000/internal/api/goal/service"
	recurringService "github.com/ademomeragic/budget-tracker-sub000/internal/api/recurring/service"
)

const (
	DefaultEvaluationInterval = time.Hour
	DefaultRecurringInterval  = time.Hour
)

// Scheduler drives the periodic background work: the goal evaluation
// sweep and the recurring transaction processor. Each loop runs an
// initial pass immediately, then ticks at its interval until the
// context is cancelled. A failing iteration is logged and the loop
// keeps going.
type Scheduler struct {
	log                *logrus.Logger
	goalEvaluator      goalService.IGoalEvaluator
	recurringProcessor recurringService.IRecurringProcessor
	evaluationInterval time.Duration
	recurringInterval  time.Duration
}

func New(
	log *logrus.Logger,
	evaluator goalService.IGoalEvaluator,
	processor recurringService.IRecurringProcessor,
	evaluationInterval time.Duration,
	recurringInterval time.Duration,
) *Scheduler {
	if evaluationInterval <= 0 {
		evaluationInterval = DefaultEvaluationInterval
	}
	if recurringInterval <= 0 {
		recurringInterval = DefaultRecurringInterval
	}

	return &Scheduler{
		log:                log,
		goalEvaluator:      evaluator,
		recurringProcessor: processor,
		evaluationInterval: evaluationInterval,
		recurringInterval:  recurringInterval,
	}
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	done := make(chan struct{}, 2)

	go func() {
		s.loop(ctx, "goal_evaluation", s.evaluationInterval, s.goalEvaluator.EvaluateAllUsers)
		done <- struct{}{}
	}()

	go func() {
		s.loop(ctx, "recurring_processing", s.recurringInterval, s.recurringProcessor.ProcessDue)
		done <- struct{}{}
	}()

	<-done
	<-done
}

func (s *Scheduler) loop(ctx context.Context, name string, interval time.Duration, iterate func(ctx context.Context) error) {
	s.log.WithFields(logrus.Fields{
		"loop":     name,
		"interval": interval.String(),
	}).Info("Scheduler loop started")

	s.runOnce(ctx, name, iterate)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.WithFields(logrus.Fields{
				"loop": name,
			}).Info("Scheduler loop stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx, name, iterate)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, name string, iterate func(ctx context.Context) error) {
	started := time.Now()

	if err := iterate(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"loop":  name,
			"error": err.Error(),
		}).Error("Scheduler iteration failed")
		return
	}

	s.log.WithFields(logrus.Fields{
		"loop":     name,
		"duration": time.Since(started).String(),
	}).Debug("Scheduler iteration completed")
}
