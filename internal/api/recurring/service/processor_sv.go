package recurringService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
)

// ProcessDue materializes every due recurring template into a real
// transaction through the transaction service, so wallet balances and
// goal evaluation follow as for a hand-entered transaction. A failing
// template is logged and the pass continues.
func (s *recurringService) ProcessDue(ctx context.Context) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.recurringRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	templates, err := repo.Recurring.GetActiveRecurring(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get active recurring transactions")
		return err
	}

	now := time.Now()
	for _, template := range templates {
		if !isDue(template, now) {
			continue
		}

		if err := s.materialize(ctx, template, now); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":   requestID,
				"recurring_id": template.ID,
				"error":        err.Error(),
			}).Error("Failed to materialize recurring transaction, continuing")
			continue
		}

		if err := repo.Recurring.UpdateLastExecution(ctx, template.ID, now); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":   requestID,
				"recurring_id": template.ID,
				"error":        err.Error(),
			}).Error("Failed to record recurring execution time")
		}
	}

	return nil
}

func (s *recurringService) materialize(ctx context.Context, template entity.RecurringTransaction, now time.Time) error {
	return s.transactionService.CreateTransaction(ctx, transaction.CreateTransactionRequest{
		UserID:      template.UserID,
		WalletID:    template.WalletID,
		CategoryID:  template.CategoryID,
		Type:        template.Type,
		Amount:      template.Amount,
		Description: template.Description,
		OccurredAt:  now.Format(time.RFC3339),
	})
}

// isDue reports whether a template's next occurrence has arrived. A
// template that never ran is due once its start date passes.
func isDue(template entity.RecurringTransaction, now time.Time) bool {
	if template.LastExecutedAt == nil {
		return !now.Before(template.StartDate)
	}

	return !now.Before(nextOccurrence(template.Frequency, *template.LastExecutedAt))
}

func nextOccurrence(frequency string, last time.Time) time.Time {
	switch entity.RecurringFrequency(frequency) {
	case entity.RecurringDaily:
		return last.AddDate(0, 0, 1)
	case entity.RecurringWeekly:
		return last.AddDate(0, 0, 7)
	case entity.RecurringMonthly:
		return last.AddDate(0, 1, 0)
	case entity.RecurringYearly:
		return last.AddDate(1, 0, 0)
	default:
		// Unknown frequencies never come due.
		return last.AddDate(100, 0, 0)
	}
}
