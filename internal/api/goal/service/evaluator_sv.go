package goalService

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/notification"
	notificationRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/notification/repository"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
)

// deadlineWindow is how close a goal's end date has to be before the
// deadline warning fires. Past-due goals stay inside the window.
const deadlineWindow = 72 * time.Hour

// EvaluateUser runs every threshold rule against the user's active,
// end-dated goals. A user without a preference row is skipped without
// error. A failure on any goal aborts the rest of the user's batch.
func (s *goalService) EvaluateUser(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	notifRepo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	prefs, err := notifRepo.Preference.GetPreferenceByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, notification.ErrPreferenceNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
			}).Debug("No notification preferences, skipping goal evaluation")
			return nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get notification preferences")
		return err
	}

	goalRepo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	goals, err := goalRepo.Goal.GetEvaluableGoalsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get evaluable goals")
		return err
	}

	return s.evaluateGoals(ctx, notifRepo, goals, prefs)
}

// EvaluateAllUsers sweeps every active, end-dated goal in the system,
// grouped per user. A failing user is logged and the sweep moves on to
// the next one.
func (s *goalService) EvaluateAllUsers(ctx context.Context) error {
	requestID := contextPkg.GetRequestID(ctx)

	goalRepo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	notifRepo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	goals, err := goalRepo.Goal.GetEvaluableGoals(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get evaluable goals")
		return err
	}

	for _, batch := range groupByUser(goals) {
		userID := batch[0].UserID

		prefs, err := notifRepo.Preference.GetPreferenceByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, notification.ErrPreferenceNotFound) {
				continue
			}
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
				"error":      err.Error(),
			}).Error("Failed to get notification preferences, skipping user")
			continue
		}

		if err := s.evaluateGoals(ctx, notifRepo, batch, prefs); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
				"error":      err.Error(),
			}).Error("Goal evaluation failed for user, continuing sweep")
		}
	}

	return nil
}

func (s *goalService) evaluateGoals(ctx context.Context, notifRepo notificationRepository.Client, goals []entity.Goal, prefs entity.NotificationPreference) error {
	now := time.Now()

	for _, g := range goals {
		if err := s.evaluateGoal(ctx, notifRepo, g, prefs, now); err != nil {
			return err
		}
	}

	return nil
}

// evaluateGoal applies the four threshold rules to a single goal. Rules
// are independent: one pass may emit several notifications for the same
// goal, and repeated passes over an unchanged goal emit again.
func (s *goalService) evaluateGoal(ctx context.Context, notifRepo notificationRepository.Client, g entity.Goal, prefs entity.NotificationPreference, now time.Time) error {
	requestID := contextPkg.GetRequestID(ctx)

	_, progress, err := s.calculateProgress(ctx, g)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"goal_id":    g.ID,
			"error":      err.Error(),
		}).Error("Failed to calculate goal progress")
		return err
	}

	if prefs.DeadlineWarning && g.EndDate != nil && g.EndDate.Sub(now) <= deadlineWindow {
		message := fmt.Sprintf("goal '%s' is nearing its deadline.", g.Name)
		if err := s.emitNotification(ctx, notifRepo, g.UserID, message); err != nil {
			return err
		}
	}

	threshold := float64(prefs.ThresholdPercent) / 100
	if prefs.NearLimitWarning && progress >= threshold && progress < 1.0 {
		message := fmt.Sprintf("you're over %d%% of your goal '%s'.", prefs.ThresholdPercent, g.Name)
		if err := s.emitNotification(ctx, notifRepo, g.UserID, message); err != nil {
			return err
		}
	}

	if progress >= 1.0 {
		switch g.Type {
		case string(entity.TransactionTypeExpense):
			if prefs.ExceededWarning {
				message := fmt.Sprintf("you've exceeded your expense goal '%s'.", g.Name)
				if err := s.emitNotification(ctx, notifRepo, g.UserID, message); err != nil {
					return err
				}
			}
		case string(entity.TransactionTypeIncome):
			if prefs.IncomeCongrats {
				message := fmt.Sprintf("congratulations, you've reached your income goal '%s'.", g.Name)
				if err := s.emitNotification(ctx, notifRepo, g.UserID, message); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// calculateProgress sums the transactions whose type matches the goal's
// and that fall inside the goal's category, wallet and date bounds, then
// divides by the target amount.
func (s *goalService) calculateProgress(ctx context.Context, g entity.Goal) (float64, float64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	txRepo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return 0, 0, err
	}

	dateFrom, dateTo := g.Window()
	currentAmount, err := txRepo.Transaction.SumByFilter(ctx, entity.TransactionFilter{
		UserID:     g.UserID,
		Type:       g.Type,
		CategoryID: g.CategoryID,
		WalletID:   g.WalletID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	})
	if err != nil {
		return 0, 0, err
	}

	return currentAmount, currentAmount / g.TargetAmount, nil
}

func (s *goalService) emitNotification(ctx context.Context, notifRepo notificationRepository.Client, userID string, message string) error {
	requestID := contextPkg.GetRequestID(ctx)

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	newNotification := entity.Notification{
		ID:        ULID,
		UserID:    userID,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := notifRepo.Notification.CreateNotification(ctx, newNotification); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to create notification")
		return err
	}

	return nil
}

// groupByUser splits goals into per-user batches. Input is ordered by
// user_id, so batches come out contiguous.
func groupByUser(goals []entity.Goal) [][]entity.Goal {
	var batches [][]entity.Goal

	for _, g := range goals {
		n := len(batches)
		if n > 0 && batches[n-1][0].UserID == g.UserID {
			batches[n-1] = append(batches[n-1], g)
			continue
		}
		batches = append(batches, []entity.Goal{g})
	}

	return batches
}
