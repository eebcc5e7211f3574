package goalService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/goal"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
)

func (s *goalService) CreateGoal(ctx context.Context, req goal.CreateGoalRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"start_date": req.StartDate,
		}).Warn("Invalid goal start date")
		return goal.ErrInvalidDateFormat
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"end_date":   req.EndDate,
		}).Warn("Invalid goal end date")
		return goal.ErrInvalidDateFormat
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	newGoal := entity.Goal{
		ID:           ULID,
		UserID:       req.UserID,
		Name:         req.Name,
		Type:         req.Type,
		TargetAmount: req.TargetAmount,
		CategoryID:   req.CategoryID,
		WalletID:     req.WalletID,
		StartDate:    startDate,
		EndDate:      endDate,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := newGoal.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid goal data")
		return err
	}

	if err := repo.Goal.CreateGoal(ctx, newGoal); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create goal")
		return goal.ErrCreateGoal
	}

	// A freshly created goal may already sit past one of its thresholds.
	if err := s.EvaluateUser(ctx, req.UserID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		}).Error("Goal evaluation after create failed")
	}

	return nil
}

func (s *goalService) GetGoalByID(ctx context.Context, id string, userID string) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Goal{}, err
	}

	existingGoal, err := repo.Goal.GetGoalByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get goal by ID")
		return entity.Goal{}, err
	}

	if existingGoal.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"goal_user_id":    existingGoal.UserID,
			"request_user_id": userID,
		}).Warn("Goal does not belong to user")
		return entity.Goal{}, goal.ErrGoalNotOwned
	}

	return existingGoal, nil
}

func (s *goalService) GetGoalsByUserID(ctx context.Context, userID string) ([]entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	goals, err := repo.Goal.GetGoalsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get goals by user ID")
		return nil, err
	}

	return goals, nil
}

func (s *goalService) GetGoalProgress(ctx context.Context, id string, userID string) (goal.GoalProgressResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	existingGoal, err := s.GetGoalByID(ctx, id, userID)
	if err != nil {
		return goal.GoalProgressResponse{}, err
	}

	currentAmount, progress, err := s.calculateProgress(ctx, existingGoal)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"goal_id":    id,
			"error":      err.Error(),
		}).Error("Failed to calculate goal progress")
		return goal.GoalProgressResponse{}, err
	}

	return makeGoalProgressResponse(existingGoal, currentAmount, progress), nil
}

func (s *goalService) UpdateGoal(ctx context.Context, req goal.UpdateGoalRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existingGoal, err := repo.Goal.GetGoalByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get existing goal")
		return err
	}

	if existingGoal.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"goal_user_id":    existingGoal.UserID,
			"request_user_id": req.UserID,
		}).Warn("Goal does not belong to user")
		return goal.ErrGoalNotOwned
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"start_date": req.StartDate,
		}).Warn("Invalid goal start date")
		return goal.ErrInvalidDateFormat
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"end_date":   req.EndDate,
		}).Warn("Invalid goal end date")
		return goal.ErrInvalidDateFormat
	}

	isActive := existingGoal.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	updatedGoal := entity.Goal{
		ID:           req.ID,
		UserID:       req.UserID,
		Name:         req.Name,
		Type:         req.Type,
		TargetAmount: req.TargetAmount,
		CategoryID:   req.CategoryID,
		WalletID:     req.WalletID,
		StartDate:    startDate,
		EndDate:      endDate,
		IsActive:     isActive,
		UpdatedAt:    time.Now(),
	}

	if err := updatedGoal.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid goal data")
		return err
	}

	if err := repo.Goal.UpdateGoal(ctx, updatedGoal); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update goal")
		return goal.ErrUpdateGoal
	}

	if err := s.EvaluateUser(ctx, req.UserID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		}).Error("Goal evaluation after update failed")
	}

	return nil
}

func (s *goalService) DeleteGoal(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existingGoal, err := repo.Goal.GetGoalByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing goal")
		return err
	}

	if existingGoal.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"goal_user_id":    existingGoal.UserID,
			"request_user_id": userID,
		}).Warn("Goal does not belong to user")
		return goal.ErrGoalNotOwned
	}

	if err := repo.Goal.DeleteGoal(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete goal")
		return goal.ErrDeleteGoal
	}

	return nil
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	if parsed, err := time.Parse(time.RFC3339, *value); err == nil {
		return &parsed, nil
	}

	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func makeGoalResponse(g entity.Goal) goal.GoalResponse {
	res := goal.GoalResponse{
		ID:           g.ID,
		UserID:       g.UserID,
		Name:         g.Name,
		Type:         g.Type,
		TargetAmount: g.TargetAmount,
		CategoryID:   g.CategoryID,
		WalletID:     g.WalletID,
		IsActive:     g.IsActive,
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    g.UpdatedAt.Format(time.RFC3339),
	}

	if g.StartDate != nil {
		startDate := g.StartDate.Format(time.RFC3339)
		res.StartDate = &startDate
	}
	if g.EndDate != nil {
		endDate := g.EndDate.Format(time.RFC3339)
		res.EndDate = &endDate
	}

	return res
}

func makeGoalProgressResponse(g entity.Goal, currentAmount float64, progress float64) goal.GoalProgressResponse {
	return goal.GoalProgressResponse{
		GoalResponse:  makeGoalResponse(g),
		CurrentAmount: currentAmount,
		Progress:      progress,
	}
}
