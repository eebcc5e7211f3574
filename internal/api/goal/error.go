package goal

import "github.com/ademomeragic/budget-tracker-sub000/pkg/response"

var (
	ErrGoalNotFound        = response.NewError(404, "goal not found")
	ErrInvalidGoalType     = response.NewError(400, "invalid goal type")
	ErrInvalidTargetAmount = response.NewError(400, "goal target amount must be positive")
	ErrInvalidGoalName     = response.NewError(400, "goal name is required")
	ErrInvalidDateWindow   = response.NewError(400, "goal end date precedes start date")
	ErrInvalidDateFormat   = response.NewError(400, "invalid date format")
	ErrCreateGoal          = response.NewError(500, "failed to create goal")
	ErrUpdateGoal          = response.NewError(500, "failed to update goal")
	ErrDeleteGoal          = response.NewError(500, "failed to delete goal")
	ErrGoalNotOwned        = response.NewError(403, "goal does not belong to user")
)
