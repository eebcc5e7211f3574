package recurring

import "github.com/ademomeragic/budget-tracker-sub000/pkg/response"

var (
	ErrRecurringNotFound      = response.NewError(404, "recurring transaction not found")
	ErrInvalidRecurringType   = response.NewError(400, "invalid recurring transaction type")
	ErrInvalidFrequency       = response.NewError(400, "invalid recurring frequency")
	ErrInvalidRecurringAmount = response.NewError(400, "invalid recurring transaction amount")
	ErrInvalidRecurringWallet = response.NewError(400, "recurring transaction wallet is required")
	ErrInvalidRecurringWindow = response.NewError(400, "recurring end date must not precede start date")
	ErrCreateRecurring        = response.NewError(500, "failed to create recurring transaction")
	ErrUpdateRecurring        = response.NewError(500, "failed to update recurring transaction")
	ErrDeleteRecurring        = response.NewError(500, "failed to delete recurring transaction")
	ErrRecurringNotOwned      = response.NewError(403, "recurring transaction does not belong to user")
)
