package transaction

import "github.com/ademomeragic/budget-tracker-sub000/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidAmount          = response.NewError(400, "invalid transaction amount")
	ErrInvalidWallet          = response.NewError(400, "transaction wallet is required")
	ErrInvalidDate            = response.NewError(400, "invalid transaction date")
	ErrCreateTransaction      = response.NewError(500, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(500, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(500, "failed to delete transaction")
	ErrTransactionNotOwned    = response.NewError(403, "transaction does not belong to user")
)
