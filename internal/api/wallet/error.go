package wallet

import "github.com/ademomeragic/budget-tracker-sub000/pkg/response"

var (
	ErrWalletNotFound    = response.NewError(404, "wallet not found")
	ErrInvalidWalletName = response.NewError(400, "wallet name is required")
	ErrInvalidCurrency   = response.NewError(400, "invalid currency code")
	ErrCreateWallet      = response.NewError(500, "failed to create wallet")
	ErrUpdateWallet      = response.NewError(500, "failed to update wallet")
	ErrDeleteWallet      = response.NewError(500, "failed to delete wallet")
	ErrWalletNotOwned    = response.NewError(403, "wallet does not belong to user")
)
