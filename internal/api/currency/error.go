package currency

import "github.com/ademomeragic/budget-tracker-sub000/pkg/response"

var (
	ErrCurrencyNotFound   = response.NewError(404, "currency not found")
	ErrInvalidAmountParam = response.NewError(400, "invalid amount parameter")
	ErrRatesUnavailable   = response.NewError(502, "exchange rates unavailable")
)
