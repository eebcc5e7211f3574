package entity

import (
	"time"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	WalletID    string    `json:"wallet_id"`
	CategoryID  string    `json:"category_id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return transaction.ErrInvalidTransactionType
	}

	if t.Amount <= 0 {
		return transaction.ErrInvalidAmount
	}

	if t.WalletID == "" {
		return transaction.ErrInvalidWallet
	}

	if t.OccurredAt.IsZero() {
		return transaction.ErrInvalidDate
	}

	return nil
}

// TransactionFilter narrows the transaction sum used for goal progress.
// Nil pointer fields leave the corresponding dimension unconstrained.
type TransactionFilter struct {
	UserID     string
	Type       string
	CategoryID *string
	WalletID   *string
	DateFrom   *time.Time
	DateTo     *time.Time
}
