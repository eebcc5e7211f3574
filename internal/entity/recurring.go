package entity

import (
	"time"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/recurring"
)

type RecurringFrequency string

const (
	RecurringDaily   RecurringFrequency = "daily"
	RecurringWeekly  RecurringFrequency = "weekly"
	RecurringMonthly RecurringFrequency = "monthly"
	RecurringYearly  RecurringFrequency = "yearly"
)

func IsValidRecurringFrequency(frequency string) bool {
	switch RecurringFrequency(frequency) {
	case RecurringDaily, RecurringWeekly, RecurringMonthly, RecurringYearly:
		return true
	default:
		return false
	}
}

type RecurringTransaction struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	WalletID       string     `json:"wallet_id"`
	CategoryID     string     `json:"category_id"`
	Type           string     `json:"type"`
	Amount         float64    `json:"amount"`
	Description    string     `json:"description"`
	Frequency      string     `json:"frequency"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	LastExecutedAt *time.Time `json:"last_executed_at,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (r *RecurringTransaction) Validate() error {
	if !IsValidTransactionType(r.Type) {
		return recurring.ErrInvalidRecurringType
	}

	if !IsValidRecurringFrequency(r.Frequency) {
		return recurring.ErrInvalidFrequency
	}

	if r.Amount <= 0 {
		return recurring.ErrInvalidRecurringAmount
	}

	if r.WalletID == "" {
		return recurring.ErrInvalidRecurringWallet
	}

	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return recurring.ErrInvalidRecurringWindow
	}

	return nil
}
