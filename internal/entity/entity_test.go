package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/goal"
	"github.com/ademomeragic/budget-tracker-sub000/internal/api/recurring"
	"github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction"
)

func TestGoalValidate(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	before := start.AddDate(0, 0, -1)

	tests := []struct {
		name    string
		goal    Goal
		wantErr error
	}{
		{
			name: "valid expense goal",
			goal: Goal{Name: "Groceries", Type: "expense", TargetAmount: 500, StartDate: &start, EndDate: &end},
		},
		{
			name: "valid income goal without dates",
			goal: Goal{Name: "Raise", Type: "income", TargetAmount: 1000},
		},
		{
			name:    "unknown type",
			goal:    Goal{Name: "Groceries", Type: "savings", TargetAmount: 500},
			wantErr: goal.ErrInvalidGoalType,
		},
		{
			name:    "zero target amount",
			goal:    Goal{Name: "Groceries", Type: "expense", TargetAmount: 0},
			wantErr: goal.ErrInvalidTargetAmount,
		},
		{
			name:    "negative target amount",
			goal:    Goal{Name: "Groceries", Type: "expense", TargetAmount: -50},
			wantErr: goal.ErrInvalidTargetAmount,
		},
		{
			name:    "missing name",
			goal:    Goal{Type: "expense", TargetAmount: 500},
			wantErr: goal.ErrInvalidGoalName,
		},
		{
			name:    "end date before start date",
			goal:    Goal{Name: "Groceries", Type: "expense", TargetAmount: 500, StartDate: &start, EndDate: &before},
			wantErr: goal.ErrInvalidDateWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransactionValidate(t *testing.T) {
	occurred := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name:        "valid expense",
			transaction: Transaction{Type: "expense", Amount: 12.50, WalletID: "w1", OccurredAt: occurred},
		},
		{
			name:        "unknown type",
			transaction: Transaction{Type: "transfer", Amount: 12.50, WalletID: "w1", OccurredAt: occurred},
			wantErr:     transaction.ErrInvalidTransactionType,
		},
		{
			name:        "non-positive amount",
			transaction: Transaction{Type: "income", Amount: 0, WalletID: "w1", OccurredAt: occurred},
			wantErr:     transaction.ErrInvalidAmount,
		},
		{
			name:        "missing wallet",
			transaction: Transaction{Type: "income", Amount: 10, OccurredAt: occurred},
			wantErr:     transaction.ErrInvalidWallet,
		},
		{
			name:        "zero occurrence time",
			transaction: Transaction{Type: "income", Amount: 10, WalletID: "w1"},
			wantErr:     transaction.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecurringTransactionValidate(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)
	after := start.AddDate(0, 6, 0)

	tests := []struct {
		name      string
		recurring RecurringTransaction
		wantErr   error
	}{
		{
			name:      "valid monthly template",
			recurring: RecurringTransaction{Type: "expense", Frequency: "monthly", Amount: 25, WalletID: "w1", StartDate: start, EndDate: &after},
		},
		{
			name:      "unknown frequency",
			recurring: RecurringTransaction{Type: "expense", Frequency: "fortnightly", Amount: 25, WalletID: "w1", StartDate: start},
			wantErr:   recurring.ErrInvalidFrequency,
		},
		{
			name:      "unknown type",
			recurring: RecurringTransaction{Type: "transfer", Frequency: "daily", Amount: 25, WalletID: "w1", StartDate: start},
			wantErr:   recurring.ErrInvalidRecurringType,
		},
		{
			name:      "non-positive amount",
			recurring: RecurringTransaction{Type: "expense", Frequency: "daily", Amount: -1, WalletID: "w1", StartDate: start},
			wantErr:   recurring.ErrInvalidRecurringAmount,
		},
		{
			name:      "missing wallet",
			recurring: RecurringTransaction{Type: "expense", Frequency: "daily", Amount: 25, StartDate: start},
			wantErr:   recurring.ErrInvalidRecurringWallet,
		},
		{
			name:      "end date before start date",
			recurring: RecurringTransaction{Type: "expense", Frequency: "daily", Amount: 25, WalletID: "w1", StartDate: start, EndDate: &before},
			wantErr:   recurring.ErrInvalidRecurringWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recurring.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsValidTransactionType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "income", in: "income", want: true},
		{name: "expense", in: "expense", want: true},
		{name: "empty", in: "", want: false},
		{name: "uppercase", in: "Income", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTransactionType(tt.in); got != tt.want {
				t.Errorf("IsValidTransactionType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
