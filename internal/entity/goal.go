package entity

import (
	"time"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/goal"
)

type Goal struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	TargetAmount float64    `json:"target_amount"`
	CategoryID   *string    `json:"category_id,omitempty"`
	WalletID     *string    `json:"wallet_id,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (g *Goal) Validate() error {
	if !IsValidTransactionType(g.Type) {
		return goal.ErrInvalidGoalType
	}

	if g.TargetAmount <= 0 {
		return goal.ErrInvalidTargetAmount
	}

	if g.Name == "" {
		return goal.ErrInvalidGoalName
	}

	if g.StartDate != nil && g.EndDate != nil && g.EndDate.Before(*g.StartDate) {
		return goal.ErrInvalidDateWindow
	}

	return nil
}

// Window returns the inclusive date bounds matching transactions contribute
// within. Either bound may be nil for an open-ended window.
func (g *Goal) Window() (*time.Time, *time.Time) {
	return g.StartDate, g.EndDate
}
