package entity

import "time"

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationPreference gates which goal evaluation rules may emit
// notifications for a user. ThresholdPercent drives the near-limit rule.
type NotificationPreference struct {
	UserID           string    `json:"user_id"`
	DeadlineWarning  bool      `json:"deadline_warning"`
	NearLimitWarning bool      `json:"near_limit_warning"`
	ExceededWarning  bool      `json:"exceeded_warning"`
	IncomeCongrats   bool      `json:"income_congrats"`
	ThresholdPercent int       `json:"threshold_percent"`
	UpdatedAt        time.Time `json:"updated_at"`
}
