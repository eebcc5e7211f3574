package notification

type NotificationResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

type UpdatePreferenceRequest struct {
	UserID           string `json:"user_id" validate:"required"`
	DeadlineWarning  bool   `json:"deadline_warning"`
	NearLimitWarning bool   `json:"near_limit_warning"`
	ExceededWarning  bool   `json:"exceeded_warning"`
	IncomeCongrats   bool   `json:"income_congrats"`
	ThresholdPercent int    `json:"threshold_percent" validate:"gte=0,lte=100"`
}

type PreferenceResponse struct {
	UserID           string `json:"user_id"`
	DeadlineWarning  bool   `json:"deadline_warning"`
	NearLimitWarning bool   `json:"near_limit_warning"`
	ExceededWarning  bool   `json:"exceeded_warning"`
	IncomeCongrats   bool   `json:"income_congrats"`
	ThresholdPercent int    `json:"threshold_percent"`
}
