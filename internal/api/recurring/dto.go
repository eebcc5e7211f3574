package recurring

type CreateRecurringRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	WalletID    string  `json:"wallet_id" validate:"required"`
	CategoryID  string  `json:"category_id" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	Frequency   string  `json:"frequency" validate:"required,oneof=daily weekly monthly yearly"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     *string `json:"end_date,omitempty"`
}

type UpdateRecurringRequest struct {
	ID          string  `json:"id" validate:"required"`
	UserID      string  `json:"user_id" validate:"required"`
	WalletID    string  `json:"wallet_id" validate:"required"`
	CategoryID  string  `json:"category_id" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	Frequency   string  `json:"frequency" validate:"required,oneof=daily weekly monthly yearly"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     *string `json:"end_date,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type RecurringResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	WalletID       string  `json:"wallet_id"`
	CategoryID     string  `json:"category_id"`
	Type           string  `json:"type"`
	Amount         float64 `json:"amount"`
	Description    string  `json:"description"`
	Frequency      string  `json:"frequency"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
	LastExecutedAt *string `json:"last_executed_at,omitempty"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}
