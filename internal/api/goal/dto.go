package goal

type CreateGoalRequest struct {
	UserID       string  `json:"user_id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Type         string  `json:"type" validate:"required,oneof=income expense"`
	TargetAmount float64 `json:"target_amount" validate:"required,gt=0"`
	CategoryID   *string `json:"category_id,omitempty"`
	WalletID     *string `json:"wallet_id,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
}

type UpdateGoalRequest struct {
	ID           string  `json:"id" validate:"required"`
	UserID       string  `json:"user_id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Type         string  `json:"type" validate:"required,oneof=income expense"`
	TargetAmount float64 `json:"target_amount" validate:"required,gt=0"`
	CategoryID   *string `json:"category_id,omitempty"`
	WalletID     *string `json:"wallet_id,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type GoalResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	TargetAmount float64 `json:"target_amount"`
	CategoryID   *string `json:"category_id,omitempty"`
	WalletID     *string `json:"wallet_id,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type GoalProgressResponse struct {
	GoalResponse
	CurrentAmount float64 `json:"current_amount"`
	Progress      float64 `json:"progress"`
}
