package transaction

type CreateTransactionRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	WalletID    string  `json:"wallet_id" validate:"required"`
	CategoryID  string  `json:"category_id" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	OccurredAt  string  `json:"occurred_at" validate:"required"`
}

type UpdateTransactionRequest struct {
	ID          string  `json:"id" validate:"required"`
	UserID      string  `json:"user_id" validate:"required"`
	WalletID    string  `json:"wallet_id" validate:"required"`
	CategoryID  string  `json:"category_id" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	OccurredAt  string  `json:"occurred_at" validate:"required"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	WalletID    string  `json:"wallet_id"`
	CategoryID  string  `json:"category_id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	OccurredAt  string  `json:"occurred_at"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  float64               `json:"total_income"`
	TotalExpense float64               `json:"total_expense"`
	Balance      float64               `json:"balance"`
}
