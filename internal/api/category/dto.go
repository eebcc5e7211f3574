package category

type CreateCategoryRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type" validate:"required,oneof=income expense"`
}

type UpdateCategoryRequest struct {
	ID     string `json:"id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type" validate:"required,oneof=income expense"`
}

type CategoryResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
