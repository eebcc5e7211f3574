package category

import "github.com/ademomeragic/budget-tracker-sub000/pkg/response"

var (
	ErrCategoryNotFound    = response.NewError(404, "category not found")
	ErrInvalidCategoryName = response.NewError(400, "category name is required")
	ErrInvalidCategoryType = response.NewError(400, "invalid category type")
	ErrCreateCategory      = response.NewError(500, "failed to create category")
	ErrUpdateCategory      = response.NewError(500, "failed to update category")
	ErrDeleteCategory      = response.NewError(500, "failed to delete category")
	ErrCategoryNotOwned    = response.NewError(403, "category does not belong to user")
)
