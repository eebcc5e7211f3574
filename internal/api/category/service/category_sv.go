package categoryService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/category"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
)

func (s *categoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if !entity.IsValidTransactionType(req.Type) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
		}).Warn("Invalid category type")
		return category.ErrInvalidCategoryType
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	newCategory := entity.Category{
		ID:        ULID,
		UserID:    req.UserID,
		Name:      req.Name,
		Type:      req.Type,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.Category.CreateCategory(ctx, newCategory); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category")
		return category.ErrCreateCategory
	}

	return nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string, userID string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, err
	}

	existingCategory, err := repo.Category.GetCategoryByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get category by ID")
		return entity.Category{}, err
	}

	if existingCategory.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":       requestID,
			"category_user_id": existingCategory.UserID,
			"request_user_id":  userID,
		}).Warn("Category does not belong to user")
		return entity.Category{}, category.ErrCategoryNotOwned
	}

	return existingCategory, nil
}

func (s *categoryService) GetCategoriesByUserID(ctx context.Context, userID string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	categories, err := repo.Category.GetCategoriesByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get categories by user ID")
		return nil, err
	}

	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidTransactionType(req.Type) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
		}).Warn("Invalid category type")
		return category.ErrInvalidCategoryType
	}

	if _, err := s.GetCategoryByID(ctx, req.ID, req.UserID); err != nil {
		return err
	}

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	updatedCategory := entity.Category{
		ID:        req.ID,
		UserID:    req.UserID,
		Name:      req.Name,
		Type:      req.Type,
		UpdatedAt: time.Now(),
	}

	if err := repo.Category.UpdateCategory(ctx, updatedCategory); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update category")
		return category.ErrUpdateCategory
	}

	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.GetCategoryByID(ctx, id, userID); err != nil {
		return err
	}

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Category.DeleteCategory(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete category")
		return category.ErrDeleteCategory
	}

	return nil
}
