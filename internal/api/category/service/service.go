package categoryService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/category"
	categoryRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/category/repository"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/utils"
)

type ICategoryService interface {
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) error
	GetCategoryByID(ctx context.Context, id string, userID string) (entity.Category, error)
	GetCategoriesByUserID(ctx context.Context, userID string) ([]entity.Category, error)
	UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id string, userID string) error
}

type categoryService struct {
	log                *logrus.Logger
	categoryRepository categoryRepository.Repository
	utils              utils.IUtils
}

func NewCategoryService(log *logrus.Logger, cr categoryRepository.Repository, utils utils.IUtils) ICategoryService {
	return &categoryService{
		log:                log,
		categoryRepository: cr,
		utils:              utils,
	}
}
