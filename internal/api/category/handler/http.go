package categoryHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	categoryService "github.com/ademomeragic/budget-tracker-sub000/internal/api/category/service"
	"github.com/ademomeragic/budget-tracker-sub000/internal/middleware"
)

type CategoryHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	categoryService categoryService.ICategoryService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	categoryService categoryService.ICategoryService,
) *CategoryHandler {
	return &CategoryHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) Start(srv fiber.Router) {
	categories := srv.Group("/categories")

	categories.Post("/", h.middleware.NewTokenMiddleware, h.CreateCategory)
	categories.Get("/", h.middleware.NewTokenMiddleware, h.GetCategoriesByUserID)
	categories.Get("/:id", h.middleware.NewTokenMiddleware, h.GetCategoryByID)
	categories.Put("/", h.middleware.NewTokenMiddleware, h.UpdateCategory)
	categories.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteCategory)
}
