package recurringHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	recurringService "github.com/ademomeragic/budget-tracker-sub000/internal/api/recurring/service"
	"github.com/ademomeragic/budget-tracker-sub000/internal/middleware"
)

type RecurringHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	recurringService recurringService.IRecurringService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	recurringService recurringService.IRecurringService,
) *RecurringHandler {
	return &RecurringHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		recurringService: recurringService,
	}
}

func (h *RecurringHandler) Start(srv fiber.Router) {
	recurring := srv.Group("/recurring")

	recurring.Post("/", h.middleware.NewTokenMiddleware, h.CreateRecurring)
	recurring.Get("/", h.middleware.NewTokenMiddleware, h.GetRecurringByUserID)
	recurring.Get("/:id", h.middleware.NewTokenMiddleware, h.GetRecurringByID)
	recurring.Put("/", h.middleware.NewTokenMiddleware, h.UpdateRecurring)
	recurring.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteRecurring)
}
