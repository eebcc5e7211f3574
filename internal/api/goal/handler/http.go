package goalHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	goalService "github.com/ademomeragic/budget-tracker-sub000/internal/api/goal/service"
	"github.com/ademomeragic/budget-tracker-sub000/internal/middleware"
)

type GoalHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	goalService goalService.IGoalService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	goalService goalService.IGoalService,
) *GoalHandler {
	return &GoalHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		goalService: goalService,
	}
}

func (h *GoalHandler) Start(srv fiber.Router) {
	goals := srv.Group("/goals")

	goals.Post("/", h.middleware.NewTokenMiddleware, h.CreateGoal)
	goals.Get("/", h.middleware.NewTokenMiddleware, h.GetGoalsByUserID)
	goals.Post("/evaluate", h.middleware.NewTokenMiddleware, h.EvaluateGoals)
	goals.Get("/:id", h.middleware.NewTokenMiddleware, h.GetGoalByID)
	goals.Get("/:id/progress", h.middleware.NewTokenMiddleware, h.GetGoalProgress)
	goals.Put("/", h.middleware.NewTokenMiddleware, h.UpdateGoal)
	goals.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteGoal)
}
