package notificationHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	notificationService "github.com/ademomeragic/budget-tracker-sub000/internal/api/notification/service"
	"github.com/ademomeragic/budget-tracker-sub000/internal/middleware"
)

type NotificationHandler struct {
	log                 *logrus.Logger
	validator           *validator.Validate
	middleware          middleware.Middleware
	notificationService notificationService.INotificationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	notificationService notificationService.INotificationService,
) *NotificationHandler {
	return &NotificationHandler{
		log:                 log,
		validator:           validate,
		middleware:          middleware,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) Start(srv fiber.Router) {
	notifications := srv.Group("/notifications")

	notifications.Get("/", h.middleware.NewTokenMiddleware, h.GetNotificationsByUserID)
	notifications.Get("/preferences", h.middleware.NewTokenMiddleware, h.GetPreferences)
	notifications.Put("/preferences", h.middleware.NewTokenMiddleware, h.UpdatePreferences)
	notifications.Patch("/:id/read", h.middleware.NewTokenMiddleware, h.MarkNotificationRead)
	notifications.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteNotification)
}
