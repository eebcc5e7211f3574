package currencyHandler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	currencyService "github.com/ademomeragic/budget-tracker-sub000/internal/api/currency/service"
	"github.com/ademomeragic/budget-tracker-sub000/internal/middleware"
)

type CurrencyHandler struct {
	log             *logrus.Logger
	middleware      middleware.Middleware
	currencyService currencyService.ICurrencyService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	currencyService currencyService.ICurrencyService,
) *CurrencyHandler {
	return &CurrencyHandler{
		log:             log,
		middleware:      middleware,
		currencyService: currencyService,
	}
}

func (h *CurrencyHandler) Start(srv fiber.Router) {
	currencies := srv.Group("/currencies")

	currencies.Get("/rates/:base", h.middleware.NewTokenMiddleware, h.GetRates)
	currencies.Get("/convert", h.middleware.NewTokenMiddleware, h.Convert)
}
