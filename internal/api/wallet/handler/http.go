package walletHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	walletService "github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet/service"
	"github.com/ademomeragic/budget-tracker-sub000/internal/middleware"
)

type WalletHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	walletService walletService.IWalletService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	walletService walletService.IWalletService,
) *WalletHandler {
	return &WalletHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		walletService: walletService,
	}
}

func (h *WalletHandler) Start(srv fiber.Router) {
	wallets := srv.Group("/wallets")

	wallets.Post("/", h.middleware.NewTokenMiddleware, h.CreateWallet)
	wallets.Get("/", h.middleware.NewTokenMiddleware, h.GetWalletsByUserID)
	wallets.Get("/:id", h.middleware.NewTokenMiddleware, h.GetWalletByID)
	wallets.Put("/", h.middleware.NewTokenMiddleware, h.UpdateWallet)
	wallets.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteWallet)
}
