package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ademomeragic/budget-tracker-sub000/database/postgres"
	categoryHandler "github.com/ademomeragic/budget-tracker-sub000/internal/api/category/handler"
	categoryRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/category/repository"
	categoryService "github.com/ademomeragic/budget-tracker-sub000/internal/api/category/service"
	currencyHandler "github.com/ademomeragic/budget-tracker-sub000/internal/api/currency/handler"
	currencyService "github.com/ademomeragic/budget-tracker-sub000/internal/api/currency/service"
	goalHandler "github.com/ademomeragic/budget-tracker-sub000/internal/api/goal/handler"
	goalRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/goal/repository"
	goalService "github.com/ademomeragic/budget-tracker-sub000/internal/api/goal/service"
	notificationHandler "github.com/ademomeragic/budget-tracker-sub000/internal/api/notification/handler"
	notificationRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/notification/repository"
	notificationService "github.com/ademomeragic/budget-tracker-sub000/internal/api/notification/service"
	recurringHandler "github.com/ademomeragic/budget-tracker-sub000/internal/api/recurring/handler"
	recurringRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/recurring/repository"
	recurringService "github.com/ademomeragic/budget-tracker-sub000/internal/api/recurring/service"
	transactionHandler "github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction/handler"
	transactionRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction/repository"
	transactionService "github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction/service"
	walletHandler "github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet/handler"
	walletRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet/repository"
	walletService "github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet/service"
	"github.com/ademomeragic/budget-tracker-sub000/internal/middleware"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/exchange"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/redis"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	redisServer    redis.IRedis
	exchangeClient exchange.ItfExchange
	handlers       []handler

	goalEvaluator      goalService.IGoalEvaluator
	recurringProcessor recurringService.IRecurringProcessor
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithExchangeClient(exchangeClient exchange.ItfExchange) ServerOption {
	return func(s *Server) error {
		s.exchangeClient = exchangeClient
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Repositories
	walletRepo := walletRepository.New(s.db, s.log)
	categoryRepo := categoryRepository.New(s.db, s.log)
	transactionRepo := transactionRepository.New(s.db, s.log)
	goalRepo := goalRepository.New(s.db, s.log)
	notificationRepo := notificationRepository.New(s.db, s.log)
	recurringRepo := recurringRepository.New(s.db, s.log)

	// Goal Domain (evaluation engine included)
	goalServices := goalService.NewGoalService(s.log, goalRepo, transactionRepo, notificationRepo, s.utils)
	goalHandlers := goalHandler.New(s.log, s.validator, s.middleware, goalServices)
	s.goalEvaluator = goalServices

	// Transaction Domain
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo, walletRepo, goalServices, s.utils)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Wallet Domain
	walletServices := walletService.NewWalletService(s.log, walletRepo, s.utils)
	walletHandlers := walletHandler.New(s.log, s.validator, s.middleware, walletServices)

	// Category Domain
	categoryServices := categoryService.NewCategoryService(s.log, categoryRepo, s.utils)
	categoryHandlers := categoryHandler.New(s.log, s.validator, s.middleware, categoryServices)

	// Notification Domain
	notificationServices := notificationService.NewNotificationService(s.log, notificationRepo)
	notificationHandlers := notificationHandler.New(s.log, s.validator, s.middleware, notificationServices)

	// Recurring Domain
	recurringServices := recurringService.NewRecurringService(s.log, recurringRepo, walletRepo, transactionServices, s.utils)
	recurringHandlers := recurringHandler.New(s.log, s.validator, s.middleware, recurringServices)
	s.recurringProcessor = recurringServices

	// Currency Domain
	currencyServices := currencyService.NewCurrencyService(s.log, s.exchangeClient, s.redisServer)
	currencyHandlers := currencyHandler.New(s.log, s.middleware, currencyServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		goalHandlers,
		transactionHandlers,
		walletHandlers,
		categoryHandlers,
		notificationHandlers,
		recurringHandlers,
		currencyHandlers,
	)
}

// GoalEvaluator exposes the evaluation engine for the scheduler.
// RegisterHandler must run first.
func (s *Server) GoalEvaluator() goalService.IGoalEvaluator {
	return s.goalEvaluator
}

// RecurringProcessor exposes the recurring materializer for the scheduler.
func (s *Server) RecurringProcessor() recurringService.IRecurringProcessor {
	return s.recurringProcessor
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown() error {
	return s.engine.Shutdown()
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
