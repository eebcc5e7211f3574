package transactionService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	goalService "github.com/ademomeragic/budget-tracker-sub000/internal/api/goal/service"
	"github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction"
	transactionRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction/repository"
	walletRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet/repository"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/utils"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) error
	GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error)
	GetTransactionsByUserID(ctx context.Context, userID string) ([]entity.Transaction, error)
	GetTransactionsByWalletID(ctx context.Context, userID string, walletID string) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, id string, userID string) error
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	walletRepository      walletRepository.Repository
	goalEvaluator         goalService.IGoalEvaluator
	utils                 utils.IUtils
}

func NewTransactionService(
	log *logrus.Logger,
	tr transactionRepository.Repository,
	wr walletRepository.Repository,
	evaluator goalService.IGoalEvaluator,
	utils utils.IUtils,
) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		walletRepository:      wr,
		goalEvaluator:         evaluator,
		utils:                 utils,
	}
}
