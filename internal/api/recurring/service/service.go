package recurringService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/recurring"
	recurringRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/recurring/repository"
	transactionService "github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction/service"
	walletRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet/repository"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/utils"
)

// IRecurringProcessor is the surface the scheduler drives to materialize
// due recurring transactions.
type IRecurringProcessor interface {
	ProcessDue(ctx context.Context) error
}

type IRecurringService interface {
	IRecurringProcessor
	CreateRecurring(ctx context.Context, req recurring.CreateRecurringRequest) error
	GetRecurringByID(ctx context.Context, id string, userID string) (entity.RecurringTransaction, error)
	GetRecurringByUserID(ctx context.Context, userID string) ([]entity.RecurringTransaction, error)
	UpdateRecurring(ctx context.Context, req recurring.UpdateRecurringRequest) error
	DeleteRecurring(ctx context.Context, id string, userID string) error
}

type recurringService struct {
	log                 *logrus.Logger
	recurringRepository recurringRepository.Repository
	walletRepository    walletRepository.Repository
	transactionService  transactionService.ITransactionService
	utils               utils.IUtils
}

func NewRecurringService(
	log *logrus.Logger,
	rr recurringRepository.Repository,
	wr walletRepository.Repository,
	ts transactionService.ITransactionService,
	utils utils.IUtils,
) IRecurringService {
	return &recurringService{
		log:                 log,
		recurringRepository: rr,
		walletRepository:    wr,
		transactionService:  ts,
		utils:               utils,
	}
}
