package walletService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet"
	walletRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet/repository"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/utils"
)

type IWalletService interface {
	CreateWallet(ctx context.Context, req wallet.CreateWalletRequest) error
	GetWalletByID(ctx context.Context, id string, userID string) (entity.Wallet, error)
	GetWalletsByUserID(ctx context.Context, userID string) ([]entity.Wallet, error)
	UpdateWallet(ctx context.Context, req wallet.UpdateWalletRequest) error
	DeleteWallet(ctx context.Context, id string, userID string) error
}

type walletService struct {
	log              *logrus.Logger
	walletRepository walletRepository.Repository
	utils            utils.IUtils
}

func NewWalletService(log *logrus.Logger, wr walletRepository.Repository, utils utils.IUtils) IWalletService {
	return &walletService{
		log:              log,
		walletRepository: wr,
		utils:            utils,
	}
}
