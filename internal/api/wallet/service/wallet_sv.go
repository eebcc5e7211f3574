package walletService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
)

func (s *walletService) CreateWallet(ctx context.Context, req wallet.CreateWalletRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.walletRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	newWallet := entity.Wallet{
		ID:        ULID,
		UserID:    req.UserID,
		Name:      req.Name,
		Currency:  req.Currency,
		Balance:   0,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.Wallet.CreateWallet(ctx, newWallet); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create wallet")
		return wallet.ErrCreateWallet
	}

	return nil
}

func (s *walletService) GetWalletByID(ctx context.Context, id string, userID string) (entity.Wallet, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.walletRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Wallet{}, err
	}

	existingWallet, err := repo.Wallet.GetWalletByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get wallet by ID")
		return entity.Wallet{}, err
	}

	if existingWallet.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"wallet_user_id":  existingWallet.UserID,
			"request_user_id": userID,
		}).Warn("Wallet does not belong to user")
		return entity.Wallet{}, wallet.ErrWalletNotOwned
	}

	return existingWallet, nil
}

func (s *walletService) GetWalletsByUserID(ctx context.Context, userID string) ([]entity.Wallet, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.walletRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	wallets, err := repo.Wallet.GetWalletsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get wallets by user ID")
		return nil, err
	}

	return wallets, nil
}

func (s *walletService) UpdateWallet(ctx context.Context, req wallet.UpdateWalletRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	existingWallet, err := s.GetWalletByID(ctx, req.ID, req.UserID)
	if err != nil {
		return err
	}

	repo, err := s.walletRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	updatedWallet := entity.Wallet{
		ID:        req.ID,
		UserID:    req.UserID,
		Name:      req.Name,
		Currency:  req.Currency,
		Balance:   existingWallet.Balance,
		UpdatedAt: time.Now(),
	}

	if err := repo.Wallet.UpdateWallet(ctx, updatedWallet); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update wallet")
		return wallet.ErrUpdateWallet
	}

	return nil
}

func (s *walletService) DeleteWallet(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.GetWalletByID(ctx, id, userID); err != nil {
		return err
	}

	repo, err := s.walletRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Wallet.DeleteWallet(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete wallet")
		return wallet.ErrDeleteWallet
	}

	return nil
}
