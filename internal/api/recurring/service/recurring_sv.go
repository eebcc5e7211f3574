package recurringService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/recurring"
	"github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
)

func (s *recurringService) CreateRecurring(ctx context.Context, req recurring.CreateRecurringRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"start_date": req.StartDate,
		}).Warn("Invalid recurring start date")
		return recurring.ErrInvalidRecurringWindow
	}

	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"end_date":   req.EndDate,
		}).Warn("Invalid recurring end date")
		return recurring.ErrInvalidRecurringWindow
	}

	if err := s.checkWalletOwnership(ctx, req.WalletID, req.UserID); err != nil {
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

	newRecurring := entity.RecurringTransaction{
		ID:          ULID,
		UserID:      req.UserID,
		WalletID:    req.WalletID,
		CategoryID:  req.CategoryID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Frequency:   req.Frequency,
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := newRecurring.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid recurring transaction data")
		return err
	}

	repo, err := s.recurringRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Recurring.CreateRecurring(ctx, newRecurring); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create recurring transaction")
		return recurring.ErrCreateRecurring
	}

	return nil
}

func (s *recurringService) GetRecurringByID(ctx context.Context, id string, userID string) (entity.RecurringTransaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.recurringRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.RecurringTransaction{}, err
	}

	existingRecurring, err := repo.Recurring.GetRecurringByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get recurring transaction by ID")
		return entity.RecurringTransaction{}, err
	}

	if existingRecurring.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":        requestID,
			"recurring_user_id": existingRecurring.UserID,
			"request_user_id":   userID,
		}).Warn("Recurring transaction does not belong to user")
		return entity.RecurringTransaction{}, recurring.ErrRecurringNotOwned
	}

	return existingRecurring, nil
}

func (s *recurringService) GetRecurringByUserID(ctx context.Context, userID string) ([]entity.RecurringTransaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.recurringRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	recurringTransactions, err := repo.Recurring.GetRecurringByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get recurring transactions by user ID")
		return nil, err
	}

	return recurringTransactions, nil
}

func (s *recurringService) UpdateRecurring(ctx context.Context, req recurring.UpdateRecurringRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"start_date": req.StartDate,
		}).Warn("Invalid recurring start date")
		return recurring.ErrInvalidRecurringWindow
	}

	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"end_date":   req.EndDate,
		}).Warn("Invalid recurring end date")
		return recurring.ErrInvalidRecurringWindow
	}

	existingRecurring, err := s.GetRecurringByID(ctx, req.ID, req.UserID)
	if err != nil {
		return err
	}

	if req.WalletID != existingRecurring.WalletID {
		if err := s.checkWalletOwnership(ctx, req.WalletID, req.UserID); err != nil {
			return err
		}
	}

	isActive := existingRecurring.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	updatedRecurring := entity.RecurringTransaction{
		ID:          req.ID,
		UserID:      req.UserID,
		WalletID:    req.WalletID,
		CategoryID:  req.CategoryID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Frequency:   req.Frequency,
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    isActive,
		UpdatedAt:   time.Now(),
	}

	if err := updatedRecurring.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid recurring transaction data")
		return err
	}

	repo, err := s.recurringRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Recurring.UpdateRecurring(ctx, updatedRecurring); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update recurring transaction")
		return recurring.ErrUpdateRecurring
	}

	return nil
}

func (s *recurringService) DeleteRecurring(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.GetRecurringByID(ctx, id, userID); err != nil {
		return err
	}

	repo, err := s.recurringRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Recurring.DeleteRecurring(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete recurring transaction")
		return recurring.ErrDeleteRecurring
	}

	return nil
}

func (s *recurringService) checkWalletOwnership(ctx context.Context, walletID string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	walletRepo, err := s.walletRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existingWallet, err := walletRepo.Wallet.GetWalletByID(ctx, walletID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"wallet_id":  walletID,
			"error":      err.Error(),
		}).Error("Failed to get wallet")
		return err
	}

	if existingWallet.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"wallet_user_id":  existingWallet.UserID,
			"request_user_id": userID,
		}).Warn("Wallet does not belong to user")
		return wallet.ErrWalletNotOwned
	}

	return nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
