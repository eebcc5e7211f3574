package transactionService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction"
	"github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
)

func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	occurredAt, err := time.Parse(time.RFC3339, req.OccurredAt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"occurred_at": req.OccurredAt,
		}).Warn("Invalid transaction date")
		return transaction.ErrInvalidDate
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

	newTransaction := entity.Transaction{
		ID:          ULID,
		UserID:      req.UserID,
		WalletID:    req.WalletID,
		CategoryID:  req.CategoryID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		OccurredAt:  occurredAt,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := newTransaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return err
	}

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Transaction.CreateTransaction(ctx, newTransaction); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return transaction.ErrCreateTransaction
	}

	if err := repo.Transaction.AdjustWalletBalance(ctx, newTransaction.WalletID, signedAmount(newTransaction.Type, newTransaction.Amount)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to adjust wallet balance")
		return transaction.ErrCreateTransaction
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return transaction.ErrCreateTransaction
	}

	s.triggerEvaluation(ctx, req.UserID)

	return nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	existingTransaction, err := repo.Transaction.GetTransactionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get transaction by ID")
		return entity.Transaction{}, err
	}

	if existingTransaction.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":          requestID,
			"transaction_user_id": existingTransaction.UserID,
			"request_user_id":     userID,
		}).Warn("Transaction does not belong to user")
		return entity.Transaction{}, transaction.ErrTransactionNotOwned
	}

	return existingTransaction, nil
}

func (s *transactionService) GetTransactionsByUserID(ctx context.Context, userID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Transaction.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get transactions by user ID")
		return nil, err
	}

	return transactions, nil
}

func (s *transactionService) GetTransactionsByWalletID(ctx context.Context, userID string, walletID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.checkWalletOwnership(ctx, walletID, userID); err != nil {
		return nil, err
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Transaction.GetTransactionsByWalletID(ctx, userID, walletID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"wallet_id":  walletID,
			"error":      err.Error(),
		}).Error("Failed to get transactions by wallet ID")
		return nil, err
	}

	return transactions, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	occurredAt, err := time.Parse(time.RFC3339, req.OccurredAt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"occurred_at": req.OccurredAt,
		}).Warn("Invalid transaction date")
		return transaction.ErrInvalidDate
	}

	existingTransaction, err := s.GetTransactionByID(ctx, req.ID, req.UserID)
	if err != nil {
		return err
	}

	if req.WalletID != existingTransaction.WalletID {
		if err := s.checkWalletOwnership(ctx, req.WalletID, req.UserID); err != nil {
			return err
		}
	}

	updatedTransaction := entity.Transaction{
		ID:          req.ID,
		UserID:      req.UserID,
		WalletID:    req.WalletID,
		CategoryID:  req.CategoryID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		OccurredAt:  occurredAt,
		UpdatedAt:   time.Now(),
	}

	if err := updatedTransaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return err
	}

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Transaction.UpdateTransaction(ctx, updatedTransaction); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return transaction.ErrUpdateTransaction
	}

	// Reverse the old posting before applying the new one.
	if err := repo.Transaction.AdjustWalletBalance(ctx, existingTransaction.WalletID, -signedAmount(existingTransaction.Type, existingTransaction.Amount)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to reverse wallet balance")
		return transaction.ErrUpdateTransaction
	}

	if err := repo.Transaction.AdjustWalletBalance(ctx, updatedTransaction.WalletID, signedAmount(updatedTransaction.Type, updatedTransaction.Amount)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to adjust wallet balance")
		return transaction.ErrUpdateTransaction
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return transaction.ErrUpdateTransaction
	}

	s.triggerEvaluation(ctx, req.UserID)

	return nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	existingTransaction, err := s.GetTransactionByID(ctx, id, userID)
	if err != nil {
		return err
	}

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Transaction.DeleteTransaction(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return transaction.ErrDeleteTransaction
	}

	if err := repo.Transaction.AdjustWalletBalance(ctx, existingTransaction.WalletID, -signedAmount(existingTransaction.Type, existingTransaction.Amount)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to reverse wallet balance")
		return transaction.ErrDeleteTransaction
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return transaction.ErrDeleteTransaction
	}

	s.triggerEvaluation(ctx, userID)

	return nil
}

// triggerEvaluation re-runs goal evaluation after a balance-changing
// mutation. Evaluation failures never fail the mutation itself.
func (s *transactionService) triggerEvaluation(ctx context.Context, userID string) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.goalEvaluator.EvaluateUser(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Goal evaluation after transaction mutation failed")
	}
}

func (s *transactionService) checkWalletOwnership(ctx context.Context, walletID string, userID string) error {
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

func signedAmount(transactionType string, amount float64) float64 {
	if transactionType == string(entity.TransactionTypeExpense) {
		return -amount
	}
	return amount
}
