package transactionService

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction"
	transactionRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction/repository"
	"github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet"
	walletRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/wallet/repository"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/utils"
)

type balanceAdjustment struct {
	walletID string
	delta    float64
}

type fakeTransactionStore struct {
	transactions []entity.Transaction
	adjustments  []balanceAdjustment
}

func (f *fakeTransactionStore) CreateTransaction(_ context.Context, t entity.Transaction) error {
	f.transactions = append(f.transactions, t)
	return nil
}

func (f *fakeTransactionStore) GetTransactionByID(_ context.Context, id string) (entity.Transaction, error) {
	for _, t := range f.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return entity.Transaction{}, transaction.ErrTransactionNotFound
}

func (f *fakeTransactionStore) GetTransactionsByUserID(_ context.Context, userID string) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, t := range f.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionStore) GetTransactionsByWalletID(_ context.Context, _ string, walletID string) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, t := range f.transactions {
		if t.WalletID == walletID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionStore) UpdateTransaction(_ context.Context, _ entity.Transaction) error {
	return nil
}

func (f *fakeTransactionStore) DeleteTransaction(_ context.Context, id string) error {
	for i, t := range f.transactions {
		if t.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return transaction.ErrTransactionNotFound
}

func (f *fakeTransactionStore) AdjustWalletBalance(_ context.Context, walletID string, delta float64) error {
	f.adjustments = append(f.adjustments, balanceAdjustment{walletID: walletID, delta: delta})
	return nil
}

func (f *fakeTransactionStore) SumByFilter(_ context.Context, _ entity.TransactionFilter) (float64, error) {
	return 0, nil
}

type fakeTransactionRepo struct{ store *fakeTransactionStore }

func (f *fakeTransactionRepo) NewClient(_ bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transaction: f.store,
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

type fakeWalletStore struct {
	wallets map[string]entity.Wallet
}

func (f *fakeWalletStore) CreateWallet(_ context.Context, w entity.Wallet) error {
	f.wallets[w.ID] = w
	return nil
}

func (f *fakeWalletStore) GetWalletByID(_ context.Context, id string) (entity.Wallet, error) {
	w, ok := f.wallets[id]
	if !ok {
		return entity.Wallet{}, wallet.ErrWalletNotFound
	}
	return w, nil
}

func (f *fakeWalletStore) GetWalletsByUserID(_ context.Context, _ string) ([]entity.Wallet, error) {
	return nil, nil
}

func (f *fakeWalletStore) UpdateWallet(_ context.Context, _ entity.Wallet) error { return nil }

func (f *fakeWalletStore) DeleteWallet(_ context.Context, _ string) error { return nil }

type fakeWalletRepo struct{ store *fakeWalletStore }

func (f *fakeWalletRepo) NewClient(_ bool) (walletRepository.Client, error) {
	return walletRepository.Client{
		Wallet:   f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type recordingEvaluator struct {
	userIDs []string
	err     error
}

func (r *recordingEvaluator) EvaluateUser(_ context.Context, userID string) error {
	r.userIDs = append(r.userIDs, userID)
	return r.err
}

func (r *recordingEvaluator) EvaluateAllUsers(_ context.Context) error { return nil }

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type serviceFixture struct {
	service      ITransactionService
	transactions *fakeTransactionStore
	evaluator    *recordingEvaluator
}

func newServiceFixture() *serviceFixture {
	transactions := &fakeTransactionStore{}
	wallets := &fakeWalletStore{wallets: map[string]entity.Wallet{
		"w1": {ID: "w1", UserID: "u1", Name: "Checking"},
	}}
	evaluator := &recordingEvaluator{}

	service := NewTransactionService(
		newTestLogger(),
		&fakeTransactionRepo{store: transactions},
		&fakeWalletRepo{store: wallets},
		evaluator,
		utils.New(),
	)

	return &serviceFixture{
		service:      service,
		transactions: transactions,
		evaluator:    evaluator,
	}
}

func validCreateRequest() transaction.CreateTransactionRequest {
	return transaction.CreateTransactionRequest{
		UserID:     "u1",
		WalletID:   "w1",
		CategoryID: "c1",
		Type:       "expense",
		Amount:     40,
		OccurredAt: time.Now().Format(time.RFC3339),
	}
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name            string
		transactionType string
		amount          float64
		want            float64
	}{
		{name: "expense debits", transactionType: "expense", amount: 40, want: -40},
		{name: "income credits", transactionType: "income", amount: 40, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := signedAmount(tt.transactionType, tt.amount); got != tt.want {
				t.Errorf("signedAmount(%q, %v) = %v, want %v", tt.transactionType, tt.amount, got, tt.want)
			}
		})
	}
}

func TestCreateTransaction_PostsBalanceAndTriggersEvaluation(t *testing.T) {
	f := newServiceFixture()

	if err := f.service.CreateTransaction(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}

	if len(f.transactions.transactions) != 1 {
		t.Fatalf("stored transactions = %d, want 1", len(f.transactions.transactions))
	}
	if len(f.transactions.adjustments) != 1 {
		t.Fatalf("balance adjustments = %d, want 1", len(f.transactions.adjustments))
	}
	if adj := f.transactions.adjustments[0]; adj.walletID != "w1" || adj.delta != -40 {
		t.Errorf("adjustment = %+v, want wallet w1 delta -40", adj)
	}
	if len(f.evaluator.userIDs) != 1 || f.evaluator.userIDs[0] != "u1" {
		t.Errorf("evaluated users = %v, want [u1]", f.evaluator.userIDs)
	}
}

func TestCreateTransaction_EvaluationFailureDoesNotFailMutation(t *testing.T) {
	f := newServiceFixture()
	f.evaluator.err = errors.New("evaluation blew up")

	if err := f.service.CreateTransaction(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("CreateTransaction() error = %v, evaluation failure must not propagate", err)
	}

	if len(f.transactions.transactions) != 1 {
		t.Errorf("stored transactions = %d, want 1", len(f.transactions.transactions))
	}
}

func TestCreateTransaction_RejectsForeignWallet(t *testing.T) {
	f := newServiceFixture()
	req := validCreateRequest()
	req.UserID = "intruder"

	err := f.service.CreateTransaction(context.Background(), req)
	if !errors.Is(err, wallet.ErrWalletNotOwned) {
		t.Fatalf("CreateTransaction() error = %v, want %v", err, wallet.ErrWalletNotOwned)
	}
	if len(f.transactions.transactions) != 0 {
		t.Errorf("stored transactions = %d, want 0", len(f.transactions.transactions))
	}
	if len(f.evaluator.userIDs) != 0 {
		t.Errorf("evaluation ran after a rejected mutation")
	}
}

func TestCreateTransaction_RejectsBadDate(t *testing.T) {
	f := newServiceFixture()
	req := validCreateRequest()
	req.OccurredAt = "2025-13-45"

	err := f.service.CreateTransaction(context.Background(), req)
	if !errors.Is(err, transaction.ErrInvalidDate) {
		t.Fatalf("CreateTransaction() error = %v, want %v", err, transaction.ErrInvalidDate)
	}
}

func TestDeleteTransaction_ReversesPosting(t *testing.T) {
	f := newServiceFixture()

	if err := f.service.CreateTransaction(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}
	id := f.transactions.transactions[0].ID

	if err := f.service.DeleteTransaction(context.Background(), id, "u1"); err != nil {
		t.Fatalf("DeleteTransaction() error = %v", err)
	}

	if len(f.transactions.adjustments) != 2 {
		t.Fatalf("balance adjustments = %d, want 2", len(f.transactions.adjustments))
	}
	if adj := f.transactions.adjustments[1]; adj.delta != 40 {
		t.Errorf("reversal delta = %v, want 40", adj.delta)
	}
}

func TestDeleteTransaction_RejectsForeignTransaction(t *testing.T) {
	f := newServiceFixture()

	if err := f.service.CreateTransaction(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}
	id := f.transactions.transactions[0].ID

	err := f.service.DeleteTransaction(context.Background(), id, "intruder")
	if !errors.Is(err, transaction.ErrTransactionNotOwned) {
		t.Fatalf("DeleteTransaction() error = %v, want %v", err, transaction.ErrTransactionNotOwned)
	}
}
