package recurringRepository

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Recurring: &recurringRepository{q: sqlExecutor, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Recurring interface {
		CreateRecurring(c context.Context, recurring entity.RecurringTransaction) error
		GetRecurringByID(c context.Context, id string) (entity.RecurringTransaction, error)
		GetRecurringByUserID(c context.Context, userID string) ([]entity.RecurringTransaction, error)
		GetActiveRecurring(ctx context.Context) ([]entity.RecurringTransaction, error)
		UpdateRecurring(c context.Context, recurring entity.RecurringTransaction) error
		UpdateLastExecution(ctx context.Context, id string, executedAt time.Time) error
		DeleteRecurring(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type recurringRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
