package goalRepository

import (
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
		Goal:     &goalRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Goal interface {
		CreateGoal(c context.Context, goal entity.Goal) error
		GetGoalByID(c context.Context, id string) (entity.Goal, error)
		GetGoalsByUserID(c context.Context, userID string) ([]entity.Goal, error)
		UpdateGoal(c context.Context, goal entity.Goal) error
		DeleteGoal(ctx context.Context, id string) error
		GetEvaluableGoals(ctx context.Context) ([]entity.Goal, error)
		GetEvaluableGoalsByUserID(ctx context.Context, userID string) ([]entity.Goal, error)
	}

	Commit   func() error
	Rollback func() error
}

type goalRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
