package notificationRepository

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
		Notification: &notificationRepository{q: sqlExecutor, log: r.log},
		Preference:   &preferenceRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type Client struct {
	Notification interface {
		CreateNotification(c context.Context, notification entity.Notification) error
		GetNotificationByID(c context.Context, id string) (entity.Notification, error)
		GetNotificationsByUserID(c context.Context, userID string) ([]entity.Notification, error)
		MarkNotificationRead(c context.Context, id string) error
		DeleteNotification(ctx context.Context, id string) error
	}

	Preference interface {
		GetPreferenceByUserID(c context.Context, userID string) (entity.NotificationPreference, error)
		UpsertPreference(c context.Context, preference entity.NotificationPreference) error
	}

	Commit   func() error
	Rollback func() error
}

type notificationRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type preferenceRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
