package notificationRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/notification"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
)

type NotificationDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Message   sql.NullString `db:"message"`
	IsRead    sql.NullBool   `db:"is_read"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *notificationRepository) CreateNotification(c context.Context, n entity.Notification) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         n.ID,
		"user_id":    n.UserID,
		"message":    n.Message,
		"is_read":    n.IsRead,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateNotification, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateNotification")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating notification")

		return err
	}

	return nil
}

func (r *notificationRepository) GetNotificationByID(c context.Context, id string) (entity.Notification, error) {
	requestID := contextPkg.GetRequestID(c)
	var n NotificationDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetNotificationByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetNotificationByID named query preparation err")

		return entity.Notification{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetNotificationByID no rows found")
			return entity.Notification{}, notification.ErrNotificationNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetNotificationByID execution err")
		return entity.Notification{}, err
	}

	return r.makeNotification(n), nil
}

func (r *notificationRepository) GetNotificationsByUserID(c context.Context, userID string) ([]entity.Notification, error) {
	requestID := contextPkg.GetRequestID(c)
	var notifications []NotificationDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetNotificationsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetNotificationsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &notifications, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetNotificationsByUserID execution err")
		return nil, err
	}

	result := make([]entity.Notification, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, r.makeNotification(n))
	}

	return result, nil
}

func (r *notificationRepository) MarkNotificationRead(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryMarkNotificationRead, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkNotificationRead named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkNotificationRead execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkNotificationRead rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("MarkNotificationRead no rows affected")

		return notification.ErrNotificationNotFound
	}

	return nil
}

func (r *notificationRepository) DeleteNotification(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteNotification, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteNotification named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteNotification execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteNotification rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteNotification no rows affected")

		return notification.ErrNotificationNotFound
	}

	return nil
}

func (r *notificationRepository) makeNotification(n NotificationDB) entity.Notification {
	return entity.Notification{
		ID:        n.ID.String,
		UserID:    n.UserID.String,
		Message:   n.Message.String,
		IsRead:    n.IsRead.Bool,
		CreatedAt: n.CreatedAt,
	}
}
