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

type PreferenceDB struct {
	UserID           sql.NullString `db:"user_id"`
	DeadlineWarning  sql.NullBool   `db:"deadline_warning"`
	NearLimitWarning sql.NullBool   `db:"near_limit_warning"`
	ExceededWarning  sql.NullBool   `db:"exceeded_warning"`
	IncomeCongrats   sql.NullBool   `db:"income_congrats"`
	ThresholdPercent sql.NullInt64  `db:"threshold_percent"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (r *preferenceRepository) GetPreferenceByUserID(c context.Context, userID string) (entity.NotificationPreference, error) {
	requestID := contextPkg.GetRequestID(c)
	var p PreferenceDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetPreferenceByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPreferenceByUserID named query preparation err")

		return entity.NotificationPreference{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
			}).Warn("GetPreferenceByUserID no rows found")
			return entity.NotificationPreference{}, notification.ErrPreferenceNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPreferenceByUserID execution err")
		return entity.NotificationPreference{}, err
	}

	return r.makePreference(p), nil
}

func (r *preferenceRepository) UpsertPreference(c context.Context, preference entity.NotificationPreference) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":            preference.UserID,
		"deadline_warning":   preference.DeadlineWarning,
		"near_limit_warning": preference.NearLimitWarning,
		"exceeded_warning":   preference.ExceededWarning,
		"income_congrats":    preference.IncomeCongrats,
		"threshold_percent":  preference.ThresholdPercent,
		"updated_at":         time.Now(),
	}

	query, args, err := sqlx.Named(queryUpsertPreference, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertPreference named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertPreference execution err")

		return err
	}

	return nil
}

func (r *preferenceRepository) makePreference(p PreferenceDB) entity.NotificationPreference {
	return entity.NotificationPreference{
		UserID:           p.UserID.String,
		DeadlineWarning:  p.DeadlineWarning.Bool,
		NearLimitWarning: p.NearLimitWarning.Bool,
		ExceededWarning:  p.ExceededWarning.Bool,
		IncomeCongrats:   p.IncomeCongrats.Bool,
		ThresholdPercent: int(p.ThresholdPercent.Int64),
		UpdatedAt:        p.UpdatedAt,
	}
}
