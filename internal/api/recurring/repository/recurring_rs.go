package recurringRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/recurring"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
)

type RecurringDB struct {
	ID             sql.NullString  `db:"id"`
	UserID         sql.NullString  `db:"user_id"`
	WalletID       sql.NullString  `db:"wallet_id"`
	CategoryID     sql.NullString  `db:"category_id"`
	Type           sql.NullString  `db:"type"`
	Amount         sql.NullFloat64 `db:"amount"`
	Description    sql.NullString  `db:"description"`
	Frequency      sql.NullString  `db:"frequency"`
	StartDate      sql.NullTime    `db:"start_date"`
	EndDate        sql.NullTime    `db:"end_date"`
	LastExecutedAt sql.NullTime    `db:"last_executed_at"`
	IsActive       sql.NullBool    `db:"is_active"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

func (r *recurringRepository) CreateRecurring(c context.Context, rt entity.RecurringTransaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               rt.ID,
		"user_id":          rt.UserID,
		"wallet_id":        rt.WalletID,
		"category_id":      rt.CategoryID,
		"type":             rt.Type,
		"amount":           rt.Amount,
		"description":      rt.Description,
		"frequency":        rt.Frequency,
		"start_date":       rt.StartDate,
		"end_date":         rt.EndDate,
		"last_executed_at": rt.LastExecutedAt,
		"is_active":        rt.IsActive,
		"created_at":       time.Now(),
		"updated_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateRecurring, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateRecurring")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating recurring transaction")

		return err
	}

	return nil
}

func (r *recurringRepository) GetRecurringByID(c context.Context, id string) (entity.RecurringTransaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rt RecurringDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetRecurringByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecurringByID named query preparation err")

		return entity.RecurringTransaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&rt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetRecurringByID no rows found")
			return entity.RecurringTransaction{}, recurring.ErrRecurringNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecurringByID execution err")
		return entity.RecurringTransaction{}, err
	}

	return r.makeRecurring(rt), nil
}

func (r *recurringRepository) GetRecurringByUserID(c context.Context, userID string) ([]entity.RecurringTransaction, error) {
	return r.selectRecurring(c, queryGetRecurringByUserID, map[string]interface{}{
		"user_id": userID,
	}, "GetRecurringByUserID")
}

// GetActiveRecurring returns the templates whose schedule window covers the
// current time. Dueness against last_executed_at is decided by the caller.
func (r *recurringRepository) GetActiveRecurring(ctx context.Context) ([]entity.RecurringTransaction, error) {
	return r.selectRecurring(ctx, queryGetActiveRecurring, map[string]interface{}{}, "GetActiveRecurring")
}

func (r *recurringRepository) UpdateRecurring(c context.Context, rt entity.RecurringTransaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          rt.ID,
		"wallet_id":   rt.WalletID,
		"category_id": rt.CategoryID,
		"type":        rt.Type,
		"amount":      rt.Amount,
		"description": rt.Description,
		"frequency":   rt.Frequency,
		"start_date":  rt.StartDate,
		"end_date":    rt.EndDate,
		"is_active":   rt.IsActive,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateRecurring, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateRecurring named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateRecurring execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateRecurring rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateRecurring no rows affected")

		return recurring.ErrRecurringNotFound
	}

	return nil
}

func (r *recurringRepository) UpdateLastExecution(ctx context.Context, id string, executedAt time.Time) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":               id,
		"last_executed_at": executedAt,
		"updated_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateLastExecution, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateLastExecution named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateLastExecution execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateLastExecution rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateLastExecution no rows affected")

		return recurring.ErrRecurringNotFound
	}

	return nil
}

func (r *recurringRepository) DeleteRecurring(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteRecurring, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteRecurring named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteRecurring execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteRecurring rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteRecurring no rows affected")

		return recurring.ErrRecurringNotFound
	}

	return nil
}

func (r *recurringRepository) selectRecurring(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) ([]entity.RecurringTransaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []RecurringDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Recurring select named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Recurring select execution err")
		return nil, err
	}

	result := make([]entity.RecurringTransaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeRecurring(row))
	}

	return result, nil
}

func (r *recurringRepository) makeRecurring(rt RecurringDB) entity.RecurringTransaction {
	recurringRes := entity.RecurringTransaction{
		ID:          rt.ID.String,
		UserID:      rt.UserID.String,
		WalletID:    rt.WalletID.String,
		CategoryID:  rt.CategoryID.String,
		Type:        rt.Type.String,
		Amount:      rt.Amount.Float64,
		Description: rt.Description.String,
		Frequency:   rt.Frequency.String,
		StartDate:   rt.StartDate.Time,
		IsActive:    rt.IsActive.Bool,
		CreatedAt:   rt.CreatedAt,
		UpdatedAt:   rt.UpdatedAt,
	}

	if rt.EndDate.Valid {
		endDate := rt.EndDate.Time
		recurringRes.EndDate = &endDate
	}
	if rt.LastExecutedAt.Valid {
		lastExecutedAt := rt.LastExecutedAt.Time
		recurringRes.LastExecutedAt = &lastExecutedAt
	}

	return recurringRes
}
