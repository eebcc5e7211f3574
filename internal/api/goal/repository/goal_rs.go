package goalRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/goal"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
)

type GoalDB struct {
	ID           sql.NullString  `db:"id"`
	UserID       sql.NullString  `db:"user_id"`
	Name         sql.NullString  `db:"name"`
	Type         sql.NullString  `db:"type"`
	TargetAmount sql.NullFloat64 `db:"target_amount"`
	CategoryID   sql.NullString  `db:"category_id"`
	WalletID     sql.NullString  `db:"wallet_id"`
	StartDate    sql.NullTime    `db:"start_date"`
	EndDate      sql.NullTime    `db:"end_date"`
	IsActive     sql.NullBool    `db:"is_active"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (r *goalRepository) CreateGoal(c context.Context, g entity.Goal) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            g.ID,
		"user_id":       g.UserID,
		"name":          g.Name,
		"type":          g.Type,
		"target_amount": g.TargetAmount,
		"category_id":   g.CategoryID,
		"wallet_id":     g.WalletID,
		"start_date":    g.StartDate,
		"end_date":      g.EndDate,
		"is_active":     g.IsActive,
		"created_at":    time.Now(),
		"updated_at":    time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateGoal")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating goal")

		return err
	}

	return nil
}

func (r *goalRepository) GetGoalByID(c context.Context, id string) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(c)
	var g GoalDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetGoalByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetGoalByID named query preparation err")

		return entity.Goal{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetGoalByID no rows found")
			return entity.Goal{}, goal.ErrGoalNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetGoalByID execution err")
		return entity.Goal{}, err
	}

	return r.makeGoal(g), nil
}

func (r *goalRepository) GetGoalsByUserID(c context.Context, userID string) ([]entity.Goal, error) {
	return r.selectGoals(c, queryGetGoalsByUserID, map[string]interface{}{
		"user_id": userID,
	}, "GetGoalsByUserID")
}

func (r *goalRepository) UpdateGoal(c context.Context, g entity.Goal) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            g.ID,
		"name":          g.Name,
		"type":          g.Type,
		"target_amount": g.TargetAmount,
		"category_id":   g.CategoryID,
		"wallet_id":     g.WalletID,
		"start_date":    g.StartDate,
		"end_date":      g.EndDate,
		"is_active":     g.IsActive,
		"updated_at":    time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateGoal named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateGoal execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateGoal rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateGoal no rows affected")

		return goal.ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) DeleteGoal(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteGoal named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteGoal execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteGoal rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteGoal no rows affected")

		return goal.ErrGoalNotFound
	}

	return nil
}

// GetEvaluableGoals returns every active goal carrying an end date,
// system-wide. Goals without an end date never enter an evaluation pass.
func (r *goalRepository) GetEvaluableGoals(ctx context.Context) ([]entity.Goal, error) {
	return r.selectGoals(ctx, queryGetEvaluableGoals, map[string]interface{}{}, "GetEvaluableGoals")
}

func (r *goalRepository) GetEvaluableGoalsByUserID(ctx context.Context, userID string) ([]entity.Goal, error) {
	return r.selectGoals(ctx, queryGetEvaluableGoalsByUserID, map[string]interface{}{
		"user_id": userID,
	}, "GetEvaluableGoalsByUserID")
}

func (r *goalRepository) selectGoals(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) ([]entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var goals []GoalDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Goal select named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &goals, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Goal select execution err")
		return nil, err
	}

	result := make([]entity.Goal, 0, len(goals))
	for _, g := range goals {
		result = append(result, r.makeGoal(g))
	}

	return result, nil
}

func (r *goalRepository) makeGoal(g GoalDB) entity.Goal {
	goalRes := entity.Goal{
		ID:           g.ID.String,
		UserID:       g.UserID.String,
		Name:         g.Name.String,
		Type:         g.Type.String,
		TargetAmount: g.TargetAmount.Float64,
		IsActive:     g.IsActive.Bool,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}

	if g.CategoryID.Valid {
		categoryID := g.CategoryID.String
		goalRes.CategoryID = &categoryID
	}
	if g.WalletID.Valid {
		walletID := g.WalletID.String
		goalRes.WalletID = &walletID
	}
	if g.StartDate.Valid {
		startDate := g.StartDate.Time
		goalRes.StartDate = &startDate
	}
	if g.EndDate.Valid {
		endDate := g.EndDate.Time
		goalRes.EndDate = &endDate
	}

	return goalRes
}
