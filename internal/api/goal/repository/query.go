package goalRepository

const (
	queryCreateGoal = `
		INSERT INTO goals (
			id,
			user_id,
			name,
			type,
			target_amount,
			category_id,
			wallet_id,
			start_date,
			end_date,
			is_active,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:type,
			:target_amount,
			:category_id,
			:wallet_id,
			:start_date,
			:end_date,
			:is_active,
			:created_at,
			:updated_at
		)
	`

	queryGetGoalByID = `
		SELECT
			id,
			user_id,
			name,
			type,
			target_amount,
			category_id,
			wallet_id,
			start_date,
			end_date,
			is_active,
			created_at,
			updated_at
		FROM goals
		WHERE id = :id
	`

	queryGetGoalsByUserID = `
		SELECT
			id,
			user_id,
			name,
			type,
			target_amount,
			category_id,
			wallet_id,
			start_date,
			end_date,
			is_active,
			created_at,
			updated_at
		FROM goals
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryUpdateGoal = `
		UPDATE goals
		SET
			name = :name,
			type = :type,
			target_amount = :target_amount,
			category_id = :category_id,
			wallet_id = :wallet_id,
			start_date = :start_date,
			end_date = :end_date,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteGoal = `
		DELETE FROM goals
		WHERE id = :id
	`

	queryGetEvaluableGoals = `
		SELECT
			id,
			user_id,
			name,
			type,
			target_amount,
			category_id,
			wallet_id,
			start_date,
			end_date,
			is_active,
			created_at,
			updated_at
		FROM goals
		WHERE
			is_active = TRUE
			AND end_date IS NOT NULL
		ORDER BY user_id, created_at
	`

	queryGetEvaluableGoalsByUserID = `
		SELECT
			id,
			user_id,
			name,
			type,
			target_amount,
			category_id,
			wallet_id,
			start_date,
			end_date,
			is_active,
			created_at,
			updated_at
		FROM goals
		WHERE
			user_id = :user_id
			AND is_active = TRUE
			AND end_date IS NOT NULL
		ORDER BY created_at
	`
)
