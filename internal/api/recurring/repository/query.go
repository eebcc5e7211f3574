package recurringRepository

const (
	queryCreateRecurring = `
		INSERT INTO recurring_transactions (
			id,
			user_id,
			wallet_id,
			category_id,
			type,
			amount,
			description,
			frequency,
			start_date,
			end_date,
			last_executed_at,
			is_active,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:wallet_id,
			:category_id,
			:type,
			:amount,
			:description,
			:frequency,
			:start_date,
			:end_date,
			:last_executed_at,
			:is_active,
			:created_at,
			:updated_at
		)
	`

	queryGetRecurringByID = `
		SELECT
			id,
			user_id,
			wallet_id,
			category_id,
			type,
			amount,
			description,
			frequency,
			start_date,
			end_date,
			last_executed_at,
			is_active,
			created_at,
			updated_at
		FROM recurring_transactions
		WHERE id = :id
	`

	queryGetRecurringByUserID = `
		SELECT
			id,
			user_id,
			wallet_id,
			category_id,
			type,
			amount,
			description,
			frequency,
			start_date,
			end_date,
			last_executed_at,
			is_active,
			created_at,
			updated_at
		FROM recurring_transactions
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryGetActiveRecurring = `
		SELECT
			id,
			user_id,
			wallet_id,
			category_id,
			type,
			amount,
			description,
			frequency,
			start_date,
			end_date,
			last_executed_at,
			is_active,
			created_at,
			updated_at
		FROM recurring_transactions
		WHERE
			is_active = TRUE
			AND start_date <= NOW()
			AND (end_date IS NULL OR end_date >= NOW())
		ORDER BY user_id, created_at
	`

	queryUpdateRecurring = `
		UPDATE recurring_transactions
		SET
			wallet_id = :wallet_id,
			category_id = :category_id,
			type = :type,
			amount = :amount,
			description = :description,
			frequency = :frequency,
			start_date = :start_date,
			end_date = :end_date,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateLastExecution = `
		UPDATE recurring_transactions
		SET
			last_executed_at = :last_executed_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteRecurring = `
		DELETE FROM recurring_transactions
		WHERE id = :id
	`
)
