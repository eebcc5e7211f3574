package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			user_id,
			wallet_id,
			category_id,
			type,
			amount,
			description,
			occurred_at,
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
			:occurred_at,
			:created_at,
			:updated_at
		)
	`

	queryGetTransactionByID = `
		SELECT
			id,
			user_id,
			wallet_id,
			category_id,
			type,
			amount,
			description,
			occurred_at,
			created_at,
			updated_at
		FROM transactions
		WHERE id = :id
	`

	queryGetTransactionsByUserID = `
		SELECT
			id,
			user_id,
			wallet_id,
			category_id,
			type,
			amount,
			description,
			occurred_at,
			created_at,
			updated_at
		FROM transactions
		WHERE user_id = :user_id
		ORDER BY occurred_at DESC
	`

	queryGetTransactionsByWalletID = `
		SELECT
			id,
			user_id,
			wallet_id,
			category_id,
			type,
			amount,
			description,
			occurred_at,
			created_at,
			updated_at
		FROM transactions
		WHERE
			user_id = :user_id
			AND wallet_id = :wallet_id
		ORDER BY occurred_at DESC
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			wallet_id = :wallet_id,
			category_id = :category_id,
			type = :type,
			amount = :amount,
			description = :description,
			occurred_at = :occurred_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`

	queryAdjustWalletBalance = `
		UPDATE wallets
		SET
			balance = balance + :delta,
			updated_at = :updated_at
		WHERE id = :id
	`

	querySumByFilter = `
		SELECT COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE
			user_id = :user_id
			AND type = :type
			AND (CAST(:category_id AS TEXT) IS NULL OR category_id = :category_id)
			AND (CAST(:wallet_id AS TEXT) IS NULL OR wallet_id = :wallet_id)
			AND (CAST(:date_from AS TIMESTAMPTZ) IS NULL OR occurred_at >= :date_from)
			AND (CAST(:date_to AS TIMESTAMPTZ) IS NULL OR occurred_at <= :date_to)
	`
)
