package walletRepository

const (
	queryCreateWallet = `
		INSERT INTO wallets (
			id,
			user_id,
			name,
			currency,
			balance,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:currency,
			:balance,
			:created_at,
			:updated_at
		)
	`

	queryGetWalletByID = `
		SELECT
			id,
			user_id,
			name,
			currency,
			balance,
			created_at,
			updated_at
		FROM wallets
		WHERE id = :id
	`

	queryGetWalletsByUserID = `
		SELECT
			id,
			user_id,
			name,
			currency,
			balance,
			created_at,
			updated_at
		FROM wallets
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryUpdateWallet = `
		UPDATE wallets
		SET
			name = :name,
			currency = :currency,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteWallet = `
		DELETE FROM wallets
		WHERE id = :id
	`
)
