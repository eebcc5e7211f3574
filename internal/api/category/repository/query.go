package categoryRepository

const (
	queryCreateCategory = `
		INSERT INTO categories (
			id,
			user_id,
			name,
			type,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:type,
			:created_at,
			:updated_at
		)
	`

	queryGetCategoryByID = `
		SELECT
			id,
			user_id,
			name,
			type,
			created_at,
			updated_at
		FROM categories
		WHERE id = :id
	`

	queryGetCategoriesByUserID = `
		SELECT
			id,
			user_id,
			name,
			type,
			created_at,
			updated_at
		FROM categories
		WHERE user_id = :user_id
		ORDER BY name
	`

	queryUpdateCategory = `
		UPDATE categories
		SET
			name = :name,
			type = :type,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id
	`
)
