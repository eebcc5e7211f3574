package notificationRepository

const (
	queryCreateNotification = `
		INSERT INTO notifications (
			id,
			user_id,
			message,
			is_read,
			created_at
		) VALUES (
			:id,
			:user_id,
			:message,
			:is_read,
			:created_at
		)
	`

	queryGetNotificationByID = `
		SELECT
			id,
			user_id,
			message,
			is_read,
			created_at
		FROM notifications
		WHERE id = :id
	`

	queryGetNotificationsByUserID = `
		SELECT
			id,
			user_id,
			message,
			is_read,
			created_at
		FROM notifications
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryMarkNotificationRead = `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = :id
	`

	queryDeleteNotification = `
		DELETE FROM notifications
		WHERE id = :id
	`

	queryGetPreferenceByUserID = `
		SELECT
			user_id,
			deadline_warning,
			near_limit_warning,
			exceeded_warning,
			income_congrats,
			threshold_percent,
			updated_at
		FROM notification_preferences
		WHERE user_id = :user_id
	`

	queryUpsertPreference = `
		INSERT INTO notification_preferences (
			user_id,
			deadline_warning,
			near_limit_warning,
			exceeded_warning,
			income_congrats,
			threshold_percent,
			updated_at
		) VALUES (
			:user_id,
			:deadline_warning,
			:near_limit_warning,
			:exceeded_warning,
			:income_congrats,
			:threshold_percent,
			:updated_at
		)
		ON CONFLICT (user_id) DO UPDATE
		SET
			deadline_warning = EXCLUDED.deadline_warning,
			near_limit_warning = EXCLUDED.near_limit_warning,
			exceeded_warning = EXCLUDED.exceeded_warning,
			income_congrats = EXCLUDED.income_congrats,
			threshold_percent = EXCLUDED.threshold_percent,
			updated_at = EXCLUDED.updated_at
	`
)
