package notification

import "github.com/ademomeragic/budget-tracker-sub000/pkg/response"

var (
	ErrNotificationNotFound = response.NewError(404, "notification not found")
	ErrPreferenceNotFound   = response.NewError(404, "notification preferences not found")
	ErrInvalidThreshold     = response.NewError(400, "threshold percent must be between 0 and 100")
	ErrCreateNotification   = response.NewError(500, "failed to create notification")
	ErrUpdatePreference     = response.NewError(500, "failed to update notification preferences")
	ErrNotificationNotOwned = response.NewError(403, "notification does not belong to user")
	ErrDeleteNotification   = response.NewError(500, "failed to delete notification")
	ErrMarkNotificationRead = response.NewError(500, "failed to mark notification as read")
)
