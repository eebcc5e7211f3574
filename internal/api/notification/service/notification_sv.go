package notificationService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/notification"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
)

func (s *notificationService) GetNotificationsByUserID(ctx context.Context, userID string) (notification.NotificationListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return notification.NotificationListResponse{}, err
	}

	notifications, err := repo.Notification.GetNotificationsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get notifications by user ID")
		return notification.NotificationListResponse{}, err
	}

	res := notification.NotificationListResponse{
		Notifications: make([]notification.NotificationResponse, 0, len(notifications)),
	}
	for _, n := range notifications {
		if !n.IsRead {
			res.UnreadCount++
		}
		res.Notifications = append(res.Notifications, notification.NotificationResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}

	return res, nil
}

func (s *notificationService) MarkNotificationRead(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existingNotification, err := repo.Notification.GetNotificationByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get notification by ID")
		return err
	}

	if existingNotification.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":           requestID,
			"notification_user_id": existingNotification.UserID,
			"request_user_id":      userID,
		}).Warn("Notification does not belong to user")
		return notification.ErrNotificationNotOwned
	}

	if err := repo.Notification.MarkNotificationRead(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to mark notification as read")
		return notification.ErrMarkNotificationRead
	}

	return nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existingNotification, err := repo.Notification.GetNotificationByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get notification by ID")
		return err
	}

	if existingNotification.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":           requestID,
			"notification_user_id": existingNotification.UserID,
			"request_user_id":      userID,
		}).Warn("Notification does not belong to user")
		return notification.ErrNotificationNotOwned
	}

	if err := repo.Notification.DeleteNotification(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete notification")
		return notification.ErrDeleteNotification
	}

	return nil
}

func (s *notificationService) GetPreferences(ctx context.Context, userID string) (entity.NotificationPreference, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.NotificationPreference{}, err
	}

	prefs, err := repo.Preference.GetPreferenceByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to get notification preferences")
		return entity.NotificationPreference{}, err
	}

	return prefs, nil
}

func (s *notificationService) UpdatePreferences(ctx context.Context, req notification.UpdatePreferenceRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if req.ThresholdPercent < 0 || req.ThresholdPercent > 100 {
		s.log.WithFields(logrus.Fields{
			"request_id":        requestID,
			"threshold_percent": req.ThresholdPercent,
		}).Warn("Invalid threshold percent")
		return notification.ErrInvalidThreshold
	}

	prefs := entity.NotificationPreference{
		UserID:           req.UserID,
		DeadlineWarning:  req.DeadlineWarning,
		NearLimitWarning: req.NearLimitWarning,
		ExceededWarning:  req.ExceededWarning,
		IncomeCongrats:   req.IncomeCongrats,
		ThresholdPercent: req.ThresholdPercent,
		UpdatedAt:        time.Now(),
	}

	if err := repo.Preference.UpsertPreference(ctx, prefs); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update notification preferences")
		return notification.ErrUpdatePreference
	}

	return nil
}
