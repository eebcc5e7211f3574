package notificationService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/notification"
	notificationRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/notification/repository"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
)

type INotificationService interface {
	GetNotificationsByUserID(ctx context.Context, userID string) (notification.NotificationListResponse, error)
	MarkNotificationRead(ctx context.Context, id string, userID string) error
	DeleteNotification(ctx context.Context, id string, userID string) error
	GetPreferences(ctx context.Context, userID string) (entity.NotificationPreference, error)
	UpdatePreferences(ctx context.Context, req notification.UpdatePreferenceRequest) error
}

type notificationService struct {
	log                    *logrus.Logger
	notificationRepository notificationRepository.Repository
}

func NewNotificationService(log *logrus.Logger, nr notificationRepository.Repository) INotificationService {
	return &notificationService{
		log:                    log,
		notificationRepository: nr,
	}
}
