package goalService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/goal"
	goalRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/goal/repository"
	notificationRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/notification/repository"
	transactionRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction/repository"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/utils"
)

// IGoalEvaluator is the narrow surface the scheduler and the transaction
// service depend on to trigger goal evaluation.
type IGoalEvaluator interface {
	EvaluateUser(ctx context.Context, userID string) error
	EvaluateAllUsers(ctx context.Context) error
}

type IGoalService interface {
	IGoalEvaluator
	CreateGoal(ctx context.Context, req goal.CreateGoalRequest) error
	GetGoalByID(ctx context.Context, id string, userID string) (entity.Goal, error)
	GetGoalsByUserID(ctx context.Context, userID string) ([]entity.Goal, error)
	GetGoalProgress(ctx context.Context, id string, userID string) (goal.GoalProgressResponse, error)
	UpdateGoal(ctx context.Context, req goal.UpdateGoalRequest) error
	DeleteGoal(ctx context.Context, id string, userID string) error
}

type goalService struct {
	log                    *logrus.Logger
	goalRepository         goalRepository.Repository
	transactionRepository  transactionRepository.Repository
	notificationRepository notificationRepository.Repository
	utils                  utils.IUtils
}

func NewGoalService(
	log *logrus.Logger,
	gr goalRepository.Repository,
	tr transactionRepository.Repository,
	nr notificationRepository.Repository,
	utils utils.IUtils,
) IGoalService {
	return &goalService{
		log:                    log,
		goalRepository:         gr,
		transactionRepository:  tr,
		notificationRepository: nr,
		utils:                  utils,
	}
}
