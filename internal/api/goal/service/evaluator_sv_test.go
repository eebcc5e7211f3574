package goalService

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	goalRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/goal/repository"
	"github.com/ademomeragic/budget-tracker-sub000/internal/api/notification"
	notificationRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/notification/repository"
	transactionRepository "github.com/ademomeragic/budget-tracker-sub000/internal/api/transaction/repository"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/utils"
)

type fakeGoalStore struct {
	goals []entity.Goal
	err   error
}

func (f *fakeGoalStore) CreateGoal(_ context.Context, g entity.Goal) error {
	f.goals = append(f.goals, g)
	return f.err
}

func (f *fakeGoalStore) GetGoalByID(_ context.Context, id string) (entity.Goal, error) {
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return entity.Goal{}, f.err
}

func (f *fakeGoalStore) GetGoalsByUserID(_ context.Context, userID string) ([]entity.Goal, error) {
	var out []entity.Goal
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, f.err
}

func (f *fakeGoalStore) UpdateGoal(_ context.Context, _ entity.Goal) error { return f.err }

func (f *fakeGoalStore) DeleteGoal(_ context.Context, _ string) error { return f.err }

func (f *fakeGoalStore) GetEvaluableGoals(_ context.Context) ([]entity.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Goal
	for _, g := range f.goals {
		if g.IsActive && g.EndDate != nil {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoalStore) GetEvaluableGoalsByUserID(ctx context.Context, userID string) ([]entity.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	all, _ := f.GetEvaluableGoals(ctx)
	var out []entity.Goal
	for _, g := range all {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeGoalRepo struct{ store *fakeGoalStore }

func (f *fakeGoalRepo) NewClient(_ bool) (goalRepository.Client, error) {
	return goalRepository.Client{
		Goal:     f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeTransactionStore struct {
	sums    map[string]float64
	filters []entity.TransactionFilter
	sumErr  error
}

func (f *fakeTransactionStore) CreateTransaction(_ context.Context, _ entity.Transaction) error {
	return nil
}

func (f *fakeTransactionStore) GetTransactionByID(_ context.Context, _ string) (entity.Transaction, error) {
	return entity.Transaction{}, nil
}

func (f *fakeTransactionStore) GetTransactionsByUserID(_ context.Context, _ string) ([]entity.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionStore) GetTransactionsByWalletID(_ context.Context, _ string, _ string) ([]entity.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionStore) UpdateTransaction(_ context.Context, _ entity.Transaction) error {
	return nil
}

func (f *fakeTransactionStore) DeleteTransaction(_ context.Context, _ string) error { return nil }

func (f *fakeTransactionStore) AdjustWalletBalance(_ context.Context, _ string, _ float64) error {
	return nil
}

func (f *fakeTransactionStore) SumByFilter(_ context.Context, filter entity.TransactionFilter) (float64, error) {
	f.filters = append(f.filters, filter)
	if f.sumErr != nil {
		return 0, f.sumErr
	}
	return f.sums[filter.UserID+"/"+filter.Type], nil
}

type fakeTransactionRepo struct{ store *fakeTransactionStore }

func (f *fakeTransactionRepo) NewClient(_ bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transaction: f.store,
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

type fakeNotificationStore struct {
	created   []entity.Notification
	createErr error
}

func (f *fakeNotificationStore) CreateNotification(_ context.Context, n entity.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationStore) GetNotificationByID(_ context.Context, _ string) (entity.Notification, error) {
	return entity.Notification{}, nil
}

func (f *fakeNotificationStore) GetNotificationsByUserID(_ context.Context, _ string) ([]entity.Notification, error) {
	return f.created, nil
}

func (f *fakeNotificationStore) MarkNotificationRead(_ context.Context, _ string) error { return nil }

func (f *fakeNotificationStore) DeleteNotification(_ context.Context, _ string) error { return nil }

type fakePreferenceStore struct {
	prefs map[string]entity.NotificationPreference
	err   error
}

func (f *fakePreferenceStore) GetPreferenceByUserID(_ context.Context, userID string) (entity.NotificationPreference, error) {
	if f.err != nil {
		return entity.NotificationPreference{}, f.err
	}
	p, ok := f.prefs[userID]
	if !ok {
		return entity.NotificationPreference{}, notification.ErrPreferenceNotFound
	}
	return p, nil
}

func (f *fakePreferenceStore) UpsertPreference(_ context.Context, p entity.NotificationPreference) error {
	if f.prefs == nil {
		f.prefs = map[string]entity.NotificationPreference{}
	}
	f.prefs[p.UserID] = p
	return nil
}

type notificationStore interface {
	CreateNotification(c context.Context, notification entity.Notification) error
	GetNotificationByID(c context.Context, id string) (entity.Notification, error)
	GetNotificationsByUserID(c context.Context, userID string) ([]entity.Notification, error)
	MarkNotificationRead(c context.Context, id string) error
	DeleteNotification(ctx context.Context, id string) error
}

type fakeNotificationRepo struct {
	notifications notificationStore
	preferences   *fakePreferenceStore
}

func (f *fakeNotificationRepo) NewClient(_ bool) (notificationRepository.Client, error) {
	return notificationRepository.Client{
		Notification: f.notifications,
		Preference:   f.preferences,
		Commit:       func() error { return nil },
		Rollback:     func() error { return nil },
	}, nil
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type evaluatorFixture struct {
	service       IGoalService
	goals         *fakeGoalStore
	transactions  *fakeTransactionStore
	notifications *fakeNotificationStore
	preferences   *fakePreferenceStore
}

func newEvaluatorFixture() *evaluatorFixture {
	goals := &fakeGoalStore{}
	transactions := &fakeTransactionStore{sums: map[string]float64{}}
	notifications := &fakeNotificationStore{}
	preferences := &fakePreferenceStore{prefs: map[string]entity.NotificationPreference{}}

	service := NewGoalService(
		newTestLogger(),
		&fakeGoalRepo{store: goals},
		&fakeTransactionRepo{store: transactions},
		&fakeNotificationRepo{notifications: notifications, preferences: preferences},
		utils.New(),
	)

	return &evaluatorFixture{
		service:       service,
		goals:         goals,
		transactions:  transactions,
		notifications: notifications,
		preferences:   preferences,
	}
}

func allPrefs(userID string, threshold int) entity.NotificationPreference {
	return entity.NotificationPreference{
		UserID:           userID,
		DeadlineWarning:  true,
		NearLimitWarning: true,
		ExceededWarning:  true,
		IncomeCongrats:   true,
		ThresholdPercent: threshold,
	}
}

func activeGoal(id, userID, name, goalType string, target float64, endsIn time.Duration) entity.Goal {
	end := time.Now().Add(endsIn)
	return entity.Goal{
		ID:           id,
		UserID:       userID,
		Name:         name,
		Type:         goalType,
		TargetAmount: target,
		EndDate:      &end,
		IsActive:     true,
	}
}

func messages(notifications []entity.Notification) []string {
	out := make([]string, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, n.Message)
	}
	return out
}

func TestEvaluateUser_VacationScenario(t *testing.T) {
	f := newEvaluatorFixture()
	f.preferences.prefs["u1"] = allPrefs("u1", 80)
	f.goals.goals = []entity.Goal{
		activeGoal("g1", "u1", "Vacation", "expense", 100, 48*time.Hour),
	}
	f.transactions.sums["u1/expense"] = 85

	if err := f.service.EvaluateUser(context.Background(), "u1"); err != nil {
		t.Fatalf("EvaluateUser() error = %v", err)
	}

	got := messages(f.notifications.created)
	if len(got) != 2 {
		t.Fatalf("expected exactly 2 notifications, got %d: %v", len(got), got)
	}
	if got[0] != "goal 'Vacation' is nearing its deadline." {
		t.Errorf("deadline message = %q", got[0])
	}
	if got[1] != "you're over 80% of your goal 'Vacation'." {
		t.Errorf("near-limit message = %q", got[1])
	}
}

func TestEvaluateUser_ThresholdRules(t *testing.T) {
	tests := []struct {
		name      string
		goalType  string
		target    float64
		sum       float64
		threshold int
		endsIn    time.Duration
		want      []string
	}{
		{
			name:      "income goal reached emits congrats only",
			goalType:  "income",
			target:    100,
			sum:       105,
			threshold: 80,
			endsIn:    30 * 24 * time.Hour,
			want: []string{
				"congratulations, you've reached your income goal 'Raise'.",
			},
		},
		{
			name:      "expense goal exceeded emits warning only",
			goalType:  "expense",
			target:    100,
			sum:       105,
			threshold: 80,
			endsIn:    30 * 24 * time.Hour,
			want: []string{
				"you've exceeded your expense goal 'Raise'.",
			},
		},
		{
			name:      "income goal reached with deadline close emits both",
			goalType:  "income",
			target:    100,
			sum:       105,
			threshold: 80,
			endsIn:    48 * time.Hour,
			want: []string{
				"goal 'Raise' is nearing its deadline.",
				"congratulations, you've reached your income goal 'Raise'.",
			},
		},
		{
			name:      "progress exactly at threshold fires near-limit",
			goalType:  "expense",
			target:    100,
			sum:       80,
			threshold: 80,
			endsIn:    30 * 24 * time.Hour,
			want: []string{
				"you're over 80% of your goal 'Raise'.",
			},
		},
		{
			name:      "progress exactly at target is exceeded, not near-limit",
			goalType:  "expense",
			target:    100,
			sum:       100,
			threshold: 80,
			endsIn:    30 * 24 * time.Hour,
			want: []string{
				"you've exceeded your expense goal 'Raise'.",
			},
		},
		{
			name:      "below threshold and far deadline emits nothing",
			goalType:  "expense",
			target:    100,
			sum:       50,
			threshold: 80,
			endsIn:    30 * 24 * time.Hour,
			want:      nil,
		},
		{
			name:      "past-due deadline still warns",
			goalType:  "expense",
			target:    100,
			sum:       10,
			threshold: 80,
			endsIn:    -24 * time.Hour,
			want: []string{
				"goal 'Raise' is nearing its deadline.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEvaluatorFixture()
			f.preferences.prefs["u1"] = allPrefs("u1", tt.threshold)
			f.goals.goals = []entity.Goal{
				activeGoal("g1", "u1", "Raise", tt.goalType, tt.target, tt.endsIn),
			}
			f.transactions.sums["u1/"+tt.goalType] = tt.sum

			if err := f.service.EvaluateUser(context.Background(), "u1"); err != nil {
				t.Fatalf("EvaluateUser() error = %v", err)
			}

			got := messages(f.notifications.created)
			if len(got) != len(tt.want) {
				t.Fatalf("notifications = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("notification[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEvaluateUser_PreferenceGates(t *testing.T) {
	f := newEvaluatorFixture()
	prefs := allPrefs("u1", 80)
	prefs.NearLimitWarning = false
	prefs.DeadlineWarning = false
	f.preferences.prefs["u1"] = prefs

	f.goals.goals = []entity.Goal{
		activeGoal("g1", "u1", "Vacation", "expense", 100, 48*time.Hour),
	}
	f.transactions.sums["u1/expense"] = 85

	if err := f.service.EvaluateUser(context.Background(), "u1"); err != nil {
		t.Fatalf("EvaluateUser() error = %v", err)
	}

	if len(f.notifications.created) != 0 {
		t.Errorf("disabled preferences still emitted: %v", messages(f.notifications.created))
	}
}

func TestEvaluateUser_MissingPreferencesSkipsSilently(t *testing.T) {
	f := newEvaluatorFixture()
	f.goals.goals = []entity.Goal{
		activeGoal("g1", "u1", "Vacation", "expense", 100, 48*time.Hour),
	}
	f.transactions.sums["u1/expense"] = 200

	if err := f.service.EvaluateUser(context.Background(), "u1"); err != nil {
		t.Fatalf("EvaluateUser() error = %v", err)
	}

	if len(f.notifications.created) != 0 {
		t.Errorf("expected no notifications without preferences, got %v", messages(f.notifications.created))
	}
}

func TestEvaluateUser_RepeatedRunsEmitAgain(t *testing.T) {
	f := newEvaluatorFixture()
	f.preferences.prefs["u1"] = allPrefs("u1", 80)
	f.goals.goals = []entity.Goal{
		activeGoal("g1", "u1", "Vacation", "expense", 100, 30*24*time.Hour),
	}
	f.transactions.sums["u1/expense"] = 105

	for i := 0; i < 2; i++ {
		if err := f.service.EvaluateUser(context.Background(), "u1"); err != nil {
			t.Fatalf("EvaluateUser() run %d error = %v", i, err)
		}
	}

	if len(f.notifications.created) != 2 {
		t.Errorf("expected 2 notifications across 2 runs, got %d", len(f.notifications.created))
	}
}

func TestEvaluateUser_KindMatchingFilter(t *testing.T) {
	f := newEvaluatorFixture()
	f.preferences.prefs["u1"] = allPrefs("u1", 80)

	categoryID := "cat-1"
	start := time.Now().Add(-30 * 24 * time.Hour)
	end := time.Now().Add(30 * 24 * time.Hour)
	f.goals.goals = []entity.Goal{
		{
			ID:           "g1",
			UserID:       "u1",
			Name:         "Groceries",
			Type:         "expense",
			TargetAmount: 100,
			CategoryID:   &categoryID,
			StartDate:    &start,
			EndDate:      &end,
			IsActive:     true,
		},
	}

	if err := f.service.EvaluateUser(context.Background(), "u1"); err != nil {
		t.Fatalf("EvaluateUser() error = %v", err)
	}

	if len(f.transactions.filters) != 1 {
		t.Fatalf("expected 1 sum query, got %d", len(f.transactions.filters))
	}

	filter := f.transactions.filters[0]
	if filter.Type != "expense" {
		t.Errorf("filter type = %q, want expense", filter.Type)
	}
	if filter.UserID != "u1" {
		t.Errorf("filter user = %q, want u1", filter.UserID)
	}
	if filter.CategoryID == nil || *filter.CategoryID != categoryID {
		t.Errorf("filter category = %v, want %q", filter.CategoryID, categoryID)
	}
	if filter.DateFrom == nil || !filter.DateFrom.Equal(start) {
		t.Errorf("filter date_from = %v, want %v", filter.DateFrom, start)
	}
	if filter.DateTo == nil || !filter.DateTo.Equal(end) {
		t.Errorf("filter date_to = %v, want %v", filter.DateTo, end)
	}
}

func TestEvaluateUser_GoalsWithoutEndDateIgnored(t *testing.T) {
	f := newEvaluatorFixture()
	f.preferences.prefs["u1"] = allPrefs("u1", 80)
	f.goals.goals = []entity.Goal{
		{
			ID:           "g1",
			UserID:       "u1",
			Name:         "Open-ended",
			Type:         "expense",
			TargetAmount: 100,
			IsActive:     true,
		},
	}
	f.transactions.sums["u1/expense"] = 200

	if err := f.service.EvaluateUser(context.Background(), "u1"); err != nil {
		t.Fatalf("EvaluateUser() error = %v", err)
	}

	if len(f.notifications.created) != 0 {
		t.Errorf("goal without end date was evaluated: %v", messages(f.notifications.created))
	}
}

func TestEvaluateUser_ProgressErrorAbortsBatch(t *testing.T) {
	f := newEvaluatorFixture()
	f.preferences.prefs["u1"] = allPrefs("u1", 80)
	f.goals.goals = []entity.Goal{
		activeGoal("g1", "u1", "First", "expense", 100, 30*24*time.Hour),
		activeGoal("g2", "u1", "Second", "expense", 100, 30*24*time.Hour),
	}
	f.transactions.sumErr = errors.New("database gone")

	err := f.service.EvaluateUser(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected error from failed progress calculation")
	}
	if len(f.notifications.created) != 0 {
		t.Errorf("expected no notifications after failure, got %v", messages(f.notifications.created))
	}
}

func TestEvaluateAllUsers_SweepsEveryUser(t *testing.T) {
	f := newEvaluatorFixture()
	f.preferences.prefs["u1"] = allPrefs("u1", 80)
	f.preferences.prefs["u2"] = allPrefs("u2", 80)
	f.goals.goals = []entity.Goal{
		activeGoal("g1", "u1", "Vacation", "expense", 100, 30*24*time.Hour),
		activeGoal("g2", "u2", "Raise", "income", 100, 30*24*time.Hour),
	}
	f.transactions.sums["u1/expense"] = 105
	f.transactions.sums["u2/income"] = 105

	if err := f.service.EvaluateAllUsers(context.Background()); err != nil {
		t.Fatalf("EvaluateAllUsers() error = %v", err)
	}

	got := messages(f.notifications.created)
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %v", got)
	}
	if !strings.Contains(got[0], "Vacation") {
		t.Errorf("first notification = %q, want Vacation", got[0])
	}
	if !strings.Contains(got[1], "Raise") {
		t.Errorf("second notification = %q, want Raise", got[1])
	}
}

func TestEvaluateAllUsers_SkipsUsersWithoutPreferences(t *testing.T) {
	f := newEvaluatorFixture()
	f.preferences.prefs["u2"] = allPrefs("u2", 80)
	f.goals.goals = []entity.Goal{
		activeGoal("g1", "u1", "Vacation", "expense", 100, 30*24*time.Hour),
		activeGoal("g2", "u2", "Raise", "income", 100, 30*24*time.Hour),
	}
	f.transactions.sums["u1/expense"] = 200
	f.transactions.sums["u2/income"] = 105

	if err := f.service.EvaluateAllUsers(context.Background()); err != nil {
		t.Fatalf("EvaluateAllUsers() error = %v", err)
	}

	got := messages(f.notifications.created)
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %v", got)
	}
	if got[0] != "congratulations, you've reached your income goal 'Raise'." {
		t.Errorf("notification = %q", got[0])
	}
}

func TestEvaluateAllUsers_FailingUserDoesNotStopSweep(t *testing.T) {
	f := newEvaluatorFixture()
	f.preferences.prefs["u1"] = allPrefs("u1", 80)
	f.preferences.prefs["u2"] = allPrefs("u2", 80)
	f.goals.goals = []entity.Goal{
		activeGoal("g1", "u1", "Vacation", "expense", 100, 30*24*time.Hour),
		activeGoal("g2", "u2", "Raise", "income", 100, 30*24*time.Hour),
	}
	f.transactions.sums["u1/expense"] = 105
	f.transactions.sums["u2/income"] = 105

	// The first user's notification write fails, aborting that user's
	// batch; the second user must still be evaluated.
	failing := &flakyNotificationStore{failFirst: true}
	service := NewGoalService(
		newTestLogger(),
		&fakeGoalRepo{store: f.goals},
		&fakeTransactionRepo{store: f.transactions},
		&fakeNotificationRepo{notifications: failing, preferences: f.preferences},
		utils.New(),
	)

	if err := service.EvaluateAllUsers(context.Background()); err != nil {
		t.Fatalf("EvaluateAllUsers() error = %v", err)
	}

	got := messages(failing.created)
	if len(got) != 1 {
		t.Fatalf("expected sweep to continue past failing user, got %v", got)
	}
	if !strings.Contains(got[0], "Raise") {
		t.Errorf("surviving notification = %q, want Raise", got[0])
	}
}

type flakyNotificationStore struct {
	failFirst bool
	created   []entity.Notification
}

func (f *flakyNotificationStore) CreateNotification(_ context.Context, n entity.Notification) error {
	if f.failFirst {
		f.failFirst = false
		return errors.New("notification store unavailable")
	}
	f.created = append(f.created, n)
	return nil
}

func (f *flakyNotificationStore) GetNotificationByID(_ context.Context, _ string) (entity.Notification, error) {
	return entity.Notification{}, nil
}

func (f *flakyNotificationStore) GetNotificationsByUserID(_ context.Context, _ string) ([]entity.Notification, error) {
	return f.created, nil
}

func (f *flakyNotificationStore) MarkNotificationRead(_ context.Context, _ string) error { return nil }

func (f *flakyNotificationStore) DeleteNotification(_ context.Context, _ string) error { return nil }
