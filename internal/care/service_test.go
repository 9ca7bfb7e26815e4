package care

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
	"github.com/geoquest/GeoQuest_Go/internal/repository"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	testPlantID  = "11111111-1111-1111-1111-111111111111"
	testUserID   = "22222222-2222-2222-2222-222222222222"
	testTaskID   = "33333333-3333-3333-3333-333333333333"
	testPhotoURL = "https://ik.imagekit.io/geoquest/care_logs/care_p1.jpg"
)

var (
	testNow   = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	testImage = []byte{0xff, 0xd8, 0xff, 0xe0}
	testPlant = &domain.Plant{ID: testPlantID, Latitude: 44.34, Longitude: 10.99, HealthScore: 65}
)

type testDeps struct {
	repo       *MockCareRepository
	tx         *MockCareTx
	env        *MockEnvironmentProvider
	archiver   *MockMediaArchiver
	perception *MockPerceptionAdapter
}

func newTestService(t *testing.T, notifier Notifier) (*service, *testDeps) {
	t.Helper()
	deps := &testDeps{
		repo:       new(MockCareRepository),
		tx:         new(MockCareTx),
		env:        new(MockEnvironmentProvider),
		archiver:   new(MockMediaArchiver),
		perception: new(MockPerceptionAdapter),
	}
	svc := NewService(deps.repo, deps.env, deps.archiver, deps.perception, notifier, Config{
		PerceptionTimeout:  time.Second,
		EnvironmentTimeout: time.Second,
	}).(*service)
	svc.now = func() time.Time { return testNow }
	return svc, deps
}

func checkinSubmission() domain.CareSubmission {
	return domain.CareSubmission{
		UserID:   testUserID,
		PlantID:  testPlantID,
		Image:    testImage,
		MimeType: "image/jpeg",
	}
}

// expectContextAndAssessment wires the happy path up to the transaction
func (d *testDeps) expectContextAndAssessment(assessment *domain.HealthAssessment) {
	d.repo.On("GetPlantByID", mock.Anything, testPlantID).Return(testPlant, nil)
	d.repo.On("ListRecentCareLogs", mock.Anything, testPlantID, HistoryLimit).Return([]domain.CareLog{}, nil)
	d.env.On("Summary", mock.Anything, 44.34, 10.99).Return("Clear sky, 18°C, humidity 60%", nil)
	d.archiver.On("Store", mock.Anything, testImage, "care_"+testPlantID+"_1792315800000.jpg", DefaultArchiveFolder).Return(testPhotoURL, nil)
	d.perception.On("Assess", mock.Anything, testImage, "image/jpeg", mock.AnythingOfType("string")).Return(assessment, nil)
}

func (d *testDeps) expectCommittedTx(action domain.CareAction, xp int) {
	d.repo.On("BeginTx", mock.Anything).Return(d.tx, nil)
	d.tx.On("InsertCareLog", mock.Anything, mock.MatchedBy(func(l *domain.CareLog) bool {
		return l.Action == action &&
			l.PhotoURL == testPhotoURL &&
			l.PlantID == testPlantID &&
			l.UserID == testUserID &&
			l.LocationVerified &&
			l.CreatedAt.Equal(testNow)
	})).Return(nil).Once()
	d.tx.On("IncrementUserXP", mock.Anything, testUserID, xp).Return(int64(120), nil).Once()
	d.tx.On("Commit", mock.Anything).Return(nil).Once()
	d.tx.On("Rollback", mock.Anything).Return(repository.ErrTxClosed)
}

func (d *testDeps) assertAll(t *testing.T) {
	d.repo.AssertExpectations(t)
	d.tx.AssertExpectations(t)
	d.env.AssertExpectations(t)
	d.archiver.AssertExpectations(t)
	d.perception.AssertExpectations(t)
}

func TestVerifyCare_DailyCheckin(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.expectContextAndAssessment(&domain.HealthAssessment{HealthScore: 80, Status: "Healthy", Tip: "Water soon"})
	deps.tx.On("UpdatePlantHealth", mock.Anything, testPlantID, 80).Return(nil).Once()
	deps.expectCommittedTx(domain.CareActionDailyCheckin, XPRewardDailyCheckin)

	result, err := svc.VerifyCare(context.Background(), checkinSubmission())

	require.NoError(t, err)
	assert.Equal(t, "Healthy", result.Status)
	assert.Equal(t, "Water soon", result.Tip)
	assert.Equal(t, 80, result.HealthScore)
	assert.Equal(t, 20, result.XPGained)
	assert.Equal(t, int64(120), result.TotalXP)
	assert.False(t, result.TaskAdvanced)
	assert.Equal(t, domain.CareActionDailyCheckin, result.CareLog.Action)
	assert.Equal(t, "log-1", result.CareLog.ID)
	deps.tx.AssertNotCalled(t, "GetCareTaskForUpdate", mock.Anything, mock.Anything, mock.Anything)
	deps.assertAll(t)
}

func TestVerifyCare_TaskCompletionAdvancesSchedule(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.expectContextAndAssessment(&domain.HealthAssessment{HealthScore: 92, Status: "Thriving", Tip: "Keep it up"})
	deps.tx.On("UpdatePlantHealth", mock.Anything, testPlantID, 92).Return(nil).Once()
	deps.tx.On("GetCareTaskForUpdate", mock.Anything, testTaskID, testPlantID).
		Return(&domain.CareTask{ID: testTaskID, PlantID: testPlantID, FrequencyDays: 3}, nil).Once()
	deps.tx.On("UpdateCareTaskSchedule", mock.Anything, testTaskID,
		mock.MatchedBy(func(c time.Time) bool { return c.Equal(testNow) }),
		mock.MatchedBy(func(n time.Time) bool { return n.Equal(testNow.AddDate(0, 0, 3)) }),
	).Return(nil).Once()
	deps.expectCommittedTx(domain.CareActionTaskComplete, XPRewardTaskComplete)

	sub := checkinSubmission()
	sub.TaskID = testTaskID
	result, err := svc.VerifyCare(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, 50, result.XPGained)
	assert.True(t, result.TaskAdvanced)
	assert.Equal(t, domain.CareActionTaskComplete, result.CareLog.Action)
	deps.assertAll(t)
}

func TestVerifyCare_UnresolvedTaskIsCheckin(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.expectContextAndAssessment(&domain.HealthAssessment{HealthScore: 70, Status: "Okay", Tip: "More light"})
	deps.tx.On("UpdatePlantHealth", mock.Anything, testPlantID, 70).Return(nil).Once()
	deps.tx.On("GetCareTaskForUpdate", mock.Anything, testTaskID, testPlantID).Return(nil, nil).Once()
	deps.expectCommittedTx(domain.CareActionDailyCheckin, XPRewardDailyCheckin)

	sub := checkinSubmission()
	sub.TaskID = testTaskID
	result, err := svc.VerifyCare(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, 20, result.XPGained)
	assert.False(t, result.TaskAdvanced)
	deps.tx.AssertNotCalled(t, "UpdateCareTaskSchedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	deps.assertAll(t)
}

func TestVerifyCare_InvalidFrequencyRollsBack(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.expectContextAndAssessment(&domain.HealthAssessment{HealthScore: 70, Status: "Okay"})
	deps.repo.On("BeginTx", mock.Anything).Return(deps.tx, nil)
	deps.tx.On("UpdatePlantHealth", mock.Anything, testPlantID, 70).Return(nil).Once()
	deps.tx.On("GetCareTaskForUpdate", mock.Anything, testTaskID, testPlantID).
		Return(&domain.CareTask{ID: testTaskID, PlantID: testPlantID, FrequencyDays: 0}, nil).Once()
	deps.tx.On("Rollback", mock.Anything).Return(nil).Once()

	sub := checkinSubmission()
	sub.TaskID = testTaskID
	_, err := svc.VerifyCare(context.Background(), sub)

	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)
	deps.tx.AssertNotCalled(t, "InsertCareLog", mock.Anything, mock.Anything)
	deps.tx.AssertNotCalled(t, "Commit", mock.Anything)
	deps.assertAll(t)
}

func TestVerifyCare_MissingInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CareSubmission)
	}{
		{"no photo", func(s *domain.CareSubmission) { s.Image = nil }},
		{"no plant", func(s *domain.CareSubmission) { s.PlantID = "" }},
		{"no user", func(s *domain.CareSubmission) { s.UserID = "" }},
		{"not an image", func(s *domain.CareSubmission) { s.MimeType = "text/plain" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService(t, nil)
			sub := checkinSubmission()
			tt.mutate(&sub)

			_, err := svc.VerifyCare(context.Background(), sub)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			deps.repo.AssertNotCalled(t, "GetPlantByID", mock.Anything, mock.Anything)
			deps.archiver.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			deps.perception.AssertNotCalled(t, "Assess", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestVerifyCare_PlantNotFoundSkipsExternalCalls(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.repo.On("GetPlantByID", mock.Anything, testPlantID).Return(nil, domain.ErrPlantNotFound)

	_, err := svc.VerifyCare(context.Background(), checkinSubmission())

	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
	deps.env.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything, mock.Anything)
	deps.archiver.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	deps.perception.AssertNotCalled(t, "Assess", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	deps.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestVerifyCare_UnparseableAssessmentNeverCommits(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.repo.On("GetPlantByID", mock.Anything, testPlantID).Return(testPlant, nil)
	deps.repo.On("ListRecentCareLogs", mock.Anything, testPlantID, HistoryLimit).Return([]domain.CareLog{}, nil)
	deps.env.On("Summary", mock.Anything, 44.34, 10.99).Return("Rain", nil)
	deps.archiver.On("Store", mock.Anything, testImage, mock.Anything, mock.Anything).Return(testPhotoURL, nil).Maybe()
	deps.perception.On("Assess", mock.Anything, testImage, "image/jpeg", mock.Anything).
		Return(nil, errors.Join(domain.ErrUpstreamData, errors.New("missing healthScore")))

	_, err := svc.VerifyCare(context.Background(), checkinSubmission())

	assert.ErrorIs(t, err, domain.ErrUpstreamData)
	deps.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestVerifyCare_OutOfRangeScoreIsUpstreamData(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.repo.On("GetPlantByID", mock.Anything, testPlantID).Return(testPlant, nil)
	deps.repo.On("ListRecentCareLogs", mock.Anything, testPlantID, HistoryLimit).Return([]domain.CareLog{}, nil)
	deps.env.On("Summary", mock.Anything, 44.34, 10.99).Return("Rain", nil)
	deps.archiver.On("Store", mock.Anything, testImage, mock.Anything, mock.Anything).Return(testPhotoURL, nil).Maybe()
	deps.perception.On("Assess", mock.Anything, testImage, "image/jpeg", mock.Anything).
		Return(&domain.HealthAssessment{HealthScore: 140, Status: "Great"}, nil)

	_, err := svc.VerifyCare(context.Background(), checkinSubmission())

	assert.ErrorIs(t, err, domain.ErrUpstreamData)
	deps.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestVerifyCare_ContextFailuresDegradeToPlaceholders(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.repo.On("GetPlantByID", mock.Anything, testPlantID).Return(testPlant, nil)
	deps.repo.On("ListRecentCareLogs", mock.Anything, testPlantID, HistoryLimit).Return(nil, errors.New("connection reset"))
	deps.env.On("Summary", mock.Anything, 44.34, 10.99).Return("", errors.New("503 from provider"))
	deps.archiver.On("Store", mock.Anything, testImage, mock.Anything, mock.Anything).Return(testPhotoURL, nil)
	deps.perception.On("Assess", mock.Anything, testImage, "image/jpeg", mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, NoHistoryPlaceholder) && strings.Contains(p, NoEnvironmentPlaceholder)
	})).Return(&domain.HealthAssessment{HealthScore: 80, Status: "Healthy", Tip: "Water soon"}, nil)
	deps.tx.On("UpdatePlantHealth", mock.Anything, testPlantID, 80).Return(nil)
	deps.expectCommittedTx(domain.CareActionDailyCheckin, XPRewardDailyCheckin)

	_, err := svc.VerifyCare(context.Background(), checkinSubmission())

	require.NoError(t, err)
	deps.assertAll(t)
}

func TestVerifyCare_HistoryDigestReachesPrompt(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.repo.On("GetPlantByID", mock.Anything, testPlantID).Return(testPlant, nil)
	deps.repo.On("ListRecentCareLogs", mock.Anything, testPlantID, HistoryLimit).Return([]domain.CareLog{
		{Action: domain.CareActionTaskComplete, CreatedAt: testNow.AddDate(0, 0, -1)},
	}, nil)
	deps.env.On("Summary", mock.Anything, 44.34, 10.99).Return("Light rain, 12°C", nil)
	deps.archiver.On("Store", mock.Anything, testImage, mock.Anything, mock.Anything).Return(testPhotoURL, nil)
	deps.perception.On("Assess", mock.Anything, testImage, "image/jpeg", mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "- TASK_COMPLETE on 2026-10-17") && strings.Contains(p, "Light rain, 12°C")
	})).Return(&domain.HealthAssessment{HealthScore: 60, Status: "Soil is soggy"}, nil)
	deps.tx.On("UpdatePlantHealth", mock.Anything, testPlantID, 60).Return(nil)
	deps.expectCommittedTx(domain.CareActionDailyCheckin, XPRewardDailyCheckin)

	_, err := svc.VerifyCare(context.Background(), checkinSubmission())

	require.NoError(t, err)
	deps.assertAll(t)
}

func TestVerifyCare_EnvironmentTimeoutDegrades(t *testing.T) {
	svc, deps := newTestService(t, nil)
	svc.cfg.EnvironmentTimeout = 20 * time.Millisecond
	svc.environment = environmentFunc(func(ctx context.Context, _, _ float64) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	deps.repo.On("GetPlantByID", mock.Anything, testPlantID).Return(testPlant, nil)
	deps.repo.On("ListRecentCareLogs", mock.Anything, testPlantID, HistoryLimit).Return([]domain.CareLog{}, nil)
	deps.archiver.On("Store", mock.Anything, testImage, mock.Anything, mock.Anything).Return(testPhotoURL, nil)
	deps.perception.On("Assess", mock.Anything, testImage, "image/jpeg", mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, NoEnvironmentPlaceholder)
	})).Return(&domain.HealthAssessment{HealthScore: 75, Status: "Fine"}, nil)
	deps.tx.On("UpdatePlantHealth", mock.Anything, testPlantID, 75).Return(nil)
	deps.expectCommittedTx(domain.CareActionDailyCheckin, XPRewardDailyCheckin)

	_, err := svc.VerifyCare(context.Background(), checkinSubmission())

	require.NoError(t, err)
	deps.assertAll(t)
}

func TestVerifyCare_PerceptionTimeoutIsFatal(t *testing.T) {
	svc, deps := newTestService(t, nil)
	svc.cfg.PerceptionTimeout = 20 * time.Millisecond
	svc.perception = perceptionFunc(func(ctx context.Context, _ []byte, _, _ string) (*domain.HealthAssessment, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	deps.repo.On("GetPlantByID", mock.Anything, testPlantID).Return(testPlant, nil)
	deps.repo.On("ListRecentCareLogs", mock.Anything, testPlantID, HistoryLimit).Return([]domain.CareLog{}, nil)
	deps.env.On("Summary", mock.Anything, 44.34, 10.99).Return("Sunny", nil)
	deps.archiver.On("Store", mock.Anything, testImage, mock.Anything, mock.Anything).Return(testPhotoURL, nil)

	_, err := svc.VerifyCare(context.Background(), checkinSubmission())

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	deps.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestVerifyCare_ArchiveFailureIsFatal(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.repo.On("GetPlantByID", mock.Anything, testPlantID).Return(testPlant, nil)
	deps.repo.On("ListRecentCareLogs", mock.Anything, testPlantID, HistoryLimit).Return([]domain.CareLog{}, nil)
	deps.env.On("Summary", mock.Anything, 44.34, 10.99).Return("Sunny", nil)
	deps.archiver.On("Store", mock.Anything, testImage, mock.Anything, mock.Anything).Return("", errors.New("imagekit: 401"))
	deps.perception.On("Assess", mock.Anything, testImage, "image/jpeg", mock.Anything).
		Return(&domain.HealthAssessment{HealthScore: 75, Status: "Fine"}, nil).Maybe()

	_, err := svc.VerifyCare(context.Background(), checkinSubmission())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to archive photo")
	assert.NotErrorIs(t, err, domain.ErrUpstreamData)
	deps.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestVerifyCare_InsertFailureRollsBack(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.expectContextAndAssessment(&domain.HealthAssessment{HealthScore: 80, Status: "Healthy"})
	deps.repo.On("BeginTx", mock.Anything).Return(deps.tx, nil)
	deps.tx.On("UpdatePlantHealth", mock.Anything, testPlantID, 80).Return(nil)
	deps.tx.On("InsertCareLog", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	deps.tx.On("Rollback", mock.Anything).Return(nil).Once()

	_, err := svc.VerifyCare(context.Background(), checkinSubmission())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert care log")
	deps.tx.AssertNotCalled(t, "IncrementUserXP", mock.Anything, mock.Anything, mock.Anything)
	deps.tx.AssertNotCalled(t, "Commit", mock.Anything)
	deps.assertAll(t)
}

func TestVerifyCare_UnknownUserRollsBack(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.expectContextAndAssessment(&domain.HealthAssessment{HealthScore: 80, Status: "Healthy"})
	deps.repo.On("BeginTx", mock.Anything).Return(deps.tx, nil)
	deps.tx.On("UpdatePlantHealth", mock.Anything, testPlantID, 80).Return(nil)
	deps.tx.On("InsertCareLog", mock.Anything, mock.Anything).Return(nil)
	deps.tx.On("IncrementUserXP", mock.Anything, testUserID, XPRewardDailyCheckin).Return(int64(0), domain.ErrUserNotFound)
	deps.tx.On("Rollback", mock.Anything).Return(nil).Once()

	_, err := svc.VerifyCare(context.Background(), checkinSubmission())

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	deps.tx.AssertNotCalled(t, "Commit", mock.Anything)
	deps.assertAll(t)
}

func TestVerifyCare_CommitFailure(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.expectContextAndAssessment(&domain.HealthAssessment{HealthScore: 80, Status: "Healthy"})
	deps.repo.On("BeginTx", mock.Anything).Return(deps.tx, nil)
	deps.tx.On("UpdatePlantHealth", mock.Anything, testPlantID, 80).Return(nil)
	deps.tx.On("InsertCareLog", mock.Anything, mock.Anything).Return(nil)
	deps.tx.On("IncrementUserXP", mock.Anything, testUserID, XPRewardDailyCheckin).Return(int64(20), nil)
	deps.tx.On("Commit", mock.Anything).Return(errors.New("serialization failure"))
	deps.tx.On("Rollback", mock.Anything).Return(nil)

	result, err := svc.VerifyCare(context.Background(), checkinSubmission())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit care verification")
}

func TestVerifyCare_RepeatedSubmissionsEachReward(t *testing.T) {
	svc, deps := newTestService(t, nil)
	deps.repo.On("GetPlantByID", mock.Anything, testPlantID).Return(testPlant, nil)
	deps.repo.On("ListRecentCareLogs", mock.Anything, testPlantID, HistoryLimit).Return([]domain.CareLog{}, nil)
	deps.env.On("Summary", mock.Anything, 44.34, 10.99).Return("Sunny", nil)
	deps.archiver.On("Store", mock.Anything, testImage, mock.Anything, mock.Anything).Return(testPhotoURL, nil)
	deps.perception.On("Assess", mock.Anything, testImage, "image/jpeg", mock.Anything).
		Return(&domain.HealthAssessment{HealthScore: 80, Status: "Healthy"}, nil)
	deps.repo.On("BeginTx", mock.Anything).Return(deps.tx, nil)
	deps.tx.On("UpdatePlantHealth", mock.Anything, testPlantID, 80).Return(nil)
	deps.tx.On("InsertCareLog", mock.Anything, mock.Anything).Return(nil)
	deps.tx.On("IncrementUserXP", mock.Anything, testUserID, XPRewardDailyCheckin).Return(int64(20), nil)
	deps.tx.On("Commit", mock.Anything).Return(nil)
	deps.tx.On("Rollback", mock.Anything).Return(repository.ErrTxClosed)

	for i := 0; i < 2; i++ {
		_, err := svc.VerifyCare(context.Background(), checkinSubmission())
		require.NoError(t, err)
	}

	deps.tx.AssertNumberOfCalls(t, "IncrementUserXP", 2)
	deps.tx.AssertNumberOfCalls(t, "InsertCareLog", 2)
}

func TestVerifyCare_NotifiesAfterCommit(t *testing.T) {
	notifier := new(MockNotifier)
	svc, deps := newTestService(t, notifier)
	deps.expectContextAndAssessment(&domain.HealthAssessment{HealthScore: 80, Status: "Healthy"})
	deps.tx.On("UpdatePlantHealth", mock.Anything, testPlantID, 80).Return(nil)
	deps.expectCommittedTx(domain.CareActionDailyCheckin, XPRewardDailyCheckin)
	notifier.On("NotifyCareVerified", mock.Anything, *testPlant, mock.MatchedBy(func(r domain.CareVerificationResult) bool {
		return r.XPGained == XPRewardDailyCheckin && r.Status == "Healthy"
	})).Return(errors.New("webhook rate limited"))

	ctx, cancel := context.WithCancel(context.Background())
	_, err := svc.VerifyCare(ctx, checkinSubmission())
	cancel()
	require.NoError(t, err)

	shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
	defer done()
	require.NoError(t, svc.Shutdown(shutdownCtx))
	notifier.AssertExpectations(t)
}

func TestRecentCareLogs(t *testing.T) {
	svc, deps := newTestService(t, nil)
	logs := []domain.CareLog{{ID: "a", Action: domain.CareActionDailyCheckin}}
	deps.repo.On("GetPlantByID", mock.Anything, testPlantID).Return(testPlant, nil)
	deps.repo.On("ListRecentCareLogs", mock.Anything, testPlantID, 10).Return(logs, nil)

	got, err := svc.RecentCareLogs(context.Background(), testPlantID, 10)

	require.NoError(t, err)
	assert.Equal(t, logs, got)
}

func TestRecentCareLogs_Validation(t *testing.T) {
	svc, deps := newTestService(t, nil)

	_, err := svc.RecentCareLogs(context.Background(), testPlantID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.RecentCareLogs(context.Background(), testPlantID, MaxCareLogLimit+1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.RecentCareLogs(context.Background(), "", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	deps.repo.On("GetPlantByID", mock.Anything, "missing").Return(nil, domain.ErrPlantNotFound)
	_, err = svc.RecentCareLogs(context.Background(), "missing", 5)
	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
}
