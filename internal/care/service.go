package care

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
	"github.com/geoquest/GeoQuest_Go/internal/logger"
	"github.com/geoquest/GeoQuest_Go/internal/metrics"
	"github.com/geoquest/GeoQuest_Go/internal/repository"
	"github.com/geoquest/GeoQuest_Go/internal/worker"
)

// Service defines the care verification workflow
type Service interface {
	// VerifyCare assesses a submitted photo and, only once a valid assessment
	// exists, commits plant health, task schedule, care log and XP together.
	VerifyCare(ctx context.Context, sub domain.CareSubmission) (*domain.CareVerificationResult, error)
	RecentCareLogs(ctx context.Context, plantID string, limit int) ([]domain.CareLog, error)
	Shutdown(ctx context.Context) error
}

// Config tunes the external-call bounds of the workflow
type Config struct {
	PerceptionTimeout  time.Duration
	EnvironmentTimeout time.Duration
	ArchiveFolder      string
}

type service struct {
	repo        repository.Care
	environment EnvironmentProvider
	archiver    MediaArchiver
	perception  PerceptionAdapter
	notifier    Notifier
	cfg         Config
	now         func() time.Time

	// notifications is nil when no notifier is configured
	notifications *worker.Pool
}

// NewService creates a new care verification service. notifier may be nil.
func NewService(
	repo repository.Care,
	environment EnvironmentProvider,
	archiver MediaArchiver,
	perception PerceptionAdapter,
	notifier Notifier,
	cfg Config,
) Service {
	if cfg.PerceptionTimeout <= 0 {
		cfg.PerceptionTimeout = DefaultPerceptionTimeout
	}
	if cfg.EnvironmentTimeout <= 0 {
		cfg.EnvironmentTimeout = DefaultEnvironmentTimeout
	}
	if cfg.ArchiveFolder == "" {
		cfg.ArchiveFolder = DefaultArchiveFolder
	}
	svc := &service{
		repo:        repo,
		environment: environment,
		archiver:    archiver,
		perception:  perception,
		notifier:    notifier,
		cfg:         cfg,
		now:         time.Now,
	}
	if notifier != nil {
		svc.notifications = worker.NewPool(notifyWorkers, notifyQueueSize)
		svc.notifications.Start()
	}
	return svc
}

func (s *service) VerifyCare(ctx context.Context, sub domain.CareSubmission) (result *domain.CareVerificationResult, err error) {
	defer func() {
		metrics.CareVerifications.WithLabelValues(outcomeFor(err)).Inc()
	}()

	mimeType, err := validateSubmission(sub)
	if err != nil {
		return nil, err
	}
	sub.MimeType = mimeType

	// Checked before any paid external call
	plant, err := s.repo.GetPlantByID(ctx, sub.PlantID)
	if err != nil {
		return nil, err
	}

	history, environment := s.gatherContext(ctx, plant)
	prompt := BuildCheckupPrompt(history, environment)

	photoURL, assessment, err := s.archiveAndAssess(ctx, sub, prompt)
	if err != nil {
		return nil, err
	}

	result, err = s.commitVerification(ctx, sub, photoURL, assessment)
	if err != nil {
		return nil, err
	}

	metrics.CareXPAwarded.WithLabelValues(string(result.CareLog.Action)).Add(float64(result.XPGained))
	logger.FromContext(ctx).Info(LogMsgCareVerified,
		"plant_id", sub.PlantID,
		"user_id", sub.UserID,
		"action", result.CareLog.Action,
		"health_score", result.HealthScore,
		"xp_gained", result.XPGained)

	s.notifyAsync(ctx, *plant, *result)
	return result, nil
}

// gatherContext fetches history and weather concurrently. Both are best
// effort: failures degrade to placeholders.
func (s *service) gatherContext(ctx context.Context, plant *domain.Plant) (history, environment string) {
	log := logger.FromContext(ctx)
	history, environment = NoHistoryPlaceholder, NoEnvironmentPlaceholder

	var g errgroup.Group
	g.Go(func() error {
		logs, err := s.repo.ListRecentCareLogs(ctx, plant.ID, HistoryLimit)
		if err != nil {
			log.Warn(LogMsgHistoryUnavailable, "plant_id", plant.ID, "error", err)
			metrics.ContextDegraded.WithLabelValues(ContextSourceHistory).Inc()
			return nil
		}
		history = FormatHistory(logs)
		return nil
	})
	g.Go(func() error {
		envCtx, cancel := context.WithTimeout(ctx, s.cfg.EnvironmentTimeout)
		defer cancel()

		summary, err := s.environment.Summary(envCtx, plant.Latitude, plant.Longitude)
		if err != nil || strings.TrimSpace(summary) == "" {
			log.Warn(LogMsgEnvironmentUnavailable, "plant_id", plant.ID, "error", err)
			metrics.ContextDegraded.WithLabelValues(ContextSourceEnvironment).Inc()
			return nil
		}
		environment = summary
		return nil
	})
	_ = g.Wait()

	return history, environment
}

// archiveAndAssess stores the photo and runs perception concurrently. Either
// failure cancels the other and fails the request.
func (s *service) archiveAndAssess(ctx context.Context, sub domain.CareSubmission, prompt string) (string, *domain.HealthAssessment, error) {
	var (
		photoURL   string
		assessment *domain.HealthAssessment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		url, err := s.archiver.Store(gctx, sub.Image, archiveFileName(sub.PlantID, sub.MimeType, s.now()), s.cfg.ArchiveFolder)
		if err != nil {
			return fmt.Errorf("failed to archive photo: %w", err)
		}
		photoURL = url
		return nil
	})
	g.Go(func() error {
		pctx, cancel := context.WithTimeout(gctx, s.cfg.PerceptionTimeout)
		defer cancel()

		start := time.Now()
		a, err := s.perception.Assess(pctx, sub.Image, sub.MimeType, prompt)
		metrics.PerceptionDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			return classifyPerceptionError(err)
		}
		if a == nil {
			return fmt.Errorf("%w: empty assessment", domain.ErrUpstreamData)
		}
		if err := a.Validate(); err != nil {
			return err
		}
		assessment = a
		return nil
	})

	if err := g.Wait(); err != nil {
		return "", nil, err
	}
	return photoURL, assessment, nil
}

func (s *service) commitVerification(ctx context.Context, sub domain.CareSubmission, photoURL string, assessment *domain.HealthAssessment) (*domain.CareVerificationResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin care transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	verifiedAt := s.now().UTC()

	if err := tx.UpdatePlantHealth(ctx, sub.PlantID, assessment.HealthScore); err != nil {
		return nil, fmt.Errorf("failed to update plant health: %w", err)
	}

	taskAdvanced := false
	if sub.TaskID != "" {
		task, err := tx.GetCareTaskForUpdate(ctx, sub.TaskID, sub.PlantID)
		if err != nil {
			return nil, fmt.Errorf("failed to load care task: %w", err)
		}
		if task == nil {
			log.Info(LogMsgTaskNotResolved, "task_id", sub.TaskID, "plant_id", sub.PlantID)
		} else {
			nextDue, err := NextDueDate(task.FrequencyDays, verifiedAt)
			if err != nil {
				return nil, fmt.Errorf("care task %s: %w", task.ID, err)
			}
			if err := tx.UpdateCareTaskSchedule(ctx, task.ID, verifiedAt, nextDue); err != nil {
				return nil, fmt.Errorf("failed to advance care task: %w", err)
			}
			taskAdvanced = true
		}
	}

	careLog := domain.CareLog{
		UserID:           sub.UserID,
		PlantID:          sub.PlantID,
		Action:           ActionFor(taskAdvanced),
		PhotoURL:         photoURL,
		LocationVerified: true,
		CreatedAt:        verifiedAt,
	}
	if err := tx.InsertCareLog(ctx, &careLog); err != nil {
		return nil, fmt.Errorf("failed to insert care log: %w", err)
	}

	xp := RewardFor(taskAdvanced)
	totalXP, err := tx.IncrementUserXP(ctx, sub.UserID, xp)
	if err != nil {
		return nil, fmt.Errorf("failed to award xp: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit care verification: %w", err)
	}

	return &domain.CareVerificationResult{
		CareLog:      careLog,
		HealthScore:  assessment.HealthScore,
		Status:       assessment.Status,
		Tip:          assessment.Tip,
		XPGained:     xp,
		TotalXP:      totalXP,
		TaskAdvanced: taskAdvanced,
	}, nil
}

func (s *service) RecentCareLogs(ctx context.Context, plantID string, limit int) ([]domain.CareLog, error) {
	if plantID == "" {
		return nil, fmt.Errorf("%w: plant id is required", domain.ErrInvalidInput)
	}
	if limit < 1 || limit > MaxCareLogLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidInput, MaxCareLogLimit)
	}
	if _, err := s.repo.GetPlantByID(ctx, plantID); err != nil {
		return nil, err
	}
	logs, err := s.repo.ListRecentCareLogs(ctx, plantID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list care logs: %w", err)
	}
	return logs, nil
}

// notificationJob announces one verification through the notifier
type notificationJob struct {
	notifier  Notifier
	plant     domain.Plant
	result    domain.CareVerificationResult
	requestID string
}

func (j notificationJob) Process(ctx context.Context) error {
	ctx = logger.WithRequestID(ctx, j.requestID)
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	if err := j.notifier.NotifyCareVerified(ctx, j.plant, j.result); err != nil {
		logger.FromContext(ctx).Warn(LogMsgNotifyFailed, "plant_id", j.plant.ID, "error", err)
	}
	return nil
}

// notifyAsync queues the announcement off the request path. A full queue
// drops the notification; the verification itself is already committed.
func (s *service) notifyAsync(ctx context.Context, plant domain.Plant, result domain.CareVerificationResult) {
	if s.notifications == nil {
		return
	}
	s.notifications.Enqueue(notificationJob{
		notifier:  s.notifier,
		plant:     plant,
		result:    result,
		requestID: logger.GetRequestID(ctx),
	})
}

// Shutdown waits for pending notifications
func (s *service) Shutdown(ctx context.Context) error {
	if s.notifications == nil {
		return nil
	}
	return s.notifications.Shutdown(ctx)
}

func validateSubmission(sub domain.CareSubmission) (string, error) {
	if strings.TrimSpace(sub.PlantID) == "" {
		return "", fmt.Errorf("%w: plant id is required", domain.ErrInvalidInput)
	}
	if len(sub.Image) == 0 {
		return "", fmt.Errorf("%w: photo is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(sub.UserID) == "" {
		return "", fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	return NormalizeMimeType(sub.MimeType)
}

// NormalizeMimeType maps generic uploads to JPEG, which is what mobile
// cameras send, and rejects anything that is not an image.
func NormalizeMimeType(mimeType string) (string, error) {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	switch {
	case mimeType == "" || mimeType == MimeTypeOctetStream:
		return MimeTypeJPEG, nil
	case strings.HasPrefix(mimeType, mimeTypeImagePrefix):
		return mimeType, nil
	default:
		return "", fmt.Errorf("%w: unsupported photo type %q", domain.ErrInvalidInput, mimeType)
	}
}

func archiveFileName(plantID, mimeType string, at time.Time) string {
	ext := "jpg"
	switch mimeType {
	case "image/png":
		ext = "png"
	case "image/webp":
		ext = "webp"
	case "image/heic":
		ext = "heic"
	}
	return fmt.Sprintf("care_%s_%d.%s", plantID, at.UnixMilli(), ext)
}

func classifyPerceptionError(err error) error {
	if errors.Is(err, domain.ErrUpstreamData) || errors.Is(err, domain.ErrUpstreamUnavailable) {
		return err
	}
	return fmt.Errorf("%w: perception failed: %w", domain.ErrUpstreamUnavailable, err)
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, domain.ErrPlantNotFound), errors.Is(err, domain.ErrUserNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrUpstreamData), errors.Is(err, domain.ErrUpstreamUnavailable):
		return OutcomeUpstreamError
	default:
		return OutcomeServerError
	}
}
