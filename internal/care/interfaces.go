package care

import (
	"context"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
)

// EnvironmentProvider supplies a short weather summary for a coordinate
type EnvironmentProvider interface {
	Summary(ctx context.Context, latitude, longitude float64) (string, error)
}

// MediaArchiver stores a photo and returns its durable URL
type MediaArchiver interface {
	Store(ctx context.Context, data []byte, fileName, folder string) (string, error)
}

// PerceptionAdapter turns an image and prompt into a validated assessment.
// Undecodable model output must be reported as domain.ErrUpstreamData.
type PerceptionAdapter interface {
	Assess(ctx context.Context, image []byte, mimeType, prompt string) (*domain.HealthAssessment, error)
}

// Notifier announces committed verifications
type Notifier interface {
	NotifyCareVerified(ctx context.Context, plant domain.Plant, result domain.CareVerificationResult) error
}
