package ports

import (
	"context"

	"github.com/rothkoai/annotation-service/internal/core/domain"
)

// CreateAnnotationInput is the DTO passed from the transport layer to
// AnnotationService. Position pointers are nil when the field was absent.
type CreateAnnotationInput struct {
	Name      *string
	PositionX *float64
	PositionY *float64
	PositionZ *float64
	UserID    *int64
	// IdempotencyKey is optional; a repeated key with the same body replays
	// the first result.
	IdempotencyKey string
}

// AnnotationService defines the use-case operations for annotations.
type AnnotationService interface {
	CreateAnnotation(ctx context.Context, input CreateAnnotationInput) (*domain.Annotation, error)
	ListAnnotations(ctx context.Context) ([]domain.Annotation, error)
}

// IdempotencyRecord is what an Idempotency-Key resolves to: the annotation it
// created and a fingerprint of the request body that created it.
type IdempotencyRecord struct {
	AnnotationID int64  `json:"annotation_id"`
	Fingerprint  string `json:"fingerprint"`
}

// IdempotencyStore remembers which annotation a client-supplied key created.
type IdempotencyStore interface {
	// Lookup reports the record stored for key, if any.
	Lookup(ctx context.Context, key string) (IdempotencyRecord, bool, error)
	Remember(ctx context.Context, key string, rec IdempotencyRecord) error
}
