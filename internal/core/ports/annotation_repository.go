package ports

import (
	"context"

	"github.com/rothkoai/annotation-service/internal/core/domain"
)

// AnnotationRepository defines persistence operations for annotations.
type AnnotationRepository interface {
	// Create inserts a single annotation and returns it with its generated ID.
	Create(ctx context.Context, a *domain.Annotation) (*domain.Annotation, error)
	// FindByID returns domain.ErrAnnotationNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Annotation, error)
	// List returns every annotation in the store's natural order.
	List(ctx context.Context) ([]domain.Annotation, error)
}
