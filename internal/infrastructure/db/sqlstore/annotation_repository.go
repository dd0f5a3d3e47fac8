package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rothkoai/annotation-service/internal/core/domain"
)

// AnnotationRepository implements ports.AnnotationRepository on the
// annotation table.
type AnnotationRepository struct {
	db *gorm.DB
}

func NewAnnotationRepository(db *gorm.DB) *AnnotationRepository {
	return &AnnotationRepository{db: db}
}

// Create inserts a single annotation row. A foreign key rejection of user_id
// surfaces as domain.ErrUnknownUser.
func (r *AnnotationRepository) Create(ctx context.Context, a *domain.Annotation) (*domain.Annotation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := toAnnotationRecord(a)
	if err := r.db.WithContext(ctx).Omit("User").Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.ErrUnknownUser
		}
		return nil, fmt.Errorf("insert annotation: %w", err)
	}
	created := rec.toDomain()
	return &created, nil
}

func (r *AnnotationRepository) FindByID(ctx context.Context, id int64) (*domain.Annotation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec annotationRecord
	if err := r.db.WithContext(ctx).Take(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnnotationNotFound
		}
		return nil, fmt.Errorf("find annotation: %w", err)
	}
	a := rec.toDomain()
	return &a, nil
}

// List returns every row ordered by primary key, which is the table's
// natural insertion order.
func (r *AnnotationRepository) List(ctx context.Context) ([]domain.Annotation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var recs []annotationRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}

	out := make([]domain.Annotation, len(recs))
	for i := range recs {
		out[i] = recs[i].toDomain()
	}
	return out, nil
}
