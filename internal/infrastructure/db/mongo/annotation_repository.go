package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rothkoai/annotation-service/internal/core/domain"
)

const collectionAnnotations = "annotation"

// AnnotationRepository implements ports.AnnotationRepository using MongoDB.
// user_id is stored as-is; MongoDB has no foreign keys to enforce it.
type AnnotationRepository struct {
	col *mongo.Collection
	ids *sequence
}

func NewAnnotationRepository(db *mongo.Database) *AnnotationRepository {
	return &AnnotationRepository{
		col: db.Collection(collectionAnnotations),
		ids: newSequence(db, collectionAnnotations),
	}
}

type mongoAnnotation struct {
	ID        int64   `bson:"_id"`
	Name      *string `bson:"name"`
	PositionX float64 `bson:"position_x"`
	PositionY float64 `bson:"position_y"`
	PositionZ float64 `bson:"position_z"`
	UserID    *int64  `bson:"user_id"`
}

func (d mongoAnnotation) toDomain() domain.Annotation {
	return domain.Annotation{
		ID:        d.ID,
		Name:      d.Name,
		PositionX: d.PositionX,
		PositionY: d.PositionY,
		PositionZ: d.PositionZ,
		UserID:    d.UserID,
	}
}

// Create inserts a new annotation document.
func (r *AnnotationRepository) Create(ctx context.Context, a *domain.Annotation) (*domain.Annotation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx)
	if err != nil {
		return nil, err
	}

	doc := mongoAnnotation{
		ID:        id,
		Name:      a.Name,
		PositionX: a.PositionX,
		PositionY: a.PositionY,
		PositionZ: a.PositionZ,
		UserID:    a.UserID,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert annotation: %w", err)
	}

	created := doc.toDomain()
	return &created, nil
}

func (r *AnnotationRepository) FindByID(ctx context.Context, id int64) (*domain.Annotation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoAnnotation
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnnotationNotFound
		}
		return nil, fmt.Errorf("find annotation: %w", err)
	}
	a := doc.toDomain()
	return &a, nil
}

// List returns every annotation sorted by _id.
func (r *AnnotationRepository) List(ctx context.Context) ([]domain.Annotation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoAnnotation
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode annotations: %w", err)
	}

	out := make([]domain.Annotation, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}
