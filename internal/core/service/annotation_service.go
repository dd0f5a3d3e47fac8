package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/rothkoai/annotation-service/internal/core/domain"
	"github.com/rothkoai/annotation-service/internal/core/ports"
	"github.com/rothkoai/annotation-service/internal/metrics"
)

// AnnotationService implements annotation creation and listing, with optional
// Idempotency-Key replay when an IdempotencyStore is configured.
type AnnotationService struct {
	repo   ports.AnnotationRepository
	keys   ports.IdempotencyStore
	logger zerolog.Logger
}

// NewAnnotationService returns an AnnotationService. keys may be nil, in which
// case Idempotency-Key values are ignored.
func NewAnnotationService(repo ports.AnnotationRepository, keys ports.IdempotencyStore, logger zerolog.Logger) *AnnotationService {
	return &AnnotationService{repo: repo, keys: keys, logger: logger}
}

// CreateAnnotation validates and persists a single annotation. If an
// idempotency key is provided and already seen with the same body, the
// previously created annotation is returned without a second insert; a
// different body under the same key is rejected.
func (s *AnnotationService) CreateAnnotation(ctx context.Context, input ports.CreateAnnotationInput) (*domain.Annotation, error) {
	if err := validateAnnotation(input); err != nil {
		return nil, err
	}

	fingerprint := fingerprintAnnotation(input)
	existing, err := s.replay(ctx, input.IdempotencyKey, fingerprint)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	created, err := s.repo.Create(ctx, &domain.Annotation{
		Name:      input.Name,
		PositionX: *input.PositionX,
		PositionY: *input.PositionY,
		PositionZ: *input.PositionZ,
		UserID:    input.UserID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnknownUser) {
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to create annotation")
		return nil, fmt.Errorf("create annotation: %w", err)
	}

	if input.IdempotencyKey != "" && s.keys != nil {
		rec := ports.IdempotencyRecord{AnnotationID: created.ID, Fingerprint: fingerprint}
		if err := s.keys.Remember(ctx, input.IdempotencyKey, rec); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to record idempotency key")
		}
	}

	metrics.AnnotationsCreatedTotal.WithLabelValues(strconv.FormatBool(created.UserID != nil)).Inc()
	s.logger.Info().Int64("annotation_id", created.ID).Msg("annotation created")
	return created, nil
}

// ListAnnotations returns every stored annotation in store order.
func (s *AnnotationService) ListAnnotations(ctx context.Context) ([]domain.Annotation, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}
	if items == nil {
		items = []domain.Annotation{}
	}
	return items, nil
}

// replay returns the annotation recorded for key, or nil when the key is new,
// unset, or cannot be resolved. Lookup failures fall through to a normal insert.
// A key recorded for a different body yields a validation error.
func (s *AnnotationService) replay(ctx context.Context, key, fingerprint string) (*domain.Annotation, error) {
	if key == "" || s.keys == nil {
		return nil, nil
	}

	rec, ok, err := s.keys.Lookup(ctx, key)
	if err != nil {
		metrics.IdempotencyTotal.WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, creating anyway")
		return nil, nil
	}
	if !ok {
		metrics.IdempotencyTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if rec.Fingerprint != fingerprint {
		metrics.IdempotencyTotal.WithLabelValues("conflict").Inc()
		s.logger.Info().Str("idempotency_key", key).Int64("annotation_id", rec.AnnotationID).Msg("idempotency key reused with a different body")
		return nil, domain.Invalid("Idempotency-Key was already used with a different request body")
	}

	existing, err := s.repo.FindByID(ctx, rec.AnnotationID)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Int64("annotation_id", rec.AnnotationID).Msg("replayed annotation not found")
		return nil, nil
	}

	metrics.IdempotencyTotal.WithLabelValues("hit").Inc()
	s.logger.Info().Str("idempotency_key", key).Int64("annotation_id", rec.AnnotationID).Msg("idempotent replay")
	return existing, nil
}

// fingerprintAnnotation hashes the fields that define an annotation request.
// Absent name and user_id hash differently from empty or zero values.
func fingerprintAnnotation(input ports.CreateAnnotationInput) string {
	name, user := "-", "-"
	if input.Name != nil {
		name = strconv.Quote(*input.Name)
	}
	if input.UserID != nil {
		user = strconv.FormatInt(*input.UserID, 10)
	}

	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s",
		name,
		strconv.FormatFloat(*input.PositionX, 'g', -1, 64),
		strconv.FormatFloat(*input.PositionY, 'g', -1, 64),
		strconv.FormatFloat(*input.PositionZ, 'g', -1, 64),
		user,
	)
	return hex.EncodeToString(h.Sum(nil))
}

func validateAnnotation(input ports.CreateAnnotationInput) error {
	positions := []struct {
		field string
		value *float64
	}{
		{"position_x", input.PositionX},
		{"position_y", input.PositionY},
		{"position_z", input.PositionZ},
	}
	for _, p := range positions {
		if p.value == nil {
			return domain.Invalid("%s is required", p.field)
		}
		if math.IsNaN(*p.value) || math.IsInf(*p.value, 0) {
			return domain.Invalid("%s must be a finite number", p.field)
		}
	}
	if input.Name != nil && utf8.RuneCountInString(*input.Name) > domain.MaxAnnotationNameLength {
		return domain.Invalid("name must be at most %d characters", domain.MaxAnnotationNameLength)
	}
	return nil
}
