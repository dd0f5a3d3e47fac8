package handler

import (
	"github.com/rothkoai/annotation-service/internal/core/domain"
	"github.com/rothkoai/annotation-service/internal/core/ports"
)

// --- Request → Service input ---

func toCreateAnnotationInput(req createAnnotationRequest, idempotencyKey string) ports.CreateAnnotationInput {
	return ports.CreateAnnotationInput{
		Name:           req.Name,
		PositionX:      toFloat(req.PositionX),
		PositionY:      toFloat(req.PositionY),
		PositionZ:      toFloat(req.PositionZ),
		UserID:         req.UserID,
		IdempotencyKey: idempotencyKey,
	}
}

func toFloat(c *coordinate) *float64 {
	if c == nil {
		return nil
	}
	f := float64(*c)
	return &f
}

// --- Service result → HTTP response ---

func toAnnotationResponse(a *domain.Annotation) annotationResponse {
	return annotationResponse{
		ID:        a.ID,
		Name:      a.Name,
		PositionX: a.PositionX,
		PositionY: a.PositionY,
		PositionZ: a.PositionZ,
		UserID:    a.UserID,
	}
}

func toAnnotationListResponse(items []domain.Annotation) []annotationResponse {
	out := make([]annotationResponse, len(items))
	for i := range items {
		out[i] = toAnnotationResponse(&items[i])
	}
	return out
}
