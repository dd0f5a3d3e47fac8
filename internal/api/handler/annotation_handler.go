package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rothkoai/annotation-service/internal/core/ports"
)

// AnnotationHandler handles HTTP requests for annotation operations.
type AnnotationHandler struct {
	service ports.AnnotationService
}

func NewAnnotationHandler(service ports.AnnotationService) *AnnotationHandler {
	return &AnnotationHandler{service: service}
}

// Create handles POST /annotations.
//
// @Summary      Create an annotation
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                   false  "Replays the first result for a repeated key"
// @Param        body             body      createAnnotationRequest  true   "Annotation"
// @Success      201              {object}  annotationResponse
// @Failure      400              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /annotations [post]
func (h *AnnotationHandler) Create(c echo.Context) error {
	var req createAnnotationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")

	created, err := h.service.CreateAnnotation(c.Request().Context(), toCreateAnnotationInput(req, idempotencyKey))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAnnotationResponse(created))
}

// List handles GET /annotations.
//
// @Summary      List annotations
// @Tags         annotations
// @Produce      json
// @Success      200  {array}   annotationResponse
// @Failure      500  {object}  errorResponse
// @Router       /annotations [get]
func (h *AnnotationHandler) List(c echo.Context) error {
	items, err := h.service.ListAnnotations(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAnnotationListResponse(items))
}
