package handler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// coordinate accepts either a JSON number or a numeric string.
type coordinate float64

func (c *coordinate) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("%q is not a number", s)
		}
		*c = coordinate(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*c = coordinate(f)
	return nil
}

// createAnnotationRequest uses pointers so an absent coordinate is
// distinguishable from zero.
type createAnnotationRequest struct {
	Name      *string     `json:"name"       validate:"omitempty,max=64"`
	PositionX *coordinate `json:"position_x" validate:"required"`
	PositionY *coordinate `json:"position_y" validate:"required"`
	PositionZ *coordinate `json:"position_z" validate:"required"`
	UserID    *int64      `json:"user_id"`
}

type annotationResponse struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name"`
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`
	PositionZ float64 `json:"position_z"`
	UserID    *int64  `json:"user_id"`
}
