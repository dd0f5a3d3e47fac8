package domain

// MaxAnnotationNameLength bounds the optional annotation label.
const MaxAnnotationNameLength = 64

// Annotation is a named point in 3D model space, optionally linked to the
// user that created it. UserID is a plain reference; it implies no ownership.
type Annotation struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name"`
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`
	PositionZ float64 `json:"position_z"`
	UserID    *int64  `json:"user_id"`
}
