package domain

// Username and password bounds enforced on registration.
const (
	MaxUsernameLength = 80
	// bcrypt only reads the first 72 bytes of its input.
	MaxPasswordBytes = 72
)

// User is a registered account. It is created once on registration and never
// mutated through the API.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
