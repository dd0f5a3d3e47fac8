package ports

import (
	"context"

	"github.com/rothkoai/annotation-service/internal/core/domain"
)

// UserRepository defines the persistence operations for registered users.
type UserRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create inserts the user and returns it with its generated ID. A unique
	// constraint violation on username is reported as domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
