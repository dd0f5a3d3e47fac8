package ports

import "context"

// RegisterInput carries the credentials submitted on registration.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput carries the credentials submitted on login.
type LoginInput struct {
	Username string
	Password string
}

// CredentialService registers users and checks their credentials. Login is a
// stateless check; nothing is issued on success.
type CredentialService interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, input LoginInput) error
}
