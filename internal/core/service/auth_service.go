package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rothkoai/annotation-service/internal/core/domain"
	"github.com/rothkoai/annotation-service/internal/core/ports"
	"github.com/rothkoai/annotation-service/internal/metrics"
)

// dummyHash is compared against when the username is unknown so that login
// takes the same time whether or not the user exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	cost   int
	logger zerolog.Logger
}

// NewAuthService returns an AuthService hashing with the given bcrypt cost.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewAuthService(repo ports.UserRepository, cost int, logger zerolog.Logger) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, cost: cost, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	if err := validateCredentials(input.Username, input.Password); err != nil {
		return err
	}
	if utf8.RuneCountInString(input.Username) > domain.MaxUsernameLength {
		return domain.Invalid("username must be at most %d characters", domain.MaxUsernameLength)
	}
	if len(input.Password) > domain.MaxPasswordBytes {
		return domain.Invalid("password must be at most %d bytes", domain.MaxPasswordBytes)
	}

	_, err := s.repo.FindByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return fmt.Errorf("register: lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return fmt.Errorf("register: hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return err
		}
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return fmt.Errorf("register: %w", err)
	}

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return nil
}

func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) error {
	if err := validateCredentials(input.Username, input.Password); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_input").Inc()
		return err
	}

	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return domain.ErrInvalidCredentials
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("login: lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return domain.ErrInvalidCredentials
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Debug().Int64("user_id", user.ID).Msg("login succeeded")
	return nil
}

func validateCredentials(username, password string) error {
	if username == "" || password == "" {
		return domain.Invalid("Both username and password are required")
	}
	return nil
}
