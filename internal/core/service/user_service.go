package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
	"github.com/littlelemon/restaurant-system/internal/core/ports"
)

// UserService implements account signup and profile management.
type UserService struct {
	repo   ports.UserRepository
	tokens ports.TokenStore
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenStore, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, logger: logger}
}

// Signup creates a new active account with no group memberships.
func (s *UserService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	if err := checkPassword(in.Password); err != nil {
		return nil, err
	}
	if err := s.ensureUsernameFree(ctx, in.Username, 0); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Groups:       []string{},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns an active user. Deactivated accounts are reported as not found.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, in ports.UserUpdateInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := ports.UserPatch{Username: &in.Username, Email: &in.Email}
	if in.Password != "" {
		patch.Password = &in.Password
	}
	if in.Groups != nil {
		patch.Groups = &in.Groups
	}
	return s.apply(ctx, user, patch)
}

func (s *UserService) PartialUpdate(ctx context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, user, patch)
}

func (s *UserService) apply(ctx context.Context, user *domain.User, patch ports.UserPatch) (*domain.User, error) {
	if patch.Username != nil && *patch.Username != user.Username {
		if err := s.ensureUsernameFree(ctx, *patch.Username, user.ID); err != nil {
			return nil, err
		}
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Groups != nil {
		user.Groups = dedupe(*patch.Groups)
	}
	if patch.Password != nil {
		if err := checkPassword(*patch.Password); err != nil {
			return nil, err
		}
		hash, err := hashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("update user %d: %w", user.ID, err)
	}

	s.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user updated")
	return user, nil
}

func (s *UserService) Deactivate(ctx context.Context, id int64) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	user.IsActive = false
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("deactivate user %d: %w", id, err)
	}

	if err := s.tokens.RevokeAll(ctx, id); err != nil {
		// Authenticate re-checks IsActive, so stale tokens are still rejected.
		s.logger.Warn().Err(err).Int64("user_id", id).Msg("failed to revoke tokens of deactivated user")
	}

	s.logger.Info().Int64("user_id", id).Str("username", user.Username).Msg("user deactivated")
	return nil
}

// ensureUsernameFree fails with domain.ErrUserExists when username belongs to
// an account other than selfID (deactivated accounts included).
func (s *UserService) ensureUsernameFree(ctx context.Context, username string, selfID int64) error {
	existing, err := s.repo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check username: %w", err)
	case existing.ID != selfID:
		return domain.ErrUserExists
	}
	return nil
}

func checkPassword(password string) error {
	if password == "" {
		return domain.NewValidationError("password", "this field may not be blank")
	}
	if len(password) < domain.MinPasswordLength {
		return domain.NewValidationError("password", "this password is too short, it must contain at least 8 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func dedupe(groups []string) []string {
	seen := make(map[string]struct{}, len(groups))
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
