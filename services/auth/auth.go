package auth

import (
	"context"
	"fmt"
	"time"

	"rentify/models"

	"go.uber.org/zap"
)

// Authenticate scans the user collection for an exact email match, then an
// exact password match. Passwords are opaque plaintext values by policy.
func (s *DefaultAuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	users, err := s.Repo.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticate: load users: %w", err)
	}
	for i := range users {
		if users[i].Email != email {
			continue
		}
		if users[i].Password != password {
			return nil, ErrInvalidCredentials
		}
		return &users[i], nil
	}
	return nil, ErrNotFound
}

// Login commits an already-authenticated identity to the user session slot
// after the simulated round-trip delay. There is no failure path at this
// layer; bad credentials are rejected earlier by Authenticate.
func (s *DefaultAuthService) Login(ctx context.Context, identity models.Identity) error {
	time.Sleep(s.LoginDelay)
	if err := s.Repo.SaveUserSession(ctx, identity); err != nil {
		return fmt.Errorf("login: save session: %w", err)
	}
	s.Logger.Info("user logged in", zap.String("email", identity.Email))
	return nil
}

// Logout clears the user session slot immediately; the admin slot is
// untouched. Only logins carry the simulated delay.
func (s *DefaultAuthService) Logout(ctx context.Context) error {
	if err := s.Repo.ClearUserSession(ctx); err != nil {
		return fmt.Errorf("logout: clear session: %w", err)
	}
	return nil
}

// AdminLogin matches the single configured credential pair and commits the
// administrator identity to its own session slot.
func (s *DefaultAuthService) AdminLogin(ctx context.Context, username, password string) (*models.Identity, error) {
	if username != s.AdminUsername || password != s.AdminPassword {
		return nil, ErrInvalidCredentials
	}
	time.Sleep(s.LoginDelay)
	identity := models.Identity{
		Username: username,
		Role:     models.RoleAdministrator,
	}
	if err := s.Repo.SaveAdminSession(ctx, identity); err != nil {
		return nil, fmt.Errorf("admin login: save session: %w", err)
	}
	s.Logger.Info("admin logged in", zap.String("username", username))
	return &identity, nil
}

// AdminLogout clears the admin session slot immediately; the user slot is
// untouched.
func (s *DefaultAuthService) AdminLogout(ctx context.Context) error {
	if err := s.Repo.ClearAdminSession(ctx); err != nil {
		return fmt.Errorf("admin logout: clear session: %w", err)
	}
	return nil
}

// CheckAuth rehydrates the session from the store flags. Inconsistent flags
// (identity blob present but flag absent, or the reverse) read as logged
// out; the flags are the source of truth.
func (s *DefaultAuthService) CheckAuth(ctx context.Context) (models.Session, error) {
	return s.Repo.LoadSession(ctx)
}
