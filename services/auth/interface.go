package auth

import (
	"context"
	"time"

	"rentify/database/repository"
	"rentify/models"

	"go.uber.org/zap"
)

// AuthService tracks the current actor and exposes the signup, login,
// logout and session-check operations. User and admin sessions are
// independent slots: both may be authenticated at once.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, identity models.Identity) error
	Logout(ctx context.Context) error
	AdminLogin(ctx context.Context, username, password string) (*models.Identity, error)
	AdminLogout(ctx context.Context) error
	CheckAuth(ctx context.Context) (models.Session, error)
}

// SignUpInput is the raw signup form.
type SignUpInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	AgencyName      string `json:"agencyName"`
	AgencyAddress   string `json:"agencyAddress"`
}

// DefaultAuthService implements AuthService over the persisted store.
type DefaultAuthService struct {
	Repo   repository.Repository
	Logger *zap.Logger

	// LoginDelay is the artificial round-trip latency applied before a
	// login commits. Logouts clear the session immediately.
	LoginDelay time.Duration

	// AdminUsername/AdminPassword form the single admin credential pair,
	// structurally separate from the user collection.
	AdminUsername string
	AdminPassword string
}
