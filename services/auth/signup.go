package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"rentify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// SignUp validates the whole form, enforces email uniqueness, and appends
// the new user to the store. Agency signups additionally file a pending
// agency application for administrative approval.
func (s *DefaultAuthService) SignUp(ctx context.Context, input SignUpInput) (*models.User, error) {
	var errs models.ValidationErrors

	if strings.TrimSpace(input.Username) == "" {
		errs = append(errs, models.ValidationError{Field: "username", Message: "Username is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, models.ValidationError{Field: "email", Message: "Email is required"})
	} else if !emailPattern.MatchString(input.Email) {
		errs = append(errs, models.ValidationError{Field: "email", Message: "Email is invalid"})
	}
	if input.Password == "" {
		errs = append(errs, models.ValidationError{Field: "password", Message: "Password is required"})
	} else if len(input.Password) < 6 {
		errs = append(errs, models.ValidationError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	if input.Password != input.ConfirmPassword {
		errs = append(errs, models.ValidationError{Field: "confirmPassword", Message: "Passwords do not match"})
	}
	if input.Role == "" {
		input.Role = models.RoleUser
	}
	if input.Role != models.RoleUser && input.Role != models.RoleAgency {
		errs = append(errs, models.ValidationError{Field: "role", Message: "Role must be user or agency"})
	}
	if input.Role == models.RoleAgency {
		if strings.TrimSpace(input.AgencyName) == "" {
			errs = append(errs, models.ValidationError{Field: "agencyName", Message: "Agency name is required"})
		}
		if strings.TrimSpace(input.AgencyAddress) == "" {
			errs = append(errs, models.ValidationError{Field: "agencyAddress", Message: "Agency address is required"})
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	user := models.User{
		Username:      input.Username,
		Email:         input.Email,
		Password:      input.Password,
		Role:          input.Role,
		AgencyName:    input.AgencyName,
		AgencyAddress: input.AgencyAddress,
		CreatedAt:     time.Now(),
	}

	// The uniqueness check and the append happen in one locked
	// read-modify-write, so two racing signups cannot both claim an email.
	err := s.Repo.MutateUsers(ctx, func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Email == user.Email {
				return nil, models.ValidationErrors{{Field: "email", Message: "User with this email already exists"}}
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, verrs
		}
		return nil, fmt.Errorf("signup: save users: %w", err)
	}

	if user.Role == models.RoleAgency {
		app := models.AgencyApplication{
			ID:          uuid.New().String(),
			AgencyName:  user.AgencyName,
			Owner:       user.Username,
			Email:       user.Email,
			Address:     user.AgencyAddress,
			Approved:    false,
			SubmittedAt: time.Now(),
		}
		err := s.Repo.MutatePendingAgencies(ctx, func(pending []models.AgencyApplication) ([]models.AgencyApplication, error) {
			return append(pending, app), nil
		})
		if err != nil {
			return nil, fmt.Errorf("signup: save pending agencies: %w", err)
		}
	}

	s.Logger.Info("user registered", zap.String("email", user.Email), zap.String("role", user.Role))
	return &user, nil
}
