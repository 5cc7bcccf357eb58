// Package domain contains application Usecases orchestrating domain logic.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ainaz03/EM-BMS/internal/entities"
)

// RegisterUser creates a user record. Credentials and sessions belong to the
// identity collaborator, not this layer.
func (u *Usecase) RegisterUser(ctx context.Context, email string, role entities.Role) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		u.log.Errorw("failed to register user: bad email", "email", email)
		return nil, fmt.Errorf("%w: valid email is required", entities.ErrInvalidArgument)
	}
	if role == "" {
		role = entities.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, role)
	}

	return u.repo.CreateUser(ctx, email, role)
}
