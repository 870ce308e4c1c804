package repository

import (
	"context"

	"insulink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// SaveProfile creates the user or updates its name and email. The device set is left untouched.
	SaveProfile(ctx context.Context, user *entity.User) error

	// AddDevice links a device to the user with set semantics.
	// Returns ErrUserNotFound if the user does not exist.
	AddDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
