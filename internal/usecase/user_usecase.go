package usecase

import (
	"context"

	"insulink/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileInput defines the profile fields a user may set.
type ProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}

// UserUsecase defines the interface for user profile operations.
// Users are identified by the subject of their access token.
type UserUsecase interface {
	// SaveProfile creates the user on first call and updates the profile afterwards.
	SaveProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*entity.User, error)

	// GetProfile retrieves the user with their linked devices.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
