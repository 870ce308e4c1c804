package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "insulink/internal/delivery/context"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	"insulink/internal/errors"
	"insulink/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	validate  *validator.Validate
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		validate:  newPayloadValidator(),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveProfile creates or updates the profile and returns the stored user.
func (srv *userService) SaveProfile(ctx context.Context, userID uuid.UUID, input usecase.ProfileInput) (*entity.User, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)

	var problems violations
	if input.FirstName == "" {
		problems.add("first_name", "is required")
	}
	if err := srv.validate.Var(input.Email, "omitempty,email"); err != nil {
		problems.add("email", "is not a valid email address")
	}
	if len(problems) > 0 {
		return nil, domainerrors.NewValidationError(problems...)
	}

	var saved *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user := &entity.User{
			ID:        userID,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
		}
		if err := userRepo.SaveProfile(ctx, user); err != nil {
			return storeError(err, "failed to save profile")
		}

		var err error
		saved, err = userRepo.FindByID(ctx, userID)

		return storeError(err, "failed to reload profile")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to save profile", slog.String("user_id", userID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute save profile transaction")
	}

	return saved, nil
}

// GetProfile retrieves the user with their linked devices.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, "failed to find user")
	}

	return user, nil
}
