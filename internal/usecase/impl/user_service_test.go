package impl

import (
	"context"
	"testing"

	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	mockRepo "insulink/internal/mocks/repository"
	"insulink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service     usecase.UserUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
		userRepo:    userRepo,
	}
}

func (fx userServiceFixtures) expectTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
}

func TestUserService_SaveProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{ID: userID, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", DeviceIDs: []uuid.UUID{}}

	fx.expectTransaction()
	fx.userRepo.EXPECT().
		SaveProfile(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == userID && u.FirstName == "Ada" && u.Email == "ada@example.com"
		})).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)

	user, err := fx.service.SaveProfile(ctx, userID, usecase.ProfileInput{
		FirstName: " Ada ",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestUserService_SaveProfile_Invalid(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.SaveProfile(context.Background(), uuid.New(), usecase.ProfileInput{Email: "not-an-email"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []domainerrors.FieldViolation{
		{Field: "first_name", Reason: "is required"},
		{Field: "email", Reason: "is not a valid email address"},
	}, validationErr.Violations())
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_SaveProfile_OnBadger(t *testing.T) {
	store := newTestStore(t)
	service := NewUserService(UserServiceParams{TxManager: store.txManager, UserRepo: store.users, Logger: newDiscardLogger()})
	ctx := context.Background()
	userID := uuid.New()

	created, err := service.SaveProfile(ctx, userID, usecase.ProfileInput{FirstName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, userID, created.ID)
	assert.Empty(t, created.DeviceIDs)

	updated, err := service.SaveProfile(ctx, userID, usecase.ProfileInput{FirstName: "Ada", LastName: "King"})
	require.NoError(t, err)
	assert.Equal(t, "King", updated.LastName)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}
