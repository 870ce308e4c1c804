package postgres

import (
	"context"

	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	"insulink/internal/infra/persistence/model"
	"insulink/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface on the
// generated query builder.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID, with its device links.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	users := repo.q.UserModel

	userM, err := users.WithContext(ctx).
		Preload(users.Devices).
		Where(users.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(userM), nil
}

// SaveProfile creates the user or updates its profile columns.
func (repo *userRepository) SaveProfile(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "email", "updated_at"}),
		}).
		Create(userM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save user profile")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// AddDevice links a device to the user. Existing links are kept as they are.
func (repo *userRepository) AddDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	users := repo.q.UserModel

	count, err := users.WithContext(ctx).Where(users.ID.Eq(userID)).Count()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to look up user")
	}
	if count == 0 {
		return repository.ErrUserNotFound
	}

	link := &model.DeviceUserModel{DeviceID: deviceID, UserID: userID}
	if err := repo.q.DeviceUserModel.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link device to user")
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	deviceIDs := make([]uuid.UUID, 0, len(data.Devices))
	for _, link := range data.Devices {
		deviceIDs = append(deviceIDs, link.DeviceID)
	}

	return &entity.User{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		DeviceIDs: deviceIDs,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
