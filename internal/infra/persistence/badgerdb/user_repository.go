package badgerdb

import (
	"context"
	"time"

	"insulink/internal/domain/entity"
	"insulink/internal/domain/repository"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	run runner
}

// NewUserRepository is the constructor for userRepository outside a transaction.
func NewUserRepository(db *badger.DB) repository.UserRepository {
	return &userRepository{run: runner{db: db}}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := repo.run.view(ctx, func(txn *badger.Txn) error {
		var err error
		user, err = loadUser(txn, id)

		return err
	})
	if err != nil {
		return nil, storageError(err, "failed to find user")
	}

	return user, nil
}

// SaveProfile creates the user or updates its profile, keeping the device set.
func (repo *userRepository) SaveProfile(ctx context.Context, user *entity.User) error {
	err := repo.run.update(ctx, func(txn *badger.Txn) error {
		now := time.Now().UTC()

		stored, err := loadUser(txn, user.ID)
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			stored = &entity.User{ID: user.ID, DeviceIDs: []uuid.UUID{}, CreatedAt: now}
		case err != nil:
			return err
		}

		stored.FirstName = user.FirstName
		stored.LastName = user.LastName
		stored.Email = user.Email
		stored.UpdatedAt = now

		if err := setRecord(txn, userKey(stored.ID), stored); err != nil {
			return err
		}

		user.DeviceIDs = stored.DeviceIDs
		user.CreatedAt = stored.CreatedAt
		user.UpdatedAt = stored.UpdatedAt

		return nil
	})

	return storageError(err, "failed to save user profile")
}

// AddDevice links a device to the user with set semantics.
func (repo *userRepository) AddDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	err := repo.run.update(ctx, func(txn *badger.Txn) error {
		user, err := loadUser(txn, userID)
		if err != nil {
			return err
		}

		if !user.AddDevice(deviceID) {
			return nil
		}
		user.UpdatedAt = time.Now().UTC()

		return setRecord(txn, userKey(user.ID), user)
	})

	return storageError(err, "failed to link device to user")
}

func loadUser(txn *badger.Txn, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	if err := getRecord(txn, userKey(id), &user); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}
