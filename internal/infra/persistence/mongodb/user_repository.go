package mongodb

import (
	"context"
	"time"

	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	coll *mongo.Collection
	sess *mongo.Session
}

// NewUserRepository is the constructor for userRepository outside a transaction.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return newUserRepository(db, nil)
}

func newUserRepository(db *mongo.Database, sess *mongo.Session) *userRepository {
	return &userRepository{coll: db.Collection(usersCollection), sess: sess}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var doc userDocument

	if err := repo.coll.FindOne(bind(ctx, repo.sess), bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&doc), nil
}

// SaveProfile upserts the profile fields; device_ids is only initialised on insert.
func (repo *userRepository) SaveProfile(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"device_ids": bson.A{},
			"created_at": now,
		},
	}

	if _, err := repo.coll.UpdateOne(
		bind(ctx, repo.sess),
		bson.M{"_id": user.ID.String()},
		update,
		options.UpdateOne().SetUpsert(true),
	); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save user profile")
	}

	user.UpdatedAt = now

	return nil
}

// AddDevice links a device to the user with $addToSet.
func (repo *userRepository) AddDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	result, err := repo.coll.UpdateOne(
		bind(ctx, repo.sess),
		bson.M{"_id": userID.String()},
		bson.M{
			"$addToSet": bson.M{"device_ids": deviceID.String()},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to link device to user")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
