package mongodb

import (
	"context"

	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	"insulink/internal/errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// mongoTransactionManager implements the domain's TransactionManager interface
// with a session transaction.
type mongoTransactionManager struct {
	db *mongo.Database
}

// mongoRepositoryFactory creates repositories bound to one session.
type mongoRepositoryFactory struct {
	db   *mongo.Database
	sess *mongo.Session
}

// NewDeviceRepository creates a new device repository instance bound to the transaction.
func (f *mongoRepositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return newDeviceRepository(f.db, f.sess)
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *mongoRepositoryFactory) NewUserRepository() repository.UserRepository {
	return newUserRepository(f.db, f.sess)
}

// NewGlucoseRepository creates a new glucose repository instance bound to the transaction.
func (f *mongoRepositoryFactory) NewGlucoseRepository() repository.GlucoseRepository {
	return newGlucoseRepository(f.db, f.sess)
}

// NewBolusRepository creates a new bolus repository instance bound to the transaction.
func (f *mongoRepositoryFactory) NewBolusRepository() repository.BolusRepository {
	return newBolusRepository(f.db, f.sess)
}

// NewBasalRepository creates a new basal repository instance bound to the transaction.
func (f *mongoRepositoryFactory) NewBasalRepository() repository.BasalRepository {
	return newBasalRepository(f.db, f.sess)
}

// NewTransactionManager is the constructor for mongoTransactionManager.
func NewTransactionManager(db *mongo.Database) repository.TransactionManager {
	return &mongoTransactionManager{db: db}
}

// Execute runs fn inside a session transaction. The driver retries fn on
// transient transaction errors, so fn must not keep state between attempts.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	sess, err := tm.db.Client().StartSession()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to start session")
	}
	defer sess.EndSession(context.WithoutCancel(ctx))

	factory := &mongoRepositoryFactory{db: tm.db, sess: sess}

	var fnErr error
	_, err = sess.WithTransaction(ctx, func(context.Context) (any, error) {
		fnErr = fn(factory)

		return nil, fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails(err.Error()), "failed to commit transaction")
}

// bind attaches the session to ctx when the repository belongs to a transaction.
func bind(ctx context.Context, sess *mongo.Session) context.Context {
	if sess == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, sess)
}
