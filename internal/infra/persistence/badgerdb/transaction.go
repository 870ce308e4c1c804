package badgerdb

import (
	"context"

	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	"insulink/internal/errors"

	"github.com/dgraph-io/badger/v4"
)

// badgerTransactionManager implements the domain's TransactionManager interface
// with a serializable badger read-write transaction.
type badgerTransactionManager struct {
	db *badger.DB
}

// badgerRepositoryFactory creates repositories bound to one badger transaction.
type badgerRepositoryFactory struct {
	run runner
}

// NewDeviceRepository creates a new device repository instance bound to the transaction.
func (f *badgerRepositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return &deviceRepository{run: f.run}
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *badgerRepositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{run: f.run}
}

// NewGlucoseRepository creates a new glucose repository instance bound to the transaction.
func (f *badgerRepositoryFactory) NewGlucoseRepository() repository.GlucoseRepository {
	return newGlucoseRepository(f.run)
}

// NewBolusRepository creates a new bolus repository instance bound to the transaction.
func (f *badgerRepositoryFactory) NewBolusRepository() repository.BolusRepository {
	return newBolusRepository(f.run)
}

// NewBasalRepository creates a new basal repository instance bound to the transaction.
func (f *badgerRepositoryFactory) NewBasalRepository() repository.BasalRepository {
	return newBasalRepository(f.run)
}

// NewTransactionManager is the constructor for badgerTransactionManager.
func NewTransactionManager(db *badger.DB) repository.TransactionManager {
	return &badgerTransactionManager{db: db}
}

// Execute runs fn in one transaction. Nothing is written unless fn succeeds
// and ctx is still live at commit time.
func (tm *badgerTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	txn := tm.db.NewTransaction(true)
	defer txn.Discard()

	if err := fn(&badgerRepositoryFactory{run: runner{db: tm.db, txn: txn}}); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "transaction aborted before commit")
	}

	if err := txn.Commit(); err != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails(err.Error()), "failed to commit transaction")
	}

	return nil
}

// runner executes repository work either inside the bound transaction or in
// a transaction of its own.
type runner struct {
	db  *badger.DB
	txn *badger.Txn
}

func (r runner) view(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "context done")
	}
	if r.txn != nil {
		return fn(r.txn)
	}

	return r.db.View(fn)
}

func (r runner) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "context done")
	}
	if r.txn != nil {
		return fn(r.txn)
	}

	return r.db.Update(fn)
}

// storageError keeps domain and sentinel errors as they are and wraps the rest.
func storageError(err error, details string) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) ||
		errors.Is(err, repository.ErrDeviceNotFound) ||
		errors.Is(err, repository.ErrDuplicateDevice) ||
		errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
