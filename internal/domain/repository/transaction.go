package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific store driver.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	// A cancelled or expired ctx aborts the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewDeviceRepository returns a DeviceRepository instance bound to the current transaction.
	NewDeviceRepository() DeviceRepository

	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewGlucoseRepository returns a GlucoseRepository instance bound to the current transaction.
	NewGlucoseRepository() GlucoseRepository

	// NewBolusRepository returns a BolusRepository instance bound to the current transaction.
	NewBolusRepository() BolusRepository

	// NewBasalRepository returns a BasalRepository instance bound to the current transaction.
	NewBasalRepository() BasalRepository
}
