package postgres

import (
	"context"

	"insulink/internal/errors"
	"insulink/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables, unique sample indexes and join
// table foreign keys.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate postgres schema")
	}

	return nil
}
