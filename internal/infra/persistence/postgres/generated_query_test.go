package postgres

import (
	"context"
	"sync"
	"testing"

	"insulink/internal/infra/persistence/model"
	"insulink/internal/infra/persistence/postgres/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/gorm/utils/tests"
)

type fieldLookup interface {
	GetFieldByName(fieldName string) (field.OrderExpr, bool)
}

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	return db
}

func TestGeneratedQuery_CoversModelColumns(t *testing.T) {
	q := query.Use(newDryRunDB(t))

	lookups := []struct {
		model  any
		fields fieldLookup
	}{
		{model: &model.UserModel{}, fields: &q.UserModel},
		{model: &model.DeviceModel{}, fields: &q.DeviceModel},
		{model: &model.DeviceUserModel{}, fields: &q.DeviceUserModel},
		{model: &model.GlucoseReadingModel{}, fields: &q.GlucoseReadingModel},
		{model: &model.BolusReadingModel{}, fields: &q.BolusReadingModel},
		{model: &model.BasalReadingModel{}, fields: &q.BasalReadingModel},
	}
	require.Len(t, lookups, len(model.All()))

	for _, lookup := range lookups {
		parsed, err := schema.Parse(lookup.model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)

		for _, f := range parsed.Fields {
			if f.DBName == "" {
				continue
			}
			_, ok := lookup.fields.GetFieldByName(f.DBName)
			assert.True(t, ok, "%s.%s has no generated field", parsed.Table, f.DBName)
		}
	}
}

func TestGeneratedQuery_DeviceLookupStatement(t *testing.T) {
	q := query.Use(newDryRunDB(t))
	devices := q.DeviceModel

	var deviceM model.DeviceModel
	stmt := devices.WithContext(context.Background()).
		Where(devices.SerialNumber.Eq("SN-1")).
		UnderlyingDB().
		First(&deviceM).Statement

	assert.Contains(t, stmt.SQL.String(), "`devices`.`serial_number` = ?")
	assert.Contains(t, stmt.Vars, "SN-1")
}
