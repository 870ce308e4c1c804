package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{name: "translated duplicate", err: gorm.ErrDuplicatedKey, check: isUniqueConstraintViolation, want: true},
		{
			name:  "raw duplicate",
			err:   errors.New(`ERROR: duplicate key value violates unique constraint "devices_serial_number_key" (SQLSTATE 23505)`),
			check: isUniqueConstraintViolation,
			want:  true,
		},
		{name: "translated foreign key", err: errors.Wrap(gorm.ErrForeignKeyViolated, "insert"), check: isForeignKeyConstraintViolation, want: true},
		{
			name:  "raw foreign key",
			err:   errors.New(`ERROR: insert or update on table "device_users" violates foreign key constraint (SQLSTATE 23503)`),
			check: isForeignKeyConstraintViolation,
			want:  true,
		},
		{name: "not null", err: errors.New(`null value in column "serial_number" (SQLSTATE 23502)`), check: isNotNullConstraintViolation, want: true},
		{name: "check", err: errors.New("violates check constraint (SQLSTATE 23514)"), check: isCheckConstraintViolation, want: true},
		{name: "unrelated", err: errors.New("connection reset by peer"), check: isUniqueConstraintViolation, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}
