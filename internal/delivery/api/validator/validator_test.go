package validator

import (
	"testing"

	domainerrors "insulink/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerRequest struct {
	SerialNumber string `json:"serial_number" validate:"required"`
	Model        string `json:"model" validate:"omitempty,oneof=standard pro"`
	Months       int    `query:"months" validate:"min=1"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&registerRequest{SerialNumber: "SN-1", Model: "pro", Months: 3}))

	err := v.Validate(&registerRequest{Model: "mini"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []domainerrors.FieldViolation{
		{Field: "serial_number", Reason: "is required"},
		{Field: "model", Reason: "must be one of standard pro"},
		{Field: "months", Reason: "must be at least 1"},
	}, validationErr.Violations())
}
