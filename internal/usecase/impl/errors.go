package impl

import (
	"context"

	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/repository"
	"insulink/internal/errors"
)

// storeError maps repository failures onto application errors. Errors that
// already carry an application code pass through unchanged.
func storeError(err error, details string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, repository.ErrDeviceNotFound):
		return domainerrors.ErrDeviceNotFound.WithDetails(details)
	case errors.Is(err, repository.ErrDuplicateDevice):
		return domainerrors.ErrDeviceAlreadyExists
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domainerrors.NewDatabaseExecuteError(err, details+": request aborted")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// isClientError reports whether err is caused by the caller's input.
func isClientError(err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() >= 400 && appErr.HTTPCode() < 500
}

// windowError rejects an inverted date window.
func windowError(window entity.DateWindow) error {
	if window.IsValid() {
		return nil
	}

	return domainerrors.NewValidationError(domainerrors.FieldViolation{
		Field:  "start",
		Reason: "must not be after end",
	})
}
