package usecase

import (
	"errors"
	"fmt"
	"strings"

	"bioskop-ticket/pkg/utils"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")

	ErrFilmNotFound     = fmt.Errorf("film %w", ErrNotFound)
	ErrScheduleNotFound = fmt.Errorf("schedule %w", ErrNotFound)
	ErrBookingNotFound  = fmt.Errorf("booking %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)

	ErrSeatConflict = errors.New("some of the selected seats are no longer available")

	// ErrForbidden: booking milik user lain
	ErrForbidden = errors.New("you are not allowed to access this booking")
	// ErrBookingNotPayable: bukan pemilik, atau status sudah bukan pending
	ErrBookingNotPayable = errors.New("booking is not awaiting payment")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrAlreadyExists      = errors.New("already exists")
)

// ValidationError carries per-field messages and matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// SeatConflictError lists the seats another booking already holds.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	if len(e.Seats) == 0 {
		return ErrSeatConflict.Error()
	}
	return fmt.Sprintf("%s: %s", ErrSeatConflict.Error(), strings.Join(e.Seats, ", "))
}

func (e *SeatConflictError) Unwrap() error { return ErrSeatConflict }
