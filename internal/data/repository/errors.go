package repository

import "errors"

var (
	// ErrUniqueViolation dibungkus saat insert menabrak unique constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrNoRowsAffected: update/revoke tidak mengenai baris apapun.
	ErrNoRowsAffected = errors.New("no rows affected")
)
