package entities

import "errors"

// Domain errors
var (
	// Persistence errors returned by repositories
	ErrRecordNotFound  = errors.New("record not found")
	ErrDuplicateRecord = errors.New("duplicate record")

	// Intake errors
	ErrInvalidQuestion     = errors.New("invalid question number")
)
