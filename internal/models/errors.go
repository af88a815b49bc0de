package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrAlreadyInitialized is returned when onboarding is attempted twice.
	ErrAlreadyInitialized = errors.New("a user already exists, reset all data to start over")

	// ErrNoUser is returned for operations that need the user profile
	// before onboarding has been completed.
	ErrNoUser = errors.New("no user exists yet, complete onboarding first")

	// ErrInvalidAmount is returned when an amount is zero or negative
	// where a positive amount is required.
	ErrInvalidAmount = errors.New("the amount must be positive")

	// ErrInvalidDueDay is returned for due days outside of [1, 31].
	ErrInvalidDueDay = errors.New("the due day must be between 1 and 31")
)
