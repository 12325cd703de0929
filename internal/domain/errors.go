package domain

import "errors"

var (
	ErrClubNotFound  = errors.New("club not found")
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

var (
	ErrInvalidPurchaseIntent = errors.New("invalid purchase intent")
	ErrSessionNotFound       = errors.New("checkout session not found")
	ErrBuyerMismatch         = errors.New("caller does not match session buyer")
)

var (
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrDependencyTimeout     = errors.New("dependency timeout")
)

var (
	ErrValidation = errors.New("validation error")
)
