package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrValidationEmptyName           = errors.New("name is required")
	ErrValidationEmptySKU            = errors.New("sku is required")
	ErrValidationEmptyUnit           = errors.New("unit is required")
	ErrValidationInvalidRole         = errors.New("role must be ADMIN or STAFF")
	ErrValidationInvalidPrice        = errors.New("price must not be negative")
	ErrValidationInvalidQuantity     = errors.New("quantity must be positive")
	ErrValidationInvalidThreshold    = errors.New("low stock threshold must not be negative")
	ErrValidationNoProductID         = errors.New("product ID is required")
	ErrValidationInvalidMovementType = errors.New("movement type must be in or out")
	ErrValidationNoRecordingUser     = errors.New("no recording user in request context")
)
