package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated actor is not permitted to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that the operation conflicts with concurrently committed state.
// Callers may retry the operation.
var ErrConflict = errors.New("conflicting concurrent update")

// ErrInsufficientStock indicates that an outbound movement exceeds the available balance.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInternal indicates an unexpected failure that should not be exposed in detail to callers.
var ErrInternal = errors.New("internal error")

// AppError wraps an underlying error with an HTTP-ish status code and a message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// InsufficientStockError is returned when an outbound movement (transfer-out,
// assignment, expenditure) would drive a (base, assetType) balance negative.
// It carries the available quantity so callers can present it.
type InsufficientStockError struct {
	BaseID      string
	AssetTypeID string
	Requested   int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for asset type %s at base %s: requested %d, available %d",
		e.AssetTypeID, e.BaseID, e.Requested, e.Available)
}

// Unwrap lets errors.Is(err, ErrInsufficientStock) match.
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// NewInsufficientStockError creates a new InsufficientStockError.
func NewInsufficientStockError(baseID, assetTypeID string, requested, available int64) *InsufficientStockError {
	return &InsufficientStockError{
		BaseID:      baseID,
		AssetTypeID: assetTypeID,
		Requested:   requested,
		Available:   available,
	}
}
