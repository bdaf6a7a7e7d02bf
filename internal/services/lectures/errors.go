package lectures

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrLectureNotFound    = errors.New("lecture not found")
	ErrChunkNotFound      = errors.New("chunk not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrLectureEnded       = errors.New("lecture already ended")
	ErrLectureNotEnded    = errors.New("lecture not ended")
	ErrDuplicateChunk     = errors.New("duplicate chunk number")
	ErrTranslationFailed  = errors.New("translation failed")
	ErrPersistenceFailed  = errors.New("persistence failed")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrEnhancementFailed  = errors.New("enhancement failed")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       interface{}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with identifier %v not found", e.Resource, e.ID)
}

func (e NotFoundError) Is(target error) bool {
	switch e.Resource {
	case "chunk":
		return target == ErrChunkNotFound
	default:
		return target == ErrLectureNotFound
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// TranslationError wraps a provider failure during chunk submission. No
// chunk row exists when this error is returned.
type TranslationError struct {
	Cause error
}

func (e TranslationError) Error() string {
	return fmt.Sprintf("translation failed: %v", e.Cause)
}

func (e TranslationError) Is(target error) bool {
	return target == ErrTranslationFailed
}

func (e TranslationError) Unwrap() error {
	return e.Cause
}

// PersistenceError wraps a store failure that happened after a successful
// provider call. Distinct from TranslationError so the two phases of a chunk
// submission remain observable.
type PersistenceError struct {
	Operation string
	Cause     error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Operation, e.Cause)
}

func (e PersistenceError) Is(target error) bool {
	return target == ErrPersistenceFailed
}

func (e PersistenceError) Unwrap() error {
	return e.Cause
}

// StorageError wraps a store failure where nothing was partially created
type StorageError struct {
	Operation string
	Cause     error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Operation, e.Cause)
}

func (e StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

func (e StorageError) Unwrap() error {
	return e.Cause
}

// EnhancementError wraps a provider failure during transcript enhancement.
// The lecture's closed state and prior enhanced transcript are untouched.
type EnhancementError struct {
	Cause error
}

func (e EnhancementError) Error() string {
	return fmt.Sprintf("enhancement failed: %v", e.Cause)
}

func (e EnhancementError) Is(target error) bool {
	return target == ErrEnhancementFailed
}

func (e EnhancementError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource string, id interface{}) error {
	return NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFoundErr NotFoundError
	return errors.As(err, &notFoundErr) || errors.Is(err, ErrLectureNotFound)
}
