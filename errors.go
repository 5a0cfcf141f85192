package arenago

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is the class of arena construction failures.
	ErrConfig = errors.New("invalid arena configuration")
	// ErrValidation is the class of partition spec failures.
	ErrValidation = errors.New("invalid partition spec")
	// ErrDuplicateName is returned when a different spec is added under a
	// name that is already registered.
	ErrDuplicateName = errors.New("duplicate partition name")
	// ErrCapacity is returned when a partition does not fit in the free
	// space of the arena.
	ErrCapacity = errors.New("insufficient capacity")
	// ErrClosed is returned when operating on a closed arena.
	ErrClosed = errors.New("arena is closed")
	// ErrUnknownProperty is returned when a partition has no property with
	// the requested name.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrPropertyType is returned when a property exists but holds a
	// different element type or storage mode than requested.
	ErrPropertyType = errors.New("property type mismatch")
)

// ConfigError reports why arena construction was rejected.
//
// errors.Is(err, ErrConfig) matches it; the underlying error (if any)
// can be accessed via errors.Unwrap.
type ConfigError struct {
	Reason string
	cause  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid arena configuration: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.cause }

// ValidationError reports why a partition spec was rejected.
//
// errors.Is(err, ErrValidation) matches it.
type ValidationError struct {
	Partition string
	Reason    string
	cause     error
}

func (e *ValidationError) Error() string {
	if e.Partition == "" {
		return fmt.Sprintf("invalid partition spec: %s", e.Reason)
	}
	return fmt.Sprintf("invalid partition spec %q: %s", e.Partition, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.cause }

// DuplicateNameError reports an attempt to register a second spec under an
// existing partition name.
//
// errors.Is(err, ErrDuplicateName) matches it.
type DuplicateNameError struct {
	Name  string
	cause error
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate partition name: %q", e.Name)
}

func (e *DuplicateNameError) Unwrap() error { return e.cause }

// CapacityError reports a partition that does not fit. Required is the
// total aligned size the partition needs; Available the arena's remaining
// free space at the time of the call.
//
// errors.Is(err, ErrCapacity) matches it.
type CapacityError struct {
	Partition string
	Required  uint64
	Available uint64
	cause     error
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity for partition %q: need %d bytes, %d free", e.Partition, e.Required, e.Available)
}

func (e *CapacityError) Unwrap() error { return e.cause }

func newConfigError(reason string) *ConfigError {
	return &ConfigError{Reason: reason, cause: ErrConfig}
}

func newValidationError(partition, reason string, cause error) *ValidationError {
	if cause == nil {
		cause = ErrValidation
	} else {
		cause = fmt.Errorf("%w: %w", ErrValidation, cause)
	}
	return &ValidationError{Partition: partition, Reason: reason, cause: cause}
}

func newDuplicateNameError(name string) *DuplicateNameError {
	return &DuplicateNameError{Name: name, cause: ErrDuplicateName}
}

func newCapacityError(partition string, required, available uint64) *CapacityError {
	return &CapacityError{Partition: partition, Required: required, Available: available, cause: ErrCapacity}
}
