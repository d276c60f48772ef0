/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrOutOfBoundsError = errors.New("out of bounds")

func ErrOutOfBounds(msg string, args ...any) error {
	return EnrichError(ErrOutOfBoundsError, msg, args...)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrFieldNotFound(f string) error {
	return ErrNotFound("field «%v»", f)
}

func ErrTypeNotFound(t QName) error {
	return ErrNotFound("type «%v»", t)
}

// Candidate type does not satisfy the capability set required for
// compilation or construction
var ErrValidationError = errors.New("validation failed")

func ErrValidation(msg string, args ...any) error {
	return EnrichError(ErrValidationError, msg, args...)
}

// A declared field type has no scalar mapping and matches no record or
// enumeration type
var ErrResolveError = errors.New("cannot resolve")

func ErrResolve(msg string, args ...any) error {
	return EnrichError(ErrResolveError, msg, args...)
}

// Union group declarations or union-constrained arguments conflict
var ErrConflictError = errors.New("conflict")

func ErrConflict(msg string, args ...any) error {
	return EnrichError(ErrConflictError, msg, args...)
}

var ErrUnsupportedError = errors.ErrUnsupported

func ErrUnsupported(msg string, args ...any) error {
	return EnrichError(ErrUnsupportedError, msg, args...)
}
