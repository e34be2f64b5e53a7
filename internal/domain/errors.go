// Package domain defines the bakery entities and the error types every
// rejected write resolves to.
package domain

import (
	"errors"
	"fmt"
)

// ValidationError is returned when a field-level constraint is violated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// NoFieldsError is returned when an update payload names no recognized field.
type NoFieldsError struct{}

func (e *NoFieldsError) Error() string {
	return "no fields to update"
}

// EmptyProductsError is returned when an inventory is created without lines.
type EmptyProductsError struct{}

func (e *EmptyProductsError) Error() string {
	return "products list cannot be empty"
}

// InvalidLineError is returned when an inventory line fails validation,
// naming the offending index.
type InvalidLineError struct {
	Index  int
	Reason string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("invalid product line %d: %s", e.Index, e.Reason)
}

// DuplicateDateError is returned when an inventory already exists for a date.
type DuplicateDateError struct {
	Date string
}

func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("inventory already exists for date %s", e.Date)
}

// UnknownEmployeeError is returned when a payroll entry references an
// employee that cannot be resolved.
type UnknownEmployeeError struct {
	ID string
}

func (e *UnknownEmployeeError) Error() string {
	return fmt.Sprintf("unknown employee: %s", e.ID)
}

// NotFoundError is returned when no record matches the requested id or date.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// IsNotFound checks whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDomainValidation reports whether err is a business-rule violation, the
// class of failures surfaced as HTTP 400.
func IsDomainValidation(err error) bool {
	var (
		ve *ValidationError
		nf *NoFieldsError
		ep *EmptyProductsError
		il *InvalidLineError
		dd *DuplicateDateError
		ue *UnknownEmployeeError
	)
	return errors.As(err, &ve) ||
		errors.As(err, &nf) ||
		errors.As(err, &ep) ||
		errors.As(err, &il) ||
		errors.As(err, &dd) ||
		errors.As(err, &ue)
}
