package errs

import (
	"fmt"
	"strings"
)

// ValueIsInvalidError reports a value that is present but malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
			ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max)),
		e.Cause,
	)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsNotAllowedError reports a value outside of a closed set of literals.
type ValueIsNotAllowedError struct {
	ParamName string
	Value     any
	Allowed   []string
	Cause     error
}

func NewValueIsNotAllowedError(paramName string, value any, allowed []string) *ValueIsNotAllowedError {
	return &ValueIsNotAllowedError{
		ParamName: paramName,
		Value:     value,
		Allowed:   allowed,
	}
}

func NewValueIsNotAllowedErrorWithCause(
	paramName string,
	value any,
	allowed []string,
	cause error,
) *ValueIsNotAllowedError {
	return &ValueIsNotAllowedError{
		ParamName: paramName,
		Value:     value,
		Allowed:   allowed,
		Cause:     cause,
	}
}

func (e *ValueIsNotAllowedError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s is %s, allowed values are: %s",
			ErrValueIsNotAllowed, sanitize(e.Value), e.ParamName, strings.Join(e.Allowed, ", ")),
		e.Cause,
	)
}

func (e *ValueIsNotAllowedError) Unwrap() error {
	return ErrValueIsNotAllowed
}
