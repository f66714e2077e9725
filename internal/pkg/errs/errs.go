package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrInsertFailed      = errors.New("insert failed")
	ErrPriceNotFound     = errors.New("price not found")
	ErrTransactionFailed = errors.New("transaction failed")
)

// ObjectNotFoundError reports that a lookup by identifier returned nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is the validation error returned for malformed input.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside the closed range [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
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
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InsertError reports an INSERT that did not affect exactly one row,
// or that the driver rejected outright.
type InsertError struct {
	Table        string
	RowsAffected int64
	Cause        error
}

func NewInsertError(table string, rowsAffected int64) *InsertError {
	return &InsertError{Table: table, RowsAffected: rowsAffected}
}

func NewInsertErrorWithCause(table string, cause error) *InsertError {
	return &InsertError{Table: table, Cause: cause}
}

func (e *InsertError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrInsertFailed, e.Table, e.Cause)
	}
	return fmt.Sprintf("%s: %s, %d rows affected", ErrInsertFailed, e.Table, e.RowsAffected)
}

func (e *InsertError) Unwrap() error {
	return ErrInsertFailed
}

// PriceNotFoundError reports a product id with no price on record.
type PriceNotFoundError struct {
	ProductID any
	Cause     error
}

func NewPriceNotFoundError(productID any) *PriceNotFoundError {
	return &PriceNotFoundError{ProductID: productID}
}

func NewPriceNotFoundErrorWithCause(productID any, cause error) *PriceNotFoundError {
	return &PriceNotFoundError{ProductID: productID, Cause: cause}
}

func (e *PriceNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: product %v (cause: %v)", ErrPriceNotFound, sanitize(e.ProductID), e.Cause)
	}
	return fmt.Sprintf("%s: product %v", ErrPriceNotFound, sanitize(e.ProductID))
}

func (e *PriceNotFoundError) Unwrap() error {
	return ErrPriceNotFound
}

// TransactionError reports a begin, commit or rollback that the store refused.
type TransactionError struct {
	Op    string
	Cause error
}

func NewTransactionError(op string, cause error) *TransactionError {
	return &TransactionError{Op: op, Cause: cause}
}

func (e *TransactionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrTransactionFailed, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTransactionFailed, e.Op)
}

func (e *TransactionError) Unwrap() error {
	return ErrTransactionFailed
}

// sanitize keeps user supplied values on a single line.
func sanitize(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
