package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// IExtend is implemented by every error type in this package, letting
// Extend add context while preserving the concrete type.
type IExtend interface {
	Extend(message string) error
}

// Extend adds message as context to err, preserving err's concrete
// type if it implements IExtend, or wrapping it with
// github.com/pkg/errors otherwise.
func Extend(err error, message string) error {
	if ex, ok := err.(IExtend); ok {
		return ex.Extend(message)
	}
	return errors.Wrap(err, message)
}

func fmtExtend(self error, message string) string {
	return fmt.Sprintf("%s: %s", message, self)
}

// TooLong is returned when a length or count prefix would exceed the
// wire format's 16-bit limit (strings, sequences, maps).
type TooLong struct {
	message string
}

func NewTooLong(message string) *TooLong {
	return &TooLong{message: message}
}

func (a TooLong) Error() string {
	return a.message
}

func (a TooLong) Extend(message string) error {
	return NewTooLong(fmtExtend(a, message))
}

func (a TooLong) Is(target error) bool {
	_, ok := target.(TooLong)
	return ok
}

// BufferFull is returned when an encode step needs more space than the
// output buffer has remaining.
type BufferFull struct {
	message string
}

func NewBufferFull(need, have int) *BufferFull {
	return &BufferFull{message: fmt.Sprintf("buffer full: need %d bytes, %d remaining", need, have)}
}

func (a BufferFull) Error() string {
	return a.message
}

func (a BufferFull) Extend(message string) error {
	return &BufferFull{message: fmtExtend(a, message)}
}

func (a BufferFull) Is(target error) bool {
	_, ok := target.(BufferFull)
	return ok
}

// MaskMissing is returned when an OptionalField is encoded or decoded
// without a preceding, still-governing OptionalFieldSet.
type MaskMissing struct {
	message string
}

func NewMaskMissing(message string) *MaskMissing {
	return &MaskMissing{message: message}
}

func (a MaskMissing) Error() string {
	return a.message
}

func (a MaskMissing) Extend(message string) error {
	return NewMaskMissing(fmtExtend(a, message))
}

func (a MaskMissing) Is(target error) bool {
	_, ok := target.(MaskMissing)
	return ok
}

// Truncated is returned when a decode or measure step needs more bytes
// than the input buffer has left.
type Truncated struct {
	message string
}

func NewTruncated(need, have int) *Truncated {
	return &Truncated{message: fmt.Sprintf("truncated: need %d bytes, %d remaining", need, have)}
}

func (a Truncated) Error() string {
	return a.message
}

func (a Truncated) Extend(message string) error {
	return &Truncated{message: fmtExtend(a, message)}
}

func (a Truncated) Is(target error) bool {
	_, ok := target.(Truncated)
	return ok
}

// ConstMismatch is returned when a Const field's decoded value differs
// from its compile-time sentinel.
type ConstMismatch struct {
	message string
}

func NewConstMismatch(want, got any) *ConstMismatch {
	return &ConstMismatch{message: fmt.Sprintf("const mismatch: want %v, got %v", want, got)}
}

func (a ConstMismatch) Error() string {
	return a.message
}

func (a ConstMismatch) Extend(message string) error {
	return &ConstMismatch{message: fmtExtend(a, message)}
}

func (a ConstMismatch) Is(target error) bool {
	_, ok := target.(ConstMismatch)
	return ok
}
