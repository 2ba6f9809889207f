package types

import "fmt"

// Error codes
const (
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeUnsupportedType = "UNSUPPORTED_TYPE"
	CodeTypeMismatch    = "TYPE_MISMATCH"
	CodeDecode          = "DECODE"
)

// Sentinels for errors.Is. Matching is by Code, so every *Error built by the
// constructors below matches the sentinel of the same code.
var (
	ErrOutOfRange      = &Error{Code: CodeOutOfRange, Message: "index out of bounds"}
	ErrUnsupportedType = &Error{Code: CodeUnsupportedType, Message: "unsupported data type"}
	ErrTypeMismatch    = &Error{Code: CodeTypeMismatch, Message: "data type mismatch"}
	ErrDecode          = &Error{Code: CodeDecode, Message: "malformed bytes"}
)

// Error is the error type returned by buffers, statistics and the merge iterator
type Error struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewError creates a new Error
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithDetails creates a new Error with details
func NewErrorWithDetails(code, message string, details map[string]interface{}) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewOutOfRangeError reports a positional access outside [0, length)
func NewOutOfRangeError(track string, index, length int) *Error {
	msg := fmt.Sprintf("%s index %d out of bounds, length %d", track, index, length)
	if index < 0 {
		msg = fmt.Sprintf("%s index is negative: %d", track, index)
	}
	return NewErrorWithDetails(CodeOutOfRange, msg, map[string]interface{}{
		"track":  track,
		"index":  index,
		"length": length,
	})
}

// NewUnsupportedTypeError reports a data type with no defined behavior
func NewUnsupportedTypeError(dt interface{}) *Error {
	return NewErrorWithDetails(CodeUnsupportedType, fmt.Sprintf("unsupported data type: %v", dt),
		map[string]interface{}{"data_type": fmt.Sprint(dt)})
}

// NewTypeMismatchError reports an operand whose type differs from the receiver's
func NewTypeMismatchError(want, got DataType) *Error {
	return NewErrorWithDetails(CodeTypeMismatch, fmt.Sprintf("data type mismatch: want %s, got %s", want, got),
		map[string]interface{}{"want": want.String(), "got": got.String()})
}

// NewDecodeError reports bytes that cannot be decoded into a value
func NewDecodeError(format string, args ...interface{}) *Error {
	return NewError(CodeDecode, fmt.Sprintf(format, args...))
}
