package brcode

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidField     = errors.New("invalid field")
	ErrFieldTooLong     = errors.New("field too long")
	ErrEncoding         = errors.New("invalid encoding")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// FieldError names the input or tag that failed. Err is always one of the sentinels above.
type FieldError struct {
	Field  string
	Err    error
	Detail string
}

func (fe *FieldError) Error() string {
	if fe.Detail == "" {
		return fmt.Sprintf("field %s: %v", fe.Field, fe.Err)
	}

	return fmt.Sprintf("field %s: %v: %s", fe.Field, fe.Err, fe.Detail)
}

func (fe *FieldError) Unwrap() error {
	return fe.Err
}

func fieldErr(field string, err error, format string, args ...any) *FieldError {
	return &FieldError{
		Field:  field,
		Err:    err,
		Detail: fmt.Sprintf(format, args...),
	}
}
