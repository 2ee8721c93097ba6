package sso

import "fmt"

var (
	errInvalidUTF8 = &InvalidUTF8Error{}
)

// InvalidUTF8Error gets returned when byte content handed to a validating
// constructor or unmarshaler is not well-formed UTF-8. The input is left
// untouched - ownership only transfers on success.
type InvalidUTF8Error struct{}

func (e *InvalidUTF8Error) Error() string { return "bytes are not valid UTF-8" }

// InvalidTypeError gets returned when a value of an unsupported type is
// passed to Scan.
type InvalidTypeError struct {
	Value any
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("cannot scan a value of type %T into a String", e.Value)
}
