package hues

import "errors"

var (
	// ErrRange reports a value outside its type's closed domain.
	ErrRange = errors.New("value out of range")

	// ErrFormat reports input that cannot be parsed as a number.
	ErrFormat = errors.New("value not numeric")
)
