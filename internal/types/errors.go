package types

import "errors"

var (
	// ErrMissingField is returned when a required column is absent from the
	// input table or a row is too short to reach it.
	ErrMissingField = errors.New("missing field")
	// ErrMalformedScore is returned when a label or confidence cannot be
	// parsed, or the label is not a known category.
	ErrMalformedScore = errors.New("malformed score")
	// ErrMalformedID is returned when id or start_index is not an integer.
	ErrMalformedID = errors.New("malformed id")
	// ErrInvalidArguments is returned for command-line misuse.
	ErrInvalidArguments = errors.New("invalid arguments")
)
