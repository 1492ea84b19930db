package engine

import "errors"

var (
	// ErrMalformedNumber is returned when a population or change field is not numeric.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrShortRow is returned when a row does not reach the change column.
	ErrShortRow = errors.New("row has too few columns")
	// ErrInsufficientRecords is returned when more rows are requested than exist.
	ErrInsufficientRecords = errors.New("not enough records")
)
