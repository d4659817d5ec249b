package hamming

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every input validation error.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedMetric is returned for unknown metrics.
	ErrUnsupportedMetric = errors.New("unsupported metric")
)

// ErrLengthMismatch indicates that two sequences compared by an
// equal-length distance do not have the same length.
//
// errors.Is(err, ErrInvalidArgument) reports true for this error.
type ErrLengthMismatch struct {
	Left  int
	Right int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("sequences are not of equal length: %d != %d", e.Left, e.Right)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrInvalidArgument }
