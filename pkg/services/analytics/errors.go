package analytics

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingObservation reports a required (series, date) pair with no entry
	ErrMissingObservation = errors.New("missing observation")
	// ErrInsufficientData reports that no sectors could be aligned for a comparison
	ErrInsufficientData = errors.New("insufficient data")
)

// MissingObservationError names the series and date that could not be found
type MissingObservationError struct {
	Series string
	Date   time.Time
}

func (e *MissingObservationError) Error() string {
	return fmt.Sprintf("%s: no observation for %q on %s", ErrMissingObservation, e.Series, e.Date.Format(time.DateOnly))
}

func (e *MissingObservationError) Unwrap() error {
	return ErrMissingObservation
}
