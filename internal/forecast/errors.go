package forecast

import "fmt"

// InsufficientDataError reports a series too short to fit.
type InsufficientDataError struct {
	Series       string
	Observations int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("series %q has %d observations; at least 2 are required to fit", e.Series, e.Observations)
}

// InvalidHorizonError reports a non-positive forecast horizon.
type InvalidHorizonError struct {
	Days int
}

func (e *InvalidHorizonError) Error() string {
	return fmt.Sprintf("forecast horizon must be positive, got %d", e.Days)
}
