package stormglass

import (
	"fmt"
	"time"
)

// FetchError reports a failed forecast request. StatusCode is zero when the
// request never got a response.
type FetchError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("stormglass returned status %d: %s", e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("stormglass returned status %d", e.StatusCode)
	default:
		return fmt.Sprintf("fetching forecast: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ThrottledError is returned instead of waiting when the minimum interval
// between requests has not elapsed. No request is made.
type ThrottledError struct {
	RetryIn time.Duration
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("refresh available in %s", e.RetryIn.Round(time.Second))
}
