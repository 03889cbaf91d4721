package solved

import (
	"errors"
	"fmt"
)

var ErrPageLimit = errors.New("reached the configured page limit before an empty page")

// FetchError is returned when a listing page could not be fetched.
// StatusCode is zero when there was no response at all.
type FetchError struct {
	Url        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("failed to fetch %s: %s", e.Url, e.Err.Error())
	}
	return fmt.Sprintf("failed to fetch %s: %d", e.Url, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
