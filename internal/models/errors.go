package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("city not found")
	ErrCapabilityUnavailable = errors.New("location capability unavailable")
	ErrFetchInFlight         = errors.New("city fetch already in progress")
)

// TransportError is a network failure or a non-success response from the weather API.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("weather API transport error: %v", e.Err)
	}
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports persisted state that could not be decoded.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed value under %q: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UserMessage renders err the way it is shown to a dashboard user: the weather API's own
// message for transport failures and a fixed text for unknown cities.
func UserMessage(err error) string {
	var te *TransportError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return ErrNotFound.Error()
	case errors.As(err, &te):
		return te.Error()
	}
	return err.Error()
}
