package network

import (
	"errors"
	"fmt"
)

var (
	ErrNoInternetConnection  = errors.New("no internet connection, please try again later")
	ErrInvalidURL            = errors.New("URL string is malformed")
	ErrInvalidServerResponse = errors.New("the server returned an invalid response")
	ErrNoData                = errors.New("no data was returned from the server")
)

// UnexpectedStatusCodeError is returned for responses outside [200,300).
type UnexpectedStatusCodeError struct {
	Code int
}

func (e *UnexpectedStatusCodeError) Error() string {
	return fmt.Sprintf("the server returned unexpected status code %d", e.Code)
}

// Origin tells which stage of a request failed.
type Origin int

const (
	OriginNetwork Origin = iota
	OriginParsing
)

func (o Origin) String() string {
	switch o {
	case OriginNetwork:
		return "network"
	case OriginParsing:
		return "parsing"
	default:
		return "unknown"
	}
}

// RequestError wraps a transport or decode failure one level up so callers
// can tell the two apart without inspecting the cause.
type RequestError struct {
	Origin Origin
	Err    error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error { return e.Err }
