package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/bassista/go_unis/internal/network"
	"github.com/bassista/go_unis/internal/parser"
	"github.com/bassista/go_unis/internal/store"
)

// UserMessage turns a load failure into the sentence shown to the user.
func UserMessage(err error) string {
	var status *network.UnexpectedStatusCodeError
	var invalid *parser.InvalidDataError
	var storeErr *store.Error

	switch {
	case err == nil:
		return ""
	case errors.Is(err, network.ErrNoInternetConnection):
		return "No Internet connection, please try again later"
	case errors.Is(err, network.ErrInvalidURL):
		return "URL string is malformed."
	case errors.Is(err, network.ErrInvalidServerResponse):
		return "The server returned an invalid response."
	case errors.As(err, &status):
		return fmt.Sprintf("The server returned unexpected status code %d", status.Code)
	case errors.Is(err, network.ErrNoData):
		return "No data was returned from the server"
	case errors.As(err, &invalid):
		return "The server returned data that could not be read."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "The request was cancelled."
	case errors.Is(err, store.ErrObjectNotFound):
		return "Object not found in the database."
	case errors.As(err, &storeErr):
		return storeMessage(storeErr)
	default:
		return fmt.Sprintf("An unknown error occurred: %v", err)
	}
}

func storeMessage(e *store.Error) string {
	switch e.Op {
	case store.OpWrite:
		return fmt.Sprintf("Failed to write to the database: %v", e.Err)
	case store.OpRead:
		return fmt.Sprintf("Failed to read from the database: %v", e.Err)
	case store.OpUpdate:
		return fmt.Sprintf("Failed to update the database: %v", e.Err)
	case store.OpDelete:
		return fmt.Sprintf("Failed to delete from the database: %v", e.Err)
	default:
		return fmt.Sprintf("An unknown error occurred: %v", e.Err)
	}
}
