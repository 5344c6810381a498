// Package parser turns raw response bodies into typed values.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/bassista/go_unis/internal/logger"
	"github.com/go-playground/validator/v10"
)

// ErrNullBody is wrapped in an InvalidDataError when the body is the JSON
// literal null.
var ErrNullBody = errors.New("body is null")

// InvalidDataError reports a body that could not be decoded into the
// requested type, or that decoded into a value failing validation.
type InvalidDataError struct {
	Err error
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid data: %v", e.Err)
}

func (e *InvalidDataError) Unwrap() error { return e.Err }

// Decoder decodes JSON and then checks `validate` struct tags on the result.
type Decoder struct {
	validator *validator.Validate
}

func NewDecoder() *Decoder {
	return &Decoder{validator: validator.New()}
}

// Parse decodes data into a T. Wire-level key names are declared on T's
// json tags, one fixed table per type. A top-level null is invalid data.
func Parse[T any](d *Decoder, data []byte) (T, error) {
	var out T
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		logger.WithComponent("parser").Debugf("error occurred while decoding data: %v", ErrNullBody)
		return out, &InvalidDataError{Err: ErrNullBody}
	}
	if err := json.Unmarshal(data, &out); err != nil {
		logger.WithComponent("parser").Debugf("error occurred while decoding data: %v", err)
		var zero T
		return zero, &InvalidDataError{Err: err}
	}
	if d != nil {
		if err := d.validate(reflect.ValueOf(out)); err != nil {
			logger.WithComponent("parser").Debugf("decoded data failed validation: %v", err)
			var zero T
			return zero, &InvalidDataError{Err: err}
		}
	}
	return out, nil
}

// validate walks slices and pointers down to structs.
func (d *Decoder) validate(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := d.validate(v.Index(i)); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	case reflect.Pointer:
		if !v.IsNil() {
			return d.validate(v.Elem())
		}
	case reflect.Struct:
		return d.validator.Struct(v.Interface())
	}
	return nil
}
