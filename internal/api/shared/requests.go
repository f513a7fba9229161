package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrTrailingData is returned when a request body holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON body")

var validate = validator.New()

// DecodeJSON decodes exactly one JSON value from the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// ValidateRequest checks v against its `validate` struct tags.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}
