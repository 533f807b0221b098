package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes bounds the size of JSON request bodies.
const MaxBodyBytes = 100 << 10

// ErrMalformedBody is returned by DecodeJSON when the body is not valid JSON.
var ErrMalformedBody = errors.New("malformed request body")

// DecodeJSON decodes the request body into the given struct.
// The body must hold exactly one JSON value. An empty body leaves v
// untouched so that field validation can report what is missing.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedBody)
		}
		return fmt.Errorf("%w: unexpected data after JSON value: %w", ErrMalformedBody, err)
	}
	return nil
}
