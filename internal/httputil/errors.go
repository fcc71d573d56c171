package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
)

// StatusError contains an HTTP status code and the error message extracted
// from the response body.
type StatusError struct {
	// HTTP status codes as registered with IANA.
	Status int
	// Message is the human readable error extracted from the response.
	Message string
}

// NewStatusError builds a StatusError from a response status and body. The
// message is extracted using, in order of preference: a string body, a
// `message` field of a JSON body, the serialized JSON body, or the transport
// status text.
func NewStatusError(status int, body []byte) *StatusError {
	return &StatusError{Status: status, Message: extractErrorMessage(status, body)}
}

// Error implements the `error` interface.
func (e *StatusError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is a StatusError for a 401 response.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusUnauthorized
}

func extractErrorMessage(status int, body []byte) string {
	var data any
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		return http.StatusText(status)
	}
	switch v := data.(type) {
	case string:
		return v
	case map[string]any:
		if msg, ok := v["message"].(string); ok && msg != "" {
			return msg
		}
	}
	if bs, err := json.Marshal(data); err == nil {
		return string(bs)
	}
	return http.StatusText(status)
}
