package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/courseportal/portal-cli/internal/log"
)

// HeaderRequestID is set on every outbound request so calls can be correlated
// with backend logs.
const HeaderRequestID = "X-Request-Id"

type loggingRoundTripper struct {
	base      http.RoundTripper
	customize []func(event *zerolog.Event) *zerolog.Event
}

func (l loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	res, err := l.base.RoundTrip(req)
	statusCode := http.StatusInternalServerError
	if res != nil {
		statusCode = res.StatusCode
	}
	evt := log.Ctx(req.Context()).Debug().
		Str("method", req.Method).
		Str("authority", req.URL.Host).
		Str("path", req.URL.Path).
		Dur("duration", time.Since(start)).
		Int("response-code", statusCode)
	for _, f := range l.customize {
		f(evt)
	}
	evt.Msg("outbound http-request")
	return res, err
}

// NewLoggingRoundTripper creates a http.RoundTripper that will log requests.
func NewLoggingRoundTripper(base http.RoundTripper, customize ...func(event *zerolog.Event) *zerolog.Event) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return loggingRoundTripper{base: base, customize: customize}
}

// NewLoggingClient creates a new http.Client that will log requests.
func NewLoggingClient(base *http.Client, customize ...func(event *zerolog.Event) *zerolog.Event) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}
	newClient := new(http.Client)
	*newClient = *base
	newClient.Transport = NewLoggingRoundTripper(newClient.Transport, customize...)
	return newClient
}

// getDefaultClient returns an HTTP client that avoids leaks by setting an upper limit for timeouts.
func getDefaultClient() *http.Client {
	return NewLoggingClient(&http.Client{Timeout: 1 * time.Minute})
}

// Do issues a single JSON request and decodes the response into out. A
// non-empty token is sent as a bearer credential. Non-2xx responses are
// returned as a *StatusError carrying the extracted message. A 204 resolves
// without reading a body; out is left untouched.
//
// There is exactly one request per call: no retry, no redirect special
// casing beyond the default client behavior.
func Do(ctx context.Context, client *http.Client, method, endpoint, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		bs, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("httputil: marshaling request payload: %w", err)
		}
		body = bytes.NewReader(bs)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRequestID, uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if client == nil {
		client = getDefaultClient()
	}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode/100 != 2 {
		bs, _ := io.ReadAll(res.Body)
		return NewStatusError(res.StatusCode, bs)
	}

	if res.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	bs, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(bs, out); err != nil {
		return fmt.Errorf("httputil: unmarshaling response: %w", err)
	}
	return nil
}
