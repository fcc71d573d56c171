// Package authclient completes a redirect-based identity-provider login from
// outside a browser context.
package authclient

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/courseportal/portal-cli/internal/log"
	"github.com/courseportal/portal-cli/internal/urlutil"
)

// CallbackPath is the path the identity provider redirects back to with the
// issued token as a query parameter.
const CallbackPath = "/oauth2/callback"

// An AuthClient retrieves a bearer token via the identity provider's
// redirect flow: it stands up a loopback listener, sends the browser to the
// fixed authorization URL and waits for the provider to redirect back with
// the token.
type AuthClient struct {
	cfg *config
}

// New creates a new AuthClient.
func New(options ...Option) *AuthClient {
	return &AuthClient{
		cfg: getConfig(options...),
	}
}

// GetToken runs the redirect flow against authorizeURL and returns the
// issued token. The flow resumes out of process: nothing useful can be
// reported to the browser tab beyond a completion note.
func (client *AuthClient) GetToken(ctx context.Context, authorizeURL *url.URL) (rawToken string, err error) {
	li, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("authclient: failed to start listener: %w", err)
	}
	defer func() { _ = li.Close() }()

	incomingToken := make(chan string)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return client.runHTTPServer(ctx, li, incomingToken)
	})
	eg.Go(func() error {
		return client.runOpenBrowser(ctx, li, authorizeURL)
	})
	eg.Go(func() error {
		select {
		case rawToken = <-incomingToken:
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	})
	err = eg.Wait()
	if err != nil {
		return "", err
	}

	return rawToken, nil
}

func (client *AuthClient) runHTTPServer(ctx context.Context, li net.Listener, incomingToken chan string) error {
	r := mux.NewRouter()
	var srv *http.Server
	r.Path(CallbackPath).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue(urlutil.QueryToken)
		if token == "" {
			// incomplete flow, keep waiting for a redirect that carries one
			http.Error(w, "missing token", http.StatusBadRequest)
			return
		}
		incomingToken <- token

		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "login complete, you may close this page")

		go func() { _ = srv.Shutdown(ctx) }()
	})
	srv = &http.Server{
		BaseContext: func(li net.Listener) context.Context {
			return ctx
		},
		Handler: r,
	}
	// shutdown the server when ctx is done.
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(ctx)
	}()
	err := srv.Serve(li)
	if err == http.ErrServerClosed {
		err = nil
	}
	return err
}

func (client *AuthClient) runOpenBrowser(ctx context.Context, li net.Listener, authorizeURL *url.URL) error {
	dst := *authorizeURL
	q := dst.Query()
	q.Set(urlutil.QueryRedirectURI, fmt.Sprintf("http://%s%s", li.Addr().String(), CallbackPath))
	dst.RawQuery = q.Encode()

	log.Info(ctx).Str("url", dst.String()).Msg("authclient: opening browser")
	if err := client.cfg.open(dst.String()); err != nil {
		return fmt.Errorf("authclient: failed to open browser url: %w", err)
	}
	return nil
}
