// Package urlutil provides utility functions for working with go urls.
package urlutil

import (
	"fmt"
	"net/url"
	"strings"
)

// Query parameters used to carry data between the portal, the identity
// provider and the local callback listener over redirects.
const (
	// QueryToken is the query parameter the identity provider appends to the
	// callback URL with the issued bearer token.
	QueryToken = "token"
	// QueryRedirectURI tells the authorization endpoint where to send the
	// browser once the flow completes.
	QueryRedirectURI = "redirect_uri"
)

// ParseAndValidateURL wraps standard library's default url.Parse because
// it's much more lenient about what type of urls it accepts than the portal.
func ParseAndValidateURL(rawurl string) (*url.URL, error) {
	if rawurl == "" {
		return nil, fmt.Errorf("url cannot be empty")
	}
	u, err := url.Parse(rawurl)
	if err != nil {
		if strings.Contains(err.Error(), "first path segment in URL cannot contain colon") {
			err = fmt.Errorf("%w, have you specified protocol (ex: https)", err)
		}
		return nil, err
	}
	if err := ValidateURL(u); err != nil {
		return nil, err
	}
	return u, nil
}

// ValidateURL wraps standard library's default url.Parse because
// it's much more lenient about what type of urls it accepts than the portal.
func ValidateURL(u *url.URL) error {
	if u == nil {
		return fmt.Errorf("nil url")
	}
	if u.Scheme == "" {
		return fmt.Errorf("%s url does not contain a valid scheme, did you mean https://%s?", u.String(), u.String())
	}
	if u.Host == "" {
		return fmt.Errorf("%s url does not contain a valid hostname", u.String())
	}
	return nil
}

// MustParseAndValidateURL parses the URL via ParseAndValidateURL but panics
// if there is an error. It is intended for use in tests and variable
// initialization only.
func MustParseAndValidateURL(rawURL string) *url.URL {
	u, err := ParseAndValidateURL(rawURL)
	if err != nil {
		panic(err)
	}
	return u
}

// Join joins elements of a URL path with a single slash between them.
func Join(elements ...string) string {
	var builder strings.Builder
	appendSlash := false
	for i, el := range elements {
		if appendSlash {
			builder.WriteByte('/')
		}
		if i > 0 && strings.HasPrefix(el, "/") {
			el = el[1:]
		}
		builder.WriteString(el)
		appendSlash = !strings.HasSuffix(el, "/")
	}
	return builder.String()
}
