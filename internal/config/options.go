// Package config loads the portal client's configuration from a config file
// and environment variables.
package config

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/courseportal/portal-cli/internal/urlutil"
)

// envPrefix namespaces the environment variables, e.g. PORTAL_API_URL.
const envPrefix = "portal"

// Options are the environmental settings used to set up the portal client.
type Options struct {
	// APIURLString is the base URL of the backend REST API.
	APIURLString string `mapstructure:"api_url"`

	// AuthorizeURLString is the identity-provider authorization URL the
	// browser is sent to for a redirect login. If empty it is derived from
	// the API URL.
	AuthorizeURLString string `mapstructure:"authorize_url"`

	// LogLevel sets the global log level. Possible options are "debug",
	// "info", "warn" and "error".
	LogLevel string `mapstructure:"log_level"`

	// SessionDir overrides where the session token is stored. If empty the
	// user's cache directory is used.
	SessionDir string `mapstructure:"session_dir"`

	// NoPersist disables durable session storage; the session then lives
	// only as long as the process.
	NoPersist bool `mapstructure:"no_persist"`

	// APIURL and AuthorizeURL are the parsed forms, hydrated by Validate.
	APIURL       *url.URL `mapstructure:"-"`
	AuthorizeURL *url.URL `mapstructure:"-"`
}

var defaultOptions = Options{
	APIURLString: "http://localhost:8080",
	LogLevel:     "info",
}

// authorizePath is the backend route that starts the identity-provider flow.
const authorizePath = "/oauth2/authorization/keycloak"

// OptionsFromViper builds the configuration options by parsing environment
// variables and an optional config file.
func OptionsFromViper(configFile string) (*Options, error) {
	// start a copy of the default options
	o := defaultOptions

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.bindEnvs(v)
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&o); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation error: %w", err)
	}
	return &o, nil
}

// Validate ensures the Options fields are properly formed and hydrates the
// parsed URLs.
func (o *Options) Validate() error {
	var retErr *multierror.Error

	u, err := urlutil.ParseAndValidateURL(o.APIURLString)
	if err != nil {
		retErr = multierror.Append(retErr, fmt.Errorf("bad api-url %s: %w", o.APIURLString, err))
	} else {
		o.APIURL = u
	}

	if o.AuthorizeURLString == "" && o.APIURL != nil {
		o.AuthorizeURL = o.APIURL.JoinPath(authorizePath)
	} else if o.AuthorizeURLString != "" {
		u, err := urlutil.ParseAndValidateURL(o.AuthorizeURLString)
		if err != nil {
			retErr = multierror.Append(retErr, fmt.Errorf("bad authorize-url %s: %w", o.AuthorizeURLString, err))
		} else {
			o.AuthorizeURL = u
		}
	}

	switch o.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		retErr = multierror.Append(retErr, fmt.Errorf("%s is an invalid log level", o.LogLevel))
	}

	return retErr.ErrorOrNil()
}

func (o *Options) bindEnvs(v *viper.Viper) {
	tagName := `mapstructure`
	t := reflect.TypeOf(*o)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		envName := field.Tag.Get(tagName)
		if envName == "" || envName == "-" {
			continue
		}
		_ = v.BindEnv(envName)
	}
}
