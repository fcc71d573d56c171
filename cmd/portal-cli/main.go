// Package main implements the command line client for the training-course
// portal.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/courseportal/portal-cli/internal/config"
	"github.com/courseportal/portal-cli/internal/guard"
	"github.com/courseportal/portal-cli/internal/log"
	"github.com/courseportal/portal-cli/internal/portal"
	"github.com/courseportal/portal-cli/internal/sessions"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// app is the wiring shared by all commands, built once before any command
// runs.
type appState struct {
	options *config.Options
	client  *portal.Client
	manager *sessions.Manager
}

var app appState

var (
	flagConfig    string
	flagAPIURL    string
	flagLogLevel  string
	flagNoPersist bool
)

var rootCmd = &cobra.Command{
	Use:          "portal-cli",
	Short:        "command line client for the training-course portal",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		options, err := config.OptionsFromViper(flagConfig)
		if err != nil {
			return err
		}
		if flagAPIURL != "" {
			options.APIURLString = flagAPIURL
			options.AuthorizeURLString = ""
			if err := options.Validate(); err != nil {
				return err
			}
		}
		if flagLogLevel != "" {
			options.LogLevel = flagLogLevel
		}
		if flagNoPersist {
			options.NoPersist = true
		}
		if level, err := zerolog.ParseLevel(options.LogLevel); err == nil {
			log.SetLevel(level)
		}

		var store sessions.Store
		if options.NoPersist {
			store = sessions.NewMemoryStore()
		} else if options.SessionDir != "" {
			store, err = sessions.NewFileStoreAt(options.SessionDir)
		} else {
			store, err = sessions.NewFileStore()
		}
		if err != nil {
			return err
		}

		client := portal.NewClient(options.APIURL, nil)
		manager := sessions.New(store, client, options.AuthorizeURL)
		manager.Resolve(cmd.Context())

		app = appState{options: options, client: client, manager: manager}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "path to a config file")
	flags.StringVar(&flagAPIURL, "api-url", "", "base URL of the portal backend")
	flags.StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&flagNoPersist, "no-persist", false, "do not store the session on disk")
}

// requireSession gates a command the way the route guard gates a view. The
// CLI analog of a redirect is an instructive error.
func requireSession(allowed ...portal.Role) error {
	switch guard.Check(app.manager.Snapshot(), allowed...) {
	case guard.DecisionLoading:
		return fmt.Errorf("session still resolving, try again")
	case guard.DecisionRedirectLogin:
		return fmt.Errorf("not signed in, run `portal-cli login` first")
	case guard.DecisionRedirectRoot:
		return fmt.Errorf("your role is not authorized for this command")
	}
	return nil
}

// executeNavigation performs a session operation's navigation intent. In a
// terminal there is no router; the intent renders as a pointer to the next
// step.
func executeNavigation(nav sessions.Navigation) {
	switch nav {
	case sessions.NavigateRoot:
		if user := app.manager.Snapshot().User; user != nil {
			fmt.Printf("signed in as %s (%s)\n", user.Email, user.Role)
		} else {
			fmt.Println("sign in did not complete, run `portal-cli login` to retry")
		}
	case sessions.NavigateLogin:
		fmt.Println("signed out, run `portal-cli login` to sign in")
	}
}

// printJSON renders a command's result.
func printJSON(v any) error {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(bs))
	return nil
}
