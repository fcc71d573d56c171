package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/courseportal/portal-cli/internal/authclient"
	"github.com/courseportal/portal-cli/internal/sessions"
)

func init() {
	rootCmd.AddCommand(loginCommand())
	rootCmd.AddCommand(logoutCommand())
}

func loginCommand() *cobra.Command {
	var (
		email    string
		password string
		browser  bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "sign in with portal credentials or via the identity provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if browser {
				ac := authclient.New()
				rawToken, err := ac.GetToken(ctx, app.manager.AuthorizeURL())
				if err != nil {
					return fmt.Errorf("identity provider login failed: %w", err)
				}
				executeNavigation(app.manager.CompleteCallback(ctx, rawToken))
				return nil
			}

			if email == "" {
				return errors.New("email is required")
			}
			if password == "" {
				fmt.Print("Password: ")
				scanner := bufio.NewScanner(os.Stdin)
				scanner.Scan()
				password = strings.TrimSpace(scanner.Text())
			}
			if password == "" {
				return errors.New("password is required")
			}

			if err := app.manager.Login(ctx, email, password); err != nil {
				return err
			}
			executeNavigation(sessions.NavigateRoot)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&email, "email", "", "account email")
	flags.StringVar(&password, "password", "", "account password (prompted if omitted)")
	flags.BoolVar(&browser, "browser", false, "sign in through the identity provider in a browser")
	return cmd
}

func logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "sign out and discard the stored session",
		RunE: func(_ *cobra.Command, _ []string) error {
			executeNavigation(app.manager.Logout())
			return nil
		},
	}
}
