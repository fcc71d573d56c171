package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(whoamiCommand())
}

func whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "show the signed-in user",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			s := app.manager.Snapshot()
			out := struct {
				User   any    `json:"user"`
				Claims any    `json:"claims"`
				Expiry string `json:"expiry,omitempty"`
			}{User: s.User, Claims: s.Claims}
			if s.Claims != nil && s.Claims.Expiry != nil {
				out.Expiry = s.Claims.Expiry.Time().String()
			}
			return printJSON(out)
		},
	}
}
