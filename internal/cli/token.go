package cli

import (
	"fmt"
	"time"

	"localnews/internal/auth"

	"github.com/spf13/cobra"
)

// NewTokenCommand issues an admin bearer token from the configured
// credentials without going through the HTTP login.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print an admin bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := rootOpts.load()
			if err != nil {
				return err
			}

			tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AdminUser, cfg.Auth.AdminPass, cfg.Auth.TokenTTL)
			token, expiresAt, err := tokens.Issue(cfg.Auth.AdminUser, cfg.Auth.AdminPass)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}
}
