package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passkit/internal/config"
	"github.com/vaultpass/passkit/internal/crypto"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the stats endpoint",
		Long: `Mint a bearer token granting read access to /api/v1/stats.

The token is signed with JWT_SECRET from the environment or .env file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if ttl == 0 {
				ttl = cfg.JWTExpiry
			}

			token, err := crypto.GenerateToken(subject, crypto.ScopeStatsRead, cfg.JWTSecret, ttl)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "operator", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default JWT_EXPIRY)")
	return cmd
}
