package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/findosh/finchat/internal/services/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API bearer token signed with the configured secret",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if ttl <= 0 {
			ttl = cfg.TokenTTL
		}

		svc := auth.NewService(cfg.APISecret, ttl)
		token, expires, err := svc.IssueToken(subject)
		if err != nil {
			return fmt.Errorf("cannot issue token (is FINCHAT_API_SECRET set?): %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		fmt.Fprintln(cmd.ErrOrStderr(), metaStyle.Render("expires "+expires.Format(time.RFC3339)))
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("subject", "finchat-cli", "token subject")
	tokenCmd.Flags().Duration("ttl", 0, "token lifetime (default FINCHAT_TOKEN_TTL)")
}
