package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/findosh/finchat/internal/app"
	"github.com/findosh/finchat/internal/client"
	"github.com/findosh/finchat/internal/config"
)

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask a single question",
	Example: `  finchat ask "What was the revenue growth in Q2 FY25?"
  finchat ask --local "Compare Q1 vs Q2 performance"
  finchat ask --prices data/prices.csv "Highest stock price in Jan-22"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		local, _ := cmd.Flags().GetBool("local")
		raw, _ := cmd.Flags().GetBool("raw")
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := cliLogger(cfg)

		c, closeFn, err := newClient(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeFn()

		question := strings.Join(args, " ")
		env, err := ask(cmd.Context(), c, question, local)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(env)
		}

		fmt.Fprintln(out, formatEnvelope(env, raw))
		if !raw {
			if s := formatSuggestions(env.Suggestions); s != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, s)
			}
		}
		return nil
	},
}

func init() {
	askCmd.Flags().Bool("local", false, "answer in-process without calling the API")
	askCmd.Flags().Bool("raw", false, "print the plain answer text only")
	askCmd.Flags().Bool("json", false, "print the full response envelope as JSON")
}

// newClient builds an API client with an in-process fallback assistant
func newClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*client.Client, func(), error) {
	data, err := app.Load(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	svc, err := app.NewAssistant(cfg, data, logger)
	if err != nil {
		data.Close()
		return nil, nil, err
	}

	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = client.ResolveBaseURL(cfg.APIHost, cfg.Environment)
	}

	c := client.New(baseURL, svc,
		client.WithToken(cfg.APIToken),
		client.WithTimeout(cfg.ClientTimeout),
		client.WithLogger(logger),
	)
	return c, func() { data.Close() }, nil
}
