package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/findosh/finchat/internal/config"
	"github.com/findosh/finchat/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "finchat",
	Short: "Ask questions about Bajaj Finserv results from the terminal",
	Long: `finchat answers questions about Bajaj Finserv quarterly results, its
subsidiaries and share price history. Questions go to the finchat API and
are answered locally when the API cannot be reached.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./finchat.yaml or $HOME/.finchat/finchat.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.PersistentFlags().String("api-url", "", "finchat API base URL, e.g. http://localhost:5000/api (or set FINCHAT_API_BASE_URL)")
	rootCmd.PersistentFlags().String("token", "", "bearer token for the API (or set FINCHAT_API_TOKEN)")
	rootCmd.PersistentFlags().String("prices", "", "price history CSV (or set FINCHAT_PRICE_CSV)")
	rootCmd.PersistentFlags().String("database", "", "SQLite database path (or set FINCHAT_DATABASE_URL)")

	viper.BindPFlag("api_base_url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("api_token", rootCmd.PersistentFlags().Lookup("token"))
	viper.BindPFlag("price_csv", rootCmd.PersistentFlags().Lookup("prices"))
	viper.BindPFlag("database_url", rootCmd.PersistentFlags().Lookup("database"))

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(pricesCmd)
	rootCmd.AddCommand(tokenCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := config.Prepare(viper.GetViper(), cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "Error reading config:", err)
		os.Exit(1)
	}
	if verbose && viper.ConfigFileUsed() != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func loadConfig() (*config.Config, error) {
	return config.FromViper(viper.GetViper())
}

// cliLogger stays quiet unless --verbose is set
func cliLogger(cfg *config.Config) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger, err := logging.New(logging.Options{Level: "debug", Format: cfg.LogFormat, Output: os.Stderr})
	if err != nil {
		return slog.Default()
	}
	return logger.Logger
}
