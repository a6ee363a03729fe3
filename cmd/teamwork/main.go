package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/teamwork/cmd/teamwork/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "teamwork",
	Short: "Teamwork.com API CLI",
	Long: `A command-line interface for the Teamwork.com projects API.

Every registered resource operation can be called by name, for example
"teamwork call projects get 42". Run "teamwork resources" to list them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.teamwork/config.yml)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "Teamwork API key")
	rootCmd.PersistentFlags().String("base-url", "", "account URL, e.g. https://acme.teamwork.com")
	rootCmd.PersistentFlags().String("domain", "", "account domain, e.g. acme.teamwork.com")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log HTTP requests and responses to stderr")
	rootCmd.PersistentFlags().Int("requests-per-minute", 0, "client-side rate limit (0 disables)")
	rootCmd.PersistentFlags().String("nats-url", "", "publish call events to this NATS server")
	rootCmd.PersistentFlags().String("nats-subject", "", "subject for call events (default teamwork.calls)")

	// Bind flags to viper
	bindFlag("config", "config")
	bindFlag("api_key", "api-key")
	bindFlag("base_url", "base-url")
	bindFlag("domain", "domain")
	bindFlag("output", "output")
	bindFlag("verbose", "verbose")
	bindFlag("requests_per_minute", "requests-per-minute")
	bindFlag("nats_url", "nats-url")
	bindFlag("nats_subject", "nats-subject")

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewAccountCommand())
	rootCmd.AddCommand(commands.NewResourcesCommand())
	rootCmd.AddCommand(commands.NewCallCommand())
}

func bindFlag(key, flag string) {
	err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	if err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

func initConfig() {
	// A missing .env file is fine
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.teamwork/config.yml
		viper.AddConfigPath(filepath.Join(home, ".teamwork"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// TEAMWORK_API_KEY, TEAMWORK_BASE_URL, TEAMWORK_DOMAIN, ...
	viper.SetEnvPrefix("TEAMWORK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	err = viper.ReadInConfig()
	if err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
