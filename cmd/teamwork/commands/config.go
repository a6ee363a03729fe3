package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

const configDirName = ".teamwork"

// Config represents the CLI configuration file.
type Config struct {
	APIKey            string `json:"api_key,omitempty"             yaml:"api_key,omitempty"`
	BaseURL           string `json:"base_url,omitempty"            yaml:"base_url,omitempty"`
	Domain            string `json:"domain,omitempty"              yaml:"domain,omitempty"`
	Output            string `json:"output,omitempty"              yaml:"output,omitempty"`
	RequestsPerMinute int    `json:"requests_per_minute,omitempty" yaml:"requests_per_minute,omitempty"`
	NATSURL           string `json:"nats_url,omitempty"            yaml:"nats_url,omitempty"`
	NATSSubject       string `json:"nats_subject,omitempty"        yaml:"nats_subject,omitempty"`
}

// Masked returns a copy safe to print.
func (c Config) Masked() Config {
	if c.APIKey != "" {
		c.APIKey = teamwork.MaskAPIKey(c.APIKey)
	}

	return c
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Teamwork CLI configuration stored in ~/.teamwork/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with the API key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderConfig(cmd.OutOrStdout(), loadConfig().Masked(), outputFormat())
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeys(), ", "),
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return err
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value. Keys: " + strings.Join(configKeys(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return err
		},
	}
}

func loadConfig() *Config {
	return &Config{
		APIKey:            viper.GetString("api_key"),
		BaseURL:           viper.GetString("base_url"),
		Domain:            viper.GetString("domain"),
		Output:            viper.GetString("output"),
		RequestsPerMinute: viper.GetInt("requests_per_minute"),
		NATSURL:           viper.GetString("nats_url"),
		NATSSubject:       viper.GetString("nats_subject"),
	}
}

// configHandlers set one key; an empty value clears it.
func configHandlers() map[string]func(*Config, string) error {
	return map[string]func(*Config, string) error{
		"api_key":  func(c *Config, v string) error { c.APIKey = v; return nil },
		"base_url": func(c *Config, v string) error { c.BaseURL = v; return nil },
		"domain":   func(c *Config, v string) error { c.Domain = v; return nil },
		"output":   func(c *Config, v string) error { c.Output = v; return nil },
		"requests_per_minute": func(c *Config, v string) error {
			if v == "" {
				c.RequestsPerMinute = 0

				return nil
			}

			limit, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid requests_per_minute %q: %w", v, err)
			}

			c.RequestsPerMinute = limit

			return nil
		},
		"nats_url":     func(c *Config, v string) error { c.NATSURL = v; return nil },
		"nats_subject": func(c *Config, v string) error { c.NATSSubject = v; return nil },
	}
}

func configKeys() []string {
	handlers := configHandlers()

	keys := make([]string, 0, len(handlers))
	for key := range handlers {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func setConfigValue(config *Config, key, value string) error {
	handler, ok := configHandlers()[key]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return handler(config, value)
}

// configFilePath returns the file in use, or ~/.teamwork/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName, "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	return writeConfigFile(configFile, config)
}

func writeConfigFile(configFile string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func renderConfig(out io.Writer, config Config, format string) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(config)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)

		return encoder.Encode(config)
	default:
		table := tablewriter.NewWriter(out)
		table.Header("Property", "Value")

		_ = table.Append("API Key", valueOrNA(config.APIKey))
		_ = table.Append("Base URL", valueOrNA(config.BaseURL))
		_ = table.Append("Domain", valueOrNA(config.Domain))
		_ = table.Append("Output", valueOrNA(config.Output))
		_ = table.Append("Requests Per Minute", strconv.Itoa(config.RequestsPerMinute))
		_ = table.Append("NATS URL", valueOrNA(config.NATSURL))
		_ = table.Append("NATS Subject", valueOrNA(config.NATSSubject))

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
