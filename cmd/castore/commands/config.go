package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/castore/internal/constants"
)

// Config represents the CLI configuration file.
type Config struct {
	Base         string `json:"base,omitempty"          yaml:"base,omitempty"`
	Origin       string `json:"origin,omitempty"        yaml:"origin,omitempty"`
	Token        string `json:"token,omitempty"         yaml:"token,omitempty"`
	UserAgent    string `json:"user_agent,omitempty"    yaml:"user_agent,omitempty"`
	Output       string `json:"output,omitempty"        yaml:"output,omitempty"`
	Verbose      bool   `json:"verbose,omitempty"       yaml:"verbose,omitempty"`
	Validate     bool   `json:"validate,omitempty"      yaml:"validate,omitempty"`
	NATSURL      string `json:"nats_url,omitempty"      yaml:"nats_url,omitempty"`
	RelaySubject string `json:"relay_subject,omitempty" yaml:"relay_subject,omitempty"`
}

// configKeys lists the settable keys in display order.
var configKeys = []string{
	"base",
	"origin",
	"token",
	"user_agent",
	"output",
	"verbose",
	"validate",
	"nats_url",
	"relay_subject",
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the castore CLI configuration",
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
		Long:  "Display the resolved CLI configuration with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.OutOrStdout(), loadConfig(), OutputFormat())
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY [VALUE]",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save it to the config file.

Valid keys: base, origin, token, user_agent, output, verbose, validate,
nats_url, relay_subject. When the key is token and no value is given the
token is read from the terminal without echo.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			var value string

			switch {
			case len(args) == 2:
				value = args[1]
			case key == "token" && term.IsTerminal(int(syscall.Stdin)):
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Token: ")

				tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
				_, _ = fmt.Fprintln(cmd.ErrOrStderr())

				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				value = string(tokenBytes)
			default:
				return fmt.Errorf("%w: %s needs a value", constants.ErrMissingConfigValue, key)
			}

			config := loadConfig()

			err := setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			path, err := configFilePath()
			if err != nil {
				return err
			}

			err = saveConfig(path, config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", key, path)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			config := loadConfig()

			err := unsetConfigValue(config, key)
			if err != nil {
				return err
			}

			path, err := configFilePath()
			if err != nil {
				return err
			}

			err = saveConfig(path, config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s in %s\n", key, path)

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		Base:         viper.GetString("base"),
		Origin:       viper.GetString("origin"),
		Token:        viper.GetString("token"),
		UserAgent:    viper.GetString("user_agent"),
		Output:       viper.GetString("output"),
		Verbose:      viper.GetBool("verbose"),
		Validate:     viper.GetBool("validate"),
		NATSURL:      viper.GetString("nats_url"),
		RelaySubject: viper.GetString("relay_subject"),
	}
}

// configFilePath returns the file in use, or $HOME/.castore/config.yml.
func configFilePath() (string, error) {
	if file := viper.ConfigFileUsed(); file != "" {
		return file, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+".yml"), nil
}

func saveConfig(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "base":
		config.Base = value
	case "origin":
		config.Origin = value
	case "token":
		config.Token = value
	case "user_agent":
		config.UserAgent = value
	case "output":
		if !slices.Contains([]string{OutputFormatJSON, OutputFormatYAML, OutputFormatTable}, value) {
			return fmt.Errorf("%w: %s", ErrUnknownOutput, value)
		}

		config.Output = value
	case "verbose", "validate":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		if key == "verbose" {
			config.Verbose = enabled
		} else {
			config.Validate = enabled
		}
	case "nats_url":
		config.NATSURL = value
	case "relay_subject":
		config.RelaySubject = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	if !slices.Contains(configKeys, key) {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	switch key {
	case "verbose":
		config.Verbose = false
	case "validate":
		config.Validate = false
	case "output":
		config.Output = ""
	default:
		return setConfigValue(config, key, "")
	}

	return nil
}

func showConfig(w io.Writer, config *Config, format string) error {
	masked := *config
	if masked.Token != "" {
		masked.Token = Masked
	}

	switch format {
	case OutputFormatJSON:
		return writeJSON(w, masked)
	case OutputFormatYAML:
		return writeYAML(w, masked)
	default:
		return displayConfigTable(w, &masked)
	}
}

func displayConfigTable(w io.Writer, config *Config) error {
	values := map[string]string{
		"base":          config.Base,
		"origin":        config.Origin,
		"token":         config.Token,
		"user_agent":    config.UserAgent,
		"output":        config.Output,
		"verbose":       strconv.FormatBool(config.Verbose),
		"validate":      strconv.FormatBool(config.Validate),
		"nats_url":      config.NATSURL,
		"relay_subject": config.RelaySubject,
	}

	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	for _, key := range configKeys {
		value := values[key]
		if value == "" {
			value = NotAvailable
		}

		_ = table.Append(key, value)
	}

	return renderTable(table)
}
