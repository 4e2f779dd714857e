// Package root contains the root command and the state shared by all subcommands.
package root

import (
	"context"
	"fmt"

	"fjacquet/txn-analyzer/internal/analyzer"
	"fjacquet/txn-analyzer/internal/config"
	"fjacquet/txn-analyzer/internal/container"
	"fjacquet/txn-analyzer/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by every command.
type CommonFlags struct {
	Inputs     []string
	Appends    []string
	Format     string
	ConfigFile string
	Validate   bool
}

var (
	// Log is the shared logger for commands. It is replaced by the container's
	// logger once configuration has been loaded.
	Log logging.Logger = logging.NewLogrusAdapterFromLogger(logrus.StandardLogger())

	// AppContainer holds the wired application dependencies.
	AppContainer *container.Container

	// SharedFlags holds the values of the persistent flags.
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "txn-analyzer",
		Short: "Analyze financial transaction records from JSON, CSV, YAML or XLSX files.",
		Long: `txn-analyzer loads transaction records and answers aggregate and filtering
queries over them: totals, averages, per-type and per-merchant selections,
date windows and the busiest month.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(Log)

			cfg, err := config.InitializeConfigWithFile(SharedFlags.ConfigFile)
			if err != nil {
				return err
			}
			if SharedFlags.Format != "" {
				if !config.IsValidOutputFormat(SharedFlags.Format) {
					return fmt.Errorf("invalid output format: %s (must be 'text', 'json' or 'yaml')", SharedFlags.Format)
				}
				cfg.Output.Format = SharedFlags.Format
			}
			if SharedFlags.Validate {
				cfg.Input.Validate = true
			}

			c, err := container.NewContainer(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			AppContainer = c
			Log = c.GetLogger()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if AppContainer == nil {
				return nil
			}
			return AppContainer.Close()
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringArrayVarP(&SharedFlags.Inputs, "input", "i", nil, "Transaction file to analyze (repeatable, defaults to input.files)")
	Cmd.PersistentFlags().StringArrayVarP(&SharedFlags.Appends, "append", "a", nil, "Transaction file whose records are added after loading (repeatable)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: text, json or yaml (defaults to output.format)")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate every record before analysis")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches for config.yaml)")
}

// GetContainer returns the application container or an error if the root
// command has not run its setup.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return AppContainer, nil
}

// LoadAnalyzer builds an Analyzer from the --input and --append files.
func LoadAnalyzer(cmd *cobra.Command) (*analyzer.Analyzer, error) {
	c, err := GetContainer()
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return c.NewAnalyzer(ctx, SharedFlags.Inputs, SharedFlags.Appends)
}

// OutputFormat returns the format chosen by --format or the configuration.
func OutputFormat() string {
	if SharedFlags.Format != "" {
		return SharedFlags.Format
	}
	if AppContainer != nil {
		return AppContainer.GetConfig().Output.Format
	}
	return config.FormatText
}
