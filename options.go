package main

import (
	"context"

	"github.com/procargo/backoffice/config"
	"github.com/procargo/backoffice/pkg/logger"
	"github.com/spf13/cobra"
)

// CommandLineOptions contains the flags shared by every command.
type CommandLineOptions struct {
	ConfigName string
	ConfigDir  string
	EnvFile    string
}

// BindCommandLineOptions registers the shared flags on the root command.
func BindCommandLineOptions(cmd *cobra.Command, options *CommandLineOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&options.ConfigName, "config-name", "backoffice_config", "Config file name without extension")
	flags.StringVar(&options.ConfigDir, "config-dir", config.GetAbsPath("config"), "Directory holding the config file")
	flags.StringVar(&options.EnvFile, "env-file", ".env", "Optional dotenv file loaded before the config")
}

// PrintCommandLineOptions logs the effective options.
func PrintCommandLineOptions(ctx context.Context, options CommandLineOptions) {
	logger.Logger(ctx).Info().
		Str("config_name", options.ConfigName).
		Str("config_dir", options.ConfigDir).
		Str("env_file", options.EnvFile).
		Msg("configuration")
}
