// Package commands provides the CLI commands for modekit.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modekit/modekit/internal/config"
	"github.com/modekit/modekit/internal/logging"
	"github.com/modekit/modekit/internal/mode"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	logLevel   string
	prettyLogs bool
	workDirVal string
)

var rootCmd = &cobra.Command{
	Use:   "modekit",
	Short: "modekit - operating-mode registry for coding agents",
	Long: `modekit manages the operating modes an AI coding agent may select:
named behavior profiles with a fixed capability set and an instruction body.

Modes come from built-ins, the global config directory, and the project's
.modekit directory. Run 'modekit list' to see them or 'modekit serve' to
expose the registry over HTTP.`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand, show help
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Log level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().BoolVar(&prettyLogs, "pretty-logs", false, "Human-readable log output")
	rootCmd.PersistentFlags().StringVarP(&workDirVal, "directory", "C", "", "Project directory (defaults to the current directory)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("modekit %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetWorkDir returns the working directory from flag or current directory.
func GetWorkDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	return os.Getwd()
}

// setup loads the tool config, initializes logging from flags plus config,
// and loads the registry for the working directory.
func setup() (*mode.Registry, []mode.Issue, *config.Config, string, error) {
	workDir, err := GetWorkDir(workDirVal)
	if err != nil {
		return nil, nil, nil, "", err
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return nil, nil, nil, "", err
	}

	level := logLevel
	if cfg.Log.Level != "" && !rootCmd.PersistentFlags().Changed("log-level") {
		level = cfg.Log.Level
	}
	logging.Init(logging.Config{
		Level:  logging.ParseLevel(level),
		Pretty: prettyLogs || cfg.Log.Pretty,
	})

	loader := mode.NewLoader(config.GlobalModesDir(), config.ProjectModesDir(workDir))
	registry, issues := loader.Load()

	return registry, issues, cfg, workDir, nil
}
