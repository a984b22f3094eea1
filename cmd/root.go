package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkce-it/timetabler/config"
	"github.com/mkce-it/timetabler/internal/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "timetabler",
	Short:         "Section timetable generation engine",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}
