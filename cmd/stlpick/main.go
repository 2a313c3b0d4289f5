package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/stlpick/internal/app"
	"github.com/philipparndt/stlpick/internal/config"
	"github.com/philipparndt/stlpick/internal/logger"
	"github.com/philipparndt/stlpick/pkg/loader"
	"github.com/philipparndt/stlpick/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
	logFile    string
	noWatch    bool
)

var rootCmd = &cobra.Command{
	Use:   "stlpick [file]",
	Short: "Interactive STL and 3MF viewer with model and face picking",
	Long: `stlpick opens STL and 3MF files in a 3D viewport. Select the whole model
or a single face by clicking it; the loaded file is reloaded when it changes.

Supported files:
` + filterHelp(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.GetFullVersion(),
	RunE:          runViewer,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "also write logs to this file")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the file when it changes")
}

func filterHelp() string {
	var sb strings.Builder
	for _, g := range loader.FilterGroups {
		fmt.Fprintf(&sb, "  %-10s %s\n", g.Name, strings.Join(g.Extensions, ", "))
	}
	return sb.String()
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags override the config file
	if debug {
		cfg.Logging.Level = "debug"
	}
	if logFile != "" {
		cfg.Logging.LogFile = logFile
	}
	if noWatch {
		cfg.Watch.Enabled = false
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Sugar.Infow("starting", "version", version.GetVersion())

	opts := app.Options{Config: cfg}
	if len(args) == 1 {
		opts.File = args[0]
	}
	return app.Run(opts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
