// Package cmd provides the CLI commands for FocusNest.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/xvierd/focusnest/internal/adapters/blobstore"
	gitdetect "github.com/xvierd/focusnest/internal/adapters/git"
	"github.com/xvierd/focusnest/internal/adapters/notification"
	"github.com/xvierd/focusnest/internal/adapters/tui"
	"github.com/xvierd/focusnest/internal/config"
	"github.com/xvierd/focusnest/internal/engine"
	"github.com/xvierd/focusnest/internal/ports"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Global flags
	dataDir    string
	jsonOutput bool

	// Global dependencies
	appConfig *config.Config
	blobs     ports.BlobStore
	eng       *engine.Engine
	logger    *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "focusnest",
	Short: "FocusNest - a pomodoro timer with task tracking",
	Long: `FocusNest is a pomodoro timer that tracks focus/break cycles,
attributes completed sessions to tasks, and keeps its full state
across restarts.

Run "focusnest" with no arguments to open the timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Path to the data directory (default: ~/.focusnest)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("FocusNest\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(resetDataCmd)
}

// initializeServices wires the engine and its collaborators.
func initializeServices() error {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var err error
	appConfig, err = config.Load()
	if err != nil {
		// A broken config file should not keep the timer from starting.
		logger.Warn("failed to load config, using defaults", "error", err)
		appConfig = config.DefaultConfig()
	}

	if dataDir != "" {
		appConfig.Storage.DataDir = dataDir
	}
	if err := os.MkdirAll(appConfig.Storage.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	blobs, err = blobstore.Open(config.GetDBPath(appConfig))
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	eng = engine.New(blobs,
		engine.WithNotifier(notification.New()),
		engine.WithLogger(logger),
		engine.WithAutoStartDelay(appConfig.AutoStartDelay()),
	)
	eng.Load()

	return nil
}

// cleanupServices releases the engine and storage.
func cleanupServices() error {
	if eng != nil {
		eng.Close()
	}
	if blobs != nil {
		return blobs.Close()
	}
	return nil
}

// runTimer opens the fullscreen timer, or prints the status when stdout is
// not a terminal.
func runTimer(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return printStatus(cmd, args)
	}

	var gitInfo *ports.GitInfo
	if wd, err := os.Getwd(); err == nil {
		// Best effort; most working directories are not repositories.
		gitInfo, _ = gitdetect.NewDetector().Detect(wd)
	}

	return tui.Run(eng, appConfig.Theme, gitInfo)
}
