package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"userdeck/cmd/userdeck/browser"
	"userdeck/cmd/userdeck/ui"
	"userdeck/internal/config"
	"userdeck/internal/logging"
	"userdeck/internal/randomuser"
)

var (
	// Global flags
	verbose    bool
	configPath string
	endpoint   string
	logFile    string

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "userdeck",
	Short: "Browse randomly generated user profiles",
	Long: `userdeck fetches random user profiles from randomuser.me (or any
compatible endpoint) and shows them as a list of cards you can email, call
or remove.

Run without arguments to start the interactive browser. Diagnostics are
written to the log file (logging.file, default userdeck.log) because the
browser owns the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		// The browser draws on the terminal; everything else may log to stderr.
		interactive := !cmd.HasParent()
		logger, err = logging.New(cfg.Logging, logging.Options{
			Verbose: verbose,
			Stderr:  !interactive && logFile == "",
		})
		if err != nil {
			return err
		}

		logging.Get(logger, logging.CategoryBoot).Debug("configuration resolved",
			zap.String("config", resolvedConfigPath()),
			zap.String("endpoint", cfg.Endpoint.BaseURL),
			zap.Duration("timeout", cfg.GetRequestTimeout()),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runBrowser,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: <user config dir>/userdeck/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Profile endpoint base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (overrides config)")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, applies environment and flag overrides,
// and validates the result.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, err
	}
	if endpoint != "" {
		c.Endpoint.BaseURL = endpoint
	}
	if logFile != "" {
		c.Logging.File = logFile
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return defaultConfigPath()
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "userdeck.yaml"
	}
	return filepath.Join(dir, "userdeck", "config.yaml")
}

// commandContext returns the command's context, or Background for commands
// built outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newClient() *randomuser.Client {
	return randomuser.NewClient(cfg.Endpoint.BaseURL,
		randomuser.WithTimeout(cfg.GetRequestTimeout()),
		randomuser.WithUserAgent(cfg.Endpoint.UserAgent),
		randomuser.WithLogger(logging.Get(logger, logging.CategoryFetch)),
	)
}

// runBrowser starts the interactive profile browser.
func runBrowser(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := newClient()
	defer client.Close()

	model := browser.New(browser.Options{
		Fetcher:      client,
		Logger:       logger,
		Styles:       ui.NewStyles(ui.ThemeFromName(cfg.UI.Theme)),
		Context:      ctx,
		MaxCardWidth: cfg.UI.MaxCardWidth,
		ShowAvatar:   cfg.UI.ShowAvatarURL,
	})
	defer model.Close()

	logging.Get(logger, logging.CategoryUI).Info("browser started", zap.String("endpoint", client.BaseURL()))

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			// Interrupted by a signal.
			return nil
		}
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
