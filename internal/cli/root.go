package cli

import (
	"fmt"
	"os"

	"github.com/bannerlab/appdemos/internal/branding"
	"github.com/bannerlab/appdemos/internal/config"
	"github.com/bannerlab/appdemos/internal/render"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` renders the web app install banner demo scenarios
(sites with related Play or iOS apps, valid and broken web apps) into static
pages, and serves them for local testing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		level := logLevel
		if level == "" {
			level = config.LogLevel()
		}
		return setupLogging(level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
}

// setupLogging points the global zerolog logger at stderr.
func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

// newRenderer builds a renderer using the configured site title.
func newRenderer() (*render.Renderer, error) {
	return render.New(render.WithTitle(config.SiteTitle()))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
