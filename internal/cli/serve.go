package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bannerlab/appdemos/internal/config"
	"github.com/bannerlab/appdemos/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo scenarios over HTTP",
	Long:  `Start a local preview server. Each scenario is available at /<id>/.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = config.ListenAddr()
		}

		r, err := newRenderer()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(r, addr).Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}
