package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gnoswap-labs/tour/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demonstration catalogue over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cfg, closeStore, err := loadEngine(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}
		return server.New(engine, logger).ListenAndServe(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides the project file)")
}
