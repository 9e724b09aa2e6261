package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/denialscope-dev/denialscope/internal/config"
	"github.com/denialscope-dev/denialscope/internal/web"
)

func newServeCommand() *cobra.Command {
	var addr string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload and analysis web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			srv := web.NewServer(cfg)
			fmt.Printf("Serving denial analysis UI on %s\n", cfg.Server.Addr)
			return srv.Run()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "denialscope.yaml", "config file")

	return cmd
}
