package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/nutrigym-backend/internal/app"
	"github.com/heartmarshall/nutrigym-backend/internal/config"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP bridge",
		Long: `Start the nutrigym HTTP bridge.

The journal is restored from the configured storage, the auth gatekeeper
resolves any saved session and the server listens until SIGINT or SIGTERM.

Example:
  nutrigym serve --config ./config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadPath(rootOpts.ConfigPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.Run(ctx, cfg); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}
}
