package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/designqa/designqa/internal/adapters/inbound/httpapi"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the designqa HTTP service",
		Long: "Serve /api/analyze, /api/selection and /health over HTTP.\n" +
			"Settings come from DESIGNQA_* environment variables; flags take precedence.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, "info")
			if err != nil {
				return err
			}
			defer a.close()

			if addr == "" {
				addr = a.env.Addr
			}
			srv, err := httpapi.NewServer(httpapi.Config{
				Addr:           addr,
				Version:        version,
				AllowedOrigin:  a.env.AllowedOrigin,
				RequestTimeout: a.env.RequestTimeout,
				Service:        a.svc,
				Collector:      a.collector,
				Selection:      a.selection,
				Logger:         a.logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $DESIGNQA_HTTP_ADDR or :8080)")
	return cmd
}
