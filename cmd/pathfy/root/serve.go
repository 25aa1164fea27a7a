package root

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/httpapi"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/mcptools"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			metrics, err := httpapi.NewMetrics(nil)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}

			router := httpapi.NewRouter(httpapi.NewHandler(svc, metrics, a.log))
			return httpapi.Serve(ctx, ln, router, a.cfg.Server.ShutdownTimeout, a.log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: server.addr from config)")
	return cmd
}

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the catalog, evaluator and quiz tools over MCP stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Info("mcp server starting", "transport", "stdio")
			return server.ServeStdio(mcptools.NewServer(Version, a.evaluator()))
		},
	}
}
