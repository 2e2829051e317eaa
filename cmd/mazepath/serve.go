package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/mazepath/server"
	"github.com/katalvlaran/mazepath/solver"
)

type serveFlags struct {
	addr        string
	traceStdout bool
}

func newServeCmd(a *app) *cobra.Command {
	f := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cmd, a, f)
		},
	}
	cmd.Flags().StringVar(&f.addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&f.traceStdout, "trace-stdout", false, "export spans to stderr")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, a *app, f *serveFlags) error {
	cfg := a.cfg
	if f.addr != "" {
		cfg.Server.Addr = f.addr
	}

	if f.traceStdout {
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(cmd.ErrOrStderr()),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return fmt.Errorf("create exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		otel.SetTracerProvider(tp)
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				a.logger.Error("failed to shutdown tracer provider", "error", err)
			}
		}()
	}

	s, err := solver.New(cfg, a.logger)
	if err != nil {
		return err
	}

	return server.New(s, a.logger, cfg.Server).Run(ctx)
}
