package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/duowire/duochat-server/internal/app"
	"github.com/duowire/duochat-server/internal/config"
	"github.com/duowire/duochat-server/internal/log"
)

func main() {
	var (
		addr       string
		configPath string
		logLevel   string
	)

	root := &cobra.Command{
		Use:           "duochat-server",
		Short:         "Ephemeral 1:1 WebSocket chat server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			bootLogger := log.New(logLevel)

			cfg, path, err := config.Load(bootLogger, configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg.UpdateFrom(config.Config{Addr: addr, LogLevel: logLevel})

			logger := log.New(cfg.LogLevel)
			logger.Info().Str("config", path).Str("addr", cfg.Addr).Msg("starting duochat server")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application := app.New(&cfg, logger)
			if err := application.Run(ctx); err != nil {
				return fmt.Errorf("server exited: %w", err)
			}

			logger.Info().Msg("server stopped")
			return nil
		},
	}

	root.Flags().StringVar(&addr, "addr", "", "HTTP listen address (overrides config)")
	root.Flags().StringVar(&configPath, "config", "", "path to config file")
	root.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
