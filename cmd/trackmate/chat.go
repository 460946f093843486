package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sandevgo/trackmate/pkg/log"
	"github.com/sandevgo/trackmate/pkg/srv"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with Trackmate in the terminal",
	Long:  `Starts an interactive terminal session, regardless of which transports are enabled in the configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		// Force the terminal transport for this run
		os.Setenv("ENABLE_CLI", "true")
		os.Setenv("ENABLE_TELEGRAM", "false")

		services := NewServices(ctx)

		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)
		log.FromCtx(ctx).Info().Msg("chat session ended")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
