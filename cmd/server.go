package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"AirFM/config"
	"AirFM/logger"
	"AirFM/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the audio streaming server",
	Long:  `Start the HTTP server delivering the audio library with seek support and a derived track catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func runServer() {
	cfg := config.Load()

	logger.Init(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})

	s, err := server.New(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize server", logger.ErrorField(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx); err != nil {
		logger.Fatal("Server terminated", logger.ErrorField(err))
	}
}
