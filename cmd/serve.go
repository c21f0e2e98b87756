package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/kasuboski/juststreamit/pkg/logger"
	"github.com/kasuboski/juststreamit/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the home page as json",
	Long:  `serve the home page sections, genres and movie details as a json api`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := loadConfig()
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		b, err := newBrowser(cfg)
		if err != nil {
			log.Fatal("failed to create catalog client", zap.Error(err))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		srv := server.New(log, b)
		if err := srv.Serve(ctx, cfg.Server.Port); err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
