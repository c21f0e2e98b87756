package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kasuboski/juststreamit/pkg/logger"
	"github.com/kasuboski/juststreamit/pkg/render"
	"github.com/kasuboski/juststreamit/pkg/viewport"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// movieCmd prints the detail card of one title
var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "show the details of a movie",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		id, err := strconv.Atoi(args[0])
		if err != nil || id < 1 {
			log.Fatal("movie id must be a positive integer", zap.String("id", args[0]))
		}

		cfg, err := loadConfig()
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		b, err := newBrowser(cfg)
		if err != nil {
			log.Fatal("failed to create catalog client", zap.Error(err))
		}

		movie, err := b.Title(logger.WithCtx(context.Background(), log), id)
		if err != nil {
			log.Fatal("failed to get movie", zap.Int("id", id), zap.Error(err))
		}

		cols := viewport.NewTerminal(cfg.Viewport.CellWidth).Width() / cfg.Viewport.CellWidth
		fmt.Println(render.Modal(movie, cols))
	},
}

func init() {
	rootCmd.AddCommand(movieCmd)
}
