package cmd

import (
	"context"
	"fmt"

	"github.com/kasuboski/juststreamit/pkg/logger"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// genresCmd lists every genre of the catalog
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "list the catalog genres",
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

		genres, err := b.Genres(logger.WithCtx(context.Background(), log))
		if err != nil {
			log.Fatal("failed to list genres", zap.Error(err))
		}

		for _, g := range genres {
			fmt.Println(g)
		}
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
}
