package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/kasuboski/juststreamit/pkg/browse"
	"github.com/kasuboski/juststreamit/pkg/logger"
	"github.com/kasuboski/juststreamit/pkg/render"
	"github.com/kasuboski/juststreamit/pkg/viewport"
	"github.com/kasuboski/juststreamit/pkg/visibility"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

var (
	browseWidth int
	browseGenre string
	browseWatch bool
	browseJSON  bool
)

// browseCmd prints the home page once, or again on every terminal resize with --watch
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "print the home page",
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
		ctx = logger.WithCtx(ctx, log)

		var vp viewport.Viewport = viewport.NewTerminal(cfg.Viewport.CellWidth)
		if browseWidth > 0 {
			vp = viewport.Fixed(browseWidth)
		}

		page := b.Home(ctx)
		if browseGenre != "" {
			genre, err := browse.ResolveGenre(browseGenre, page.Genres)
			if err != nil {
				log.Fatal("failed to select genre", zap.Error(err))
			}
			page.Selector = b.SelectGenre(ctx, genre)
		}

		board := visibility.NewBoard()
		snaps := page.Attach(board, vp.Width())

		if browseJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(map[string]any{"page": page, "visibility": snaps}); err != nil {
				log.Fatal("failed to encode page", zap.Error(err))
			}
			return
		}

		fmt.Println(render.Page(page, board))
		if !browseWatch || browseWidth > 0 {
			return
		}

		for width := range viewport.Watch(ctx, vp) {
			log.Debugw("viewport resized", "width", width)
			board.Resize(width)
			fmt.Print("\033[H\033[2J")
			fmt.Println(render.Page(page, board))
		}
	},
}

func init() {
	browseCmd.Flags().IntVar(&browseWidth, "width", 0, "viewport width in pixels, measured from the terminal when unset")
	browseCmd.Flags().StringVar(&browseGenre, "genre", "", "genre shown in the genre selector")
	browseCmd.Flags().BoolVar(&browseWatch, "watch", false, "redraw when the terminal is resized")
	browseCmd.Flags().BoolVar(&browseJSON, "json", false, "print the page as json")
	rootCmd.AddCommand(browseCmd)
}
