package cmd

import (
	"context"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kasuboski/juststreamit/pkg/logger"
	"github.com/kasuboski/juststreamit/pkg/tui"
	"github.com/kasuboski/juststreamit/pkg/visibility"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// tuiCmd browses the home page interactively
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "browse the home page interactively",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}

		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
		l := logger.Get()

		b, err := newBrowser(cfg)
		if err != nil {
			l.Fatal("failed to create catalog client", zap.Error(err))
		}

		ctx := logger.WithCtx(context.Background(), l)
		m := tui.New(ctx, b, visibility.NewBoard(), cfg.Viewport.CellWidth)
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
			l.Error("tui exited", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
