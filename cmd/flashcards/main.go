package main

import (
	"log"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"flashcards/pkg/config"
	"flashcards/pkg/core"
	"flashcards/pkg/logger"
	"flashcards/pkg/menu"
	"flashcards/pkg/meta"
	"flashcards/pkg/sheet"
	"flashcards/pkg/transcript"
)

func main() {
	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer logger.Sync()

	console := transcript.New(os.Stdin, os.Stdout)
	core := core.New(console, meta.New(fs), logger, core.WithExportPath(cfg.ExportPath))
	if cfg.ImportPath != "" {
		core.Load(cfg.ImportPath)
	}

	if err := menu.New(console, core).Run(); err != nil {
		logger.Error("menu stopped", zap.Error(err))
		log.Fatalf("run menu: %v", err)
	}

	if cfg.SheetPath != "" {
		if err := sheet.Write(fs, cfg.SheetPath, core.Cards()); err != nil {
			log.Fatalf("write study sheet: %v", err)
		}
		logger.Info("study sheet written", zap.String("path", cfg.SheetPath))
	}
}
