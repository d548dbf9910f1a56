package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nell/careintake/internal/config"
	"github.com/nell/careintake/internal/database"
	"github.com/nell/careintake/internal/database/repository"
	"github.com/nell/careintake/internal/form"
	"github.com/nell/careintake/internal/service"
	"github.com/nell/careintake/internal/tui"
)

func main() {
	validate := flag.Bool("validate", false, "run a headless end-to-end check and exit")
	flag.Parse()

	if *validate {
		if err := runValidation(); err != nil {
			log.Fatalf("validate: %v", err)
		}
		fmt.Println("ok")
		return
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	handlers := []form.SubmitHandler{&service.LogSubmitter{}}

	// An empty database path disables persistence; submissions still reach
	// the log handler.
	if cfg.Database.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			log.Fatalf("mkdir db dir: %v", err)
		}
		db, err := database.Open(cfg.Database.Path)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer db.Close()
		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		handlers = append(handlers, &service.StoreSubmitter{
			Submissions: repository.NewSubmissionRepo(db),
		})
	}

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(tui.New(ctx, cfg, &service.MultiSubmitter{Handlers: handlers}), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
