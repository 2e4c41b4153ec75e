package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anhle/countdown/internal/app"
	"github.com/anhle/countdown/internal/model"
	"github.com/anhle/countdown/internal/reminder"
	"github.com/anhle/countdown/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "countdown: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		return err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = model.DefaultDBPath()
	}

	kv, err := store.NewSQLiteKV(dbPath)
	if err != nil {
		return fmt.Errorf("opening event database: %w", err)
	}
	defer kv.Close()

	events := store.NewEventStore(kv)

	var notifier reminder.Notifier = reminder.NewDesktopNotifier(cfg.Notify.Command)
	if !cfg.Notify.Enabled {
		notifier = reminder.Disabled{}
	}
	scheduler := reminder.NewScheduler(notifier)

	p := tea.NewProgram(
		app.New(events, scheduler, cfg.Display.TickInterval()),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
