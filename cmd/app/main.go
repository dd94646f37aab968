package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"questa/internal/config"
	"questa/internal/database"
	"questa/internal/habit"
	"questa/internal/models"
	"questa/internal/progression"
	"questa/internal/session"
	"questa/internal/store"
	"questa/internal/tui"
	"questa/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "questa needs an interactive terminal.")
		os.Exit(1)
	}

	ctx := context.Background()

	dataDir := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataDir, 0o755)
	dbPath := filepath.Join(dataDir, config.DBFileName)

	db, err := database.Open(ctx, dbPath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	queue := store.NewQueue(config.WriteQueueDepth)
	app, err := buildApp(ctx, db, queue)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewDashboardModel(ctx, app)
	p := tea.NewProgram(model, tea.WithMouseCellMotion())
	_, runErr := p.Run()

	// Drain pending writes before the database closes.
	queue.Close()

	if runErr != nil {
		fmt.Printf("Alas, there's been an error: %v\n", runErr)
		os.Exit(1)
	}
}

// buildApp wires the engine: loads persisted state, rebuilds the live timer
// from its snapshot, and routes all writes through the queue.
func buildApp(ctx context.Context, db *database.Database, queue *store.Queue) (tui.App, error) {
	now := time.Now()

	queue.Enqueue(func(ctx context.Context) {
		util.LogError("prune expired boosts", db.PruneExpiredBoosts(ctx, now))
	})

	active, err := db.ActiveBoosts(ctx, now)
	if err != nil {
		return tui.App{}, fmt.Errorf("load boosts: %w", err)
	}
	boosts := progression.NewRegistry(active, func(b models.Boost) {
		queue.Enqueue(func(ctx context.Context) {
			_, err := db.InsertBoost(ctx, b)
			util.LogError("persist boost", err)
		})
	})

	prog, err := db.LoadProgression(ctx)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return tui.App{}, fmt.Errorf("load progression: %w", err)
	}

	feed := &progression.Feed{}
	ledger := progression.NewLedger(prog, boosts, feed, func(p models.Progression) {
		queue.Enqueue(func(ctx context.Context) {
			util.LogError("persist progression", db.SaveProgression(ctx, p))
		})
	})

	svc := session.NewService(db, queue, ledger)
	snap, err := db.LoadTimerSnapshot(ctx)
	switch {
	case err == nil:
		svc.Timer.Reconcile(snap, now)
	case errors.Is(err, database.ErrNotFound):
		// First run, fresh timer.
	default:
		return tui.App{}, fmt.Errorf("load timer snapshot: %w", err)
	}

	return tui.App{
		Repo:    db,
		Queue:   queue,
		Ledger:  ledger,
		Boosts:  boosts,
		Session: svc,
		Habits:  habit.NewService(db, ledger),
		Feed:    feed,
	}, nil
}
