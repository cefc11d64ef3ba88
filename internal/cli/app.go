package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/config"
	"github.com/dmitrijs2005/authkeeper/internal/kv"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/session"
)

// App wires the storage backend, the session manager and the terminal
// together.
type App struct {
	config  *config.Config
	manager *session.Manager
	log     logging.Logger
	reader  *bufio.Reader
	closeFn func() error
}

// NewApp opens the configured storage backend and builds the session
// manager on top of it.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	var (
		store   kv.Store
		closeFn func() error
	)
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		s, err := kv.OpenSQLite(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		store, closeFn = s, s.Close
	case config.DriverPostgres:
		s, err := kv.OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres storage: %w", err)
		}
		store, closeFn = s, s.Close
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}

	m := session.NewManager(store, cfg, log)

	return &App{
		config:  cfg,
		manager: m,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		closeFn: closeFn,
	}, nil
}

// Run restores any persisted session and enters the REPL. It returns when
// the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.closeFn(); err != nil {
			a.log.Warn(ctx, "failed to close storage", "error", err)
		}
	}()

	a.manager.Restore(ctx)
	if u := a.manager.CurrentUser(); u != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", u.Name))
	}

	printlnFn("Welcome to AuthKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if u := a.manager.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	return a.manager.IsAuthenticated()
}
