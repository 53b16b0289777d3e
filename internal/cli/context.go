package cli

import (
	"fmt"
	"os"

	"github.com/ticktock-project/ticktock/internal/ledger"
	"github.com/ticktock-project/ticktock/internal/report"
	"github.com/ticktock-project/ticktock/internal/secure"
	"github.com/ticktock-project/ticktock/internal/timer"
	"github.com/ticktock-project/ticktock/pkg/config"
	"github.com/ticktock-project/ticktock/pkg/model"
)

// App is the composed core a command operates on: resolver output behind
// the guard, the ledger store, the loaded ledger, and the timer engine.
type App struct {
	Guard  *secure.Guard
	Store  *ledger.Store
	Ledger *model.Ledger
	Engine *timer.Engine
}

// openApp wires resolver -> guard -> store -> engine for one command
// invocation, surfacing backup fallback and crash recovery as notices.
func openApp() (*App, error) {
	resolver, err := config.NewResolver(dataRoot())
	if err != nil {
		return nil, err
	}
	settings, err := resolver.Resolve(envHint)
	if err != nil {
		return nil, err
	}
	guard, err := secure.NewGuard(resolver, settings)
	if err != nil {
		return nil, err
	}

	store := ledger.NewStore(guard.Settings())
	res, err := store.Load()
	if err != nil {
		return nil, err
	}
	if res.FromBackup {
		fmt.Fprintf(os.Stderr, "warning: ledger file was unreadable; recovered from backup %s\n", res.BackupPath)
	}

	engine, recovery := timer.NewEngine(res.Ledger, store)
	if recovery != nil {
		fmt.Fprintf(os.Stderr, "notice: credited %s from a session on %s left active by a previous run\n",
			report.FormatDuration(recovery.Seconds), recovery.Target)
		if err := store.Save(res.Ledger); err != nil {
			return nil, err
		}
	}

	return &App{Guard: guard, Store: store, Ledger: res.Ledger, Engine: engine}, nil
}
