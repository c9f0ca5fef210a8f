// Package cli is the terminal storefront: a small REPL over the session/cart
// state store and the API adapter.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hongminglow/shopfront/internal/client/api"
	"github.com/hongminglow/shopfront/internal/client/localstore"
	"github.com/hongminglow/shopfront/internal/client/store"
)

// App wires the API client, local persistence, and state store together and
// exposes the REPL commands.
type App struct {
	api    *api.Client
	store  *store.Store
	reader *bufio.Reader
	out    *os.File
}

// NewApp builds the application for the given server base URL and local
// state directory.
func NewApp(serverURL, stateDir string) (*App, error) {
	local, err := localstore.New(stateDir)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}

	apiClient := api.New(serverURL, local)
	st := store.New(apiClient, local)

	return &App{
		api:    apiClient,
		store:  st,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run loads the catalog once and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.store.LoadCatalog(ctx); err != nil {
		log.Printf("catalog unavailable, continuing without items")
	}
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) status() string {
	account, signedIn := a.store.Account()
	who := "guest"
	if signedIn && account.Email != "" {
		who = account.Email
	}
	return fmt.Sprintf("%s | cart:%d", who, a.store.Counter())
}

func (a *App) isSignedIn() bool {
	_, ok := a.store.Account()
	return ok
}
