package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/autofinance/internal/client/api"
	"github.com/dmitrijs2005/autofinance/internal/client/config"
	"github.com/dmitrijs2005/autofinance/internal/client/httpclient"
	"github.com/dmitrijs2005/autofinance/internal/client/models"
	"github.com/dmitrijs2005/autofinance/internal/client/session"
	"github.com/dmitrijs2005/autofinance/internal/client/storage"
	"github.com/dmitrijs2005/autofinance/internal/filex"
	"github.com/dmitrijs2005/autofinance/internal/logging"
)

// sessionStore is the session surface the views use.
type sessionStore interface {
	Session() models.Session
	Authenticated() bool
	Login(ctx context.Context, creds models.Credentials) error
	Register(ctx context.Context, reg models.Registration) (*models.Profile, error)
	Logout(ctx context.Context) error
}

// backend is the API surface beyond auth.
type backend interface {
	SubscriptionAPI
	Profile(ctx context.Context) (*models.Profile, error)
	Health(ctx context.Context) (*models.Health, error)
}

type App struct {
	config    *config.Config
	log       logging.Logger
	storage   storage.Storage
	session   sessionStore
	api       backend
	dashboard *Dashboard
	reader    *bufio.Reader
	out       io.Writer
	route     string
}

// NewApp builds the client from c: logger, session storage, HTTP client, API
// façade and the session store restored from storage.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	st, err := openStorage(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening session storage", "path", c.StoragePath, "error", err)
		return nil, err
	}

	hc := httpclient.New(c.ServerURL, log)
	backendAPI := api.New(hc)

	store, err := session.NewStore(ctx, st, backendAPI, log)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	hc.SetTokenSource(store)

	a := &App{
		config:    c,
		log:       log,
		storage:   st,
		session:   store,
		api:       backendAPI,
		dashboard: NewDashboard(backendAPI, log),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
	store.OnChange(a.onSessionChange)

	return a, nil
}

func openStorage(ctx context.Context, c *config.Config) (storage.Storage, error) {
	if c.Ephemeral {
		return storage.NewMemoryStorage(), nil
	}
	if _, err := filex.EnsureParentDir(c.StoragePath); err != nil {
		return nil, err
	}
	st, err := storage.Open(ctx, c.StoragePath)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// onSessionChange re-runs the route guard whenever the user logs in or out.
func (a *App) onSessionChange(s models.Session) {
	if !s.Authenticated() {
		a.dashboard.Reset()
	}
	a.route = Route(PathRoot, s.Authenticated())
}

// Run shows the view the route guard picks for the restored session, then
// reads commands from stdin until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.storage.Close(); err != nil {
			a.log.Error(ctx, "error closing session storage", "error", err)
		}
	}()

	printlnFn(fmt.Sprintf("Welcome to %s. Type \"help\" for commands.", brand))
	_ = a.navigate(ctx, Route(PathRoot, a.isLoggedIn()))

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

// status is the prompt line: the header followed by the current view.
func (a *App) status() string {
	return Header(a.session.Session()) + " " + a.route
}

// navigate opens the view for path.
func (a *App) navigate(ctx context.Context, path string) error {
	a.route = path
	switch path {
	case PathLogin:
		return a.Login(ctx)
	case PathRegister:
		return a.Register(ctx)
	default:
		return a.Dashboard(ctx)
	}
}
