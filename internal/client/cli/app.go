package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/me22abd/campusconnect-client/internal/client/api"
	"github.com/me22abd/campusconnect-client/internal/client/config"
	"github.com/me22abd/campusconnect-client/internal/client/discover"
	"github.com/me22abd/campusconnect-client/internal/client/likes"
	"github.com/me22abd/campusconnect-client/internal/client/models"
	"github.com/me22abd/campusconnect-client/internal/client/session"
	"github.com/me22abd/campusconnect-client/internal/client/vault"
	"github.com/me22abd/campusconnect-client/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session store, gateway, discovery queue, like coordinator
// and chat threads behind an interactive terminal front end.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	api     api.Client
	session *session.Store
	queue   *discover.Queue
	coord   *likes.Coordinator
	inbox   *likes.Inbox

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	db, err := vault.Open(ctx, cfg.VaultPath)
	if err != nil {
		log.Error(ctx, "error initializing vault", "error", err)
		return nil, err
	}

	a := &App{
		config: cfg,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	apiClient := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout)
	v := vault.NewSQLiteRepository(db)

	a.api = apiClient
	a.session = session.New(apiClient, v, log)
	apiClient.OnUnauthorized(a.session.Invalidate)

	a.coord = likes.NewCoordinator(apiClient, func(m models.Match) {
		a.printMatchBanner(m)
	})
	a.queue = discover.NewQueue(apiClient, a.coord, a.session.User)
	a.inbox = likes.NewInbox(a.coord)

	return a, nil
}

// Run initializes the session from the vault and enters the REPL. It returns
// when the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	defer a.api.Close()

	a.session.Initialize(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	printlnFn("Welcome to CampusConnect (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Status() == session.StatusAuthenticated
}

func (a *App) getStatus() string {
	if user := a.session.User(); user != nil {
		return user.DisplayName()
	}
	return a.session.Status().String()
}

func (a *App) printMatchBanner(m models.Match) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "*** It's a match! ***")
	name := m.User.Name
	if name == "" {
		name = m.User.ID
	}
	fmt.Fprintf(a.out, "You and %s liked each other.\n\n", name)
}
