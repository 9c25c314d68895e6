package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/dmitrijs2005/qradmin/internal/admin/client"
	"github.com/dmitrijs2005/qradmin/internal/admin/config"
	"github.com/dmitrijs2005/qradmin/internal/admin/listing"
	"github.com/dmitrijs2005/qradmin/internal/admin/models"
	"github.com/dmitrijs2005/qradmin/internal/logging"
)

// SessionService is the part of the session store the console drives.
type SessionService interface {
	Restore(ctx context.Context) error
	IsAuthenticated() bool
	Principal() (models.Principal, bool)
	SignedInAt() (time.Time, bool)
	ExpiresAt() (time.Time, bool)
	Login(ctx context.Context, email string, password []byte) (models.Principal, error)
	Logout(ctx context.Context) error
}

// StatsService serves the read-only aggregate views.
type StatsService interface {
	DashboardStats(ctx context.Context) (models.DashboardStats, error)
	Analytics(ctx context.Context, r models.DateRange) (models.SystemAnalytics, error)
	QRCodeDetails(ctx context.Context, id string) (models.QRCodeDetails, error)
}

type App struct {
	config  *config.Config
	session SessionService
	stats   StatsService
	logger  logging.Logger

	screens map[string]screen
	route   string
	dates   models.DateRange

	reader *bufio.Reader
	out    io.Writer
	rnd    *rand.Rand
}

// NewApp builds the console over a configured API client.
func NewApp(cfg *config.Config, sess SessionService, api *client.HTTPClient, logger logging.Logger) *App {
	a := &App{
		config:  cfg,
		session: sess,
		stats:   api,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		rnd:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	users := api.Users()
	qrCodes := api.QRCodes()
	pages := api.LandingPages()

	a.screens = map[string]screen{
		RouteUsers:        newUserScreen(a, listing.New[models.User, models.UserPatch](users, cfg.PageSize, users.Resource().Filters, logger)),
		RouteQRCodes:      newQRCodeScreen(a, listing.New[models.QRCode, models.QRCodePatch](qrCodes, cfg.PageSize, qrCodes.Resource().Filters, logger)),
		RouteLandingPages: newLandingPageScreen(a, listing.New[models.LandingPage, models.LandingPagePatch](pages, cfg.PageSize, pages.Resource().Filters, logger), pages),
	}
	return a
}

// Run restores the previous session, shows the first route and blocks in
// the REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.logger.Error(ctx, "session restore failed", "error", err)
	}

	a.println("Welcome to qradmin (type 'help' for commands)")
	_ = a.Navigate(ctx, RouteDashboard)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// currentRoute re-resolves the route so a session lost in the background
// lands on /login.
func (a *App) currentRoute() string {
	a.route = resolveRoute(a.route, a.isLoggedIn())
	return a.route
}

func (a *App) getStatus() string {
	route := a.currentRoute()
	if p, ok := a.session.Principal(); ok {
		return fmt.Sprintf("(%s) %s", p.Email, route)
	}
	return route
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// currentScreen returns the list screen for the current route, or nil.
func (a *App) currentScreen() screen {
	return a.screens[a.currentRoute()]
}
