package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/shopspring/decimal"
)

// SessionView is the read side of session.Manager.
type SessionView interface {
	IsAuthenticated() bool
	Identity() (models.Identity, bool)
}

// CartOps is what the cart commands need from cart.Synchronizer.
type CartOps interface {
	FetchCart(ctx context.Context) error
	Snapshot() models.CartSnapshot
	TotalPrice() (decimal.Decimal, error)
	TotalItems() (int, error)
	AddItem(ctx context.Context, req models.AddToCartRequest) error
	UpdateQuantity(ctx context.Context, lineID string, quantity int) error
	RemoveItem(ctx context.Context, lineID string) error
	ClearCart(ctx context.Context) error
}

type Deps struct {
	Session SessionView
	Cart    CartOps
	Auth    services.AuthService
	Catalog services.CatalogService
	Orders  services.OrderService
	Admin   services.AdminService
	Logger  logging.Logger
	In      io.Reader
	Out     io.Writer
}

type App struct {
	session SessionView
	cart    CartOps
	auth    services.AuthService
	catalog services.CatalogService
	orders  services.OrderService
	admin   services.AdminService
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	mu       sync.Mutex
	location string
}

func NewApp(d Deps) *App {
	in, out := d.In, d.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	log := d.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &App{
		session:  d.Session,
		cart:     d.Cart,
		auth:     d.Auth,
		catalog:  d.Catalog,
		orders:   d.Orders,
		admin:    d.Admin,
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
		location: session.HomePath,
	}
}

// Location implements session.Navigator.
func (a *App) Location() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.location
}

// Navigate implements session.Navigator.
func (a *App) Navigate(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.location = path
}

// OnSessionEvent tells the user about logouts they did not ask for.
func (a *App) OnSessionEvent(_ context.Context, ev session.Event) {
	if ev.Kind != session.EventLogout {
		return
	}
	switch ev.Reason {
	case session.ReasonExpired:
		printlnFn("\nYour session has expired. Please log in again.")
	case session.ReasonUnauthorized:
		printlnFn("\nThe server rejected your session. Please log in again.")
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	id, ok := a.session.Identity()
	return ok && id.IsAdmin()
}

// Run starts the REPL and blocks until the user exits, the input ends, or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the storefront CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
