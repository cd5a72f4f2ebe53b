package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/shopspring/decimal"
)

type fakeSession struct {
	id *models.Identity
}

func (f *fakeSession) IsAuthenticated() bool { return f.id != nil }
func (f *fakeSession) Identity() (models.Identity, bool) {
	if f.id == nil {
		return models.Identity{}, false
	}
	return *f.id, true
}

type fakeCart struct {
	snap     models.CartSnapshot
	fetchErr error
	err      error

	fetched    int
	cleared    int
	lastAdd    models.AddToCartRequest
	lastLine   string
	lastQty    int
	addCalls   int
	qtyCalls   int
	removeCall int
}

func (f *fakeCart) FetchCart(context.Context) error {
	f.fetched++
	return f.fetchErr
}
func (f *fakeCart) Snapshot() models.CartSnapshot        { return f.snap.Clone() }
func (f *fakeCart) TotalPrice() (decimal.Decimal, error) { return f.snap.TotalPrice() }
func (f *fakeCart) TotalItems() (int, error)             { return f.snap.TotalItems() }
func (f *fakeCart) AddItem(_ context.Context, req models.AddToCartRequest) error {
	f.addCalls++
	f.lastAdd = req
	return f.err
}
func (f *fakeCart) UpdateQuantity(_ context.Context, lineID string, qty int) error {
	f.qtyCalls++
	f.lastLine, f.lastQty = lineID, qty
	return f.err
}
func (f *fakeCart) RemoveItem(_ context.Context, lineID string) error {
	f.removeCall++
	f.lastLine = lineID
	return f.err
}
func (f *fakeCart) ClearCart(context.Context) error {
	f.cleared++
	return f.err
}

type fakeAuth struct {
	signInUser string
	signInPass string
	signInID   models.Identity
	signInErr  error

	signUpReq   *models.SignUpRequest
	signUpErr   error
	emailExists bool
	checked     string

	signedOut bool
}

func (f *fakeAuth) SignIn(_ context.Context, username, password string) (models.Identity, error) {
	f.signInUser, f.signInPass = username, password
	return f.signInID, f.signInErr
}
func (f *fakeAuth) SignUp(_ context.Context, req models.SignUpRequest) error {
	f.signUpReq = &req
	return f.signUpErr
}
func (f *fakeAuth) CheckEmail(_ context.Context, email string) (bool, error) {
	f.checked = email
	return f.emailExists, nil
}
func (f *fakeAuth) SignOut(context.Context) error {
	f.signedOut = true
	return nil
}

type fakeCatalog struct {
	lastCategory string
	lastPage     int
	page         *models.ProductPage
	err          error
}

func (f *fakeCatalog) ListProducts(_ context.Context, category string, page int) (*models.ProductPage, error) {
	f.lastCategory, f.lastPage = category, page
	return f.page, f.err
}

type fakeOrders struct {
	lastReq   *services.CheckoutRequest
	placed    *models.Order
	list      []models.Order
	lastID    string
	cancelled string
	err       error
}

func (f *fakeOrders) PlaceOrder(_ context.Context, req services.CheckoutRequest) (*models.Order, error) {
	f.lastReq = &req
	return f.placed, f.err
}
func (f *fakeOrders) ListOrders(context.Context) ([]models.Order, error) { return f.list, f.err }
func (f *fakeOrders) GetOrder(_ context.Context, id string) (*models.Order, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return &models.Order{ID: id, Status: models.OrderPending}, nil
}
func (f *fakeOrders) CancelOrder(_ context.Context, id string) error {
	f.cancelled = id
	return f.err
}

type fakeAdmin struct {
	calls      []string
	lastID     string
	lastActive bool
	lastStatus string
	saved      *models.Product
	accounts   []models.Account
	err        error
}

func (f *fakeAdmin) ListAccounts(context.Context) ([]models.Account, error) {
	f.calls = append(f.calls, "accounts")
	return f.accounts, f.err
}
func (f *fakeAdmin) SetAccountActive(_ context.Context, id string, active bool) error {
	f.calls = append(f.calls, "active")
	f.lastID, f.lastActive = id, active
	return f.err
}
func (f *fakeAdmin) DeleteAccount(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete-account")
	f.lastID = id
	return f.err
}
func (f *fakeAdmin) ListOrders(context.Context) ([]models.Order, error) {
	f.calls = append(f.calls, "orders")
	return nil, f.err
}
func (f *fakeAdmin) SetOrderStatus(_ context.Context, id, status string) error {
	f.calls = append(f.calls, "status")
	f.lastID, f.lastStatus = id, status
	return f.err
}
func (f *fakeAdmin) ListProducts(context.Context) ([]models.Product, error) {
	f.calls = append(f.calls, "products")
	return nil, f.err
}
func (f *fakeAdmin) SaveProduct(_ context.Context, p models.Product) error {
	f.calls = append(f.calls, "save-product")
	f.saved = &p
	return f.err
}
func (f *fakeAdmin) DeleteProduct(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete-product")
	f.lastID = id
	return f.err
}

type testApp struct {
	*App
	sess    *fakeSession
	cart    *fakeCart
	auth    *fakeAuth
	catalog *fakeCatalog
	orders  *fakeOrders
	admin   *fakeAdmin
	out     *bytes.Buffer
}

// newTestApp builds an App fed by input, one answer per line.
func newTestApp(t *testing.T, input ...string) *testApp {
	t.Helper()
	ta := &testApp{
		sess:    &fakeSession{},
		cart:    &fakeCart{},
		auth:    &fakeAuth{},
		catalog: &fakeCatalog{page: &models.ProductPage{}},
		orders:  &fakeOrders{},
		admin:   &fakeAdmin{},
		out:     &bytes.Buffer{},
	}
	var in io.Reader = strings.NewReader("")
	if len(input) > 0 {
		in = strings.NewReader(strings.Join(input, "\n") + "\n")
	}
	ta.App = NewApp(Deps{
		Session: ta.sess,
		Cart:    ta.cart,
		Auth:    ta.auth,
		Catalog: ta.catalog,
		Orders:  ta.orders,
		Admin:   ta.admin,
		In:      in,
		Out:     ta.out,
	})
	return ta
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func price(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func qty(n int) *int { return &n }
