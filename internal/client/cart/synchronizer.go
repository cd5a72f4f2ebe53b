package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const fetchKey = "cart"

// Session is the part of session.Manager the cart depends on.
type Session interface {
	IsAuthenticated() bool
	Subscribe(fn session.Listener) func()
}

// API is the remote cart.
type API interface {
	GetCart(ctx context.Context) (models.CartSnapshot, error)
	AddToCart(ctx context.Context, req models.AddToCartRequest) error
	UpdateCartItem(ctx context.Context, lineID string, quantity int) error
	RemoveCartItem(ctx context.Context, lineID string) error
	ClearCart(ctx context.Context) error
}

type Synchronizer struct {
	api  API
	sess Session
	log  logging.Logger

	sf singleflight.Group
	wg sync.WaitGroup

	mu   sync.Mutex
	snap models.CartSnapshot
	err  error
	// generation changes whenever the snapshot is emptied locally; a fetch
	// started under an older generation is discarded.
	generation uint64
	seq        uint64
	applied    uint64

	unsubscribe func()
}

func NewSynchronizer(api API, sess Session, log logging.Logger) *Synchronizer {
	if log == nil {
		log = logging.Discard()
	}
	s := &Synchronizer{
		api:  api,
		sess: sess,
		log:  log.With("component", "cart"),
		snap: models.CartSnapshot{Lines: []models.CartLine{}},
	}
	s.unsubscribe = sess.Subscribe(s.onSessionEvent)
	return s
}

// Close detaches from the session and waits for background fetches.
func (s *Synchronizer) Close() {
	s.unsubscribe()
	s.wg.Wait()
}

func (s *Synchronizer) onSessionEvent(ctx context.Context, ev session.Event) {
	switch ev.Kind {
	case session.EventLogout:
		s.reset()
	case session.EventLogin:
		ctx := context.WithoutCancel(ctx)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := s.FetchCart(ctx); err != nil {
				s.log.Warn(ctx, "cart fetch after login failed", "error", err)
			}
		}()
	}
}

func (s *Synchronizer) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.snap = models.CartSnapshot{Lines: []models.CartLine{}}
	s.err = nil
}

func (s *Synchronizer) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Err is the last failure recorded by a fetch, mutation or total.
func (s *Synchronizer) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// FetchCart replaces the snapshot with the server's cart. On failure the
// snapshot is emptied and the error recorded. Concurrent calls share one
// request.
func (s *Synchronizer) FetchCart(ctx context.Context) error {
	if !s.sess.IsAuthenticated() {
		s.reset()
		return common.ErrNotAuthenticated
	}
	_, err, _ := s.sf.Do(fetchKey, func() (any, error) {
		return nil, s.fetch(ctx)
	})
	return err
}

func (s *Synchronizer) fetch(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	seq, gen := s.seq, s.generation
	s.mu.Unlock()

	snap, err := s.api.GetCart(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation || seq <= s.applied {
		s.log.Debug(ctx, "discarding stale cart fetch", "seq", seq)
		return err
	}
	s.applied = seq
	if err != nil {
		s.snap = models.CartSnapshot{Lines: []models.CartLine{}}
		s.err = err
		return err
	}
	s.snap = s.normalize(ctx, snap)
	s.err = nil
	s.log.Debug(ctx, "cart fetched", "lines", len(s.snap.Lines))
	return nil
}

// normalize drops lines the server reports with a non-positive quantity.
func (s *Synchronizer) normalize(ctx context.Context, snap models.CartSnapshot) models.CartSnapshot {
	lines := make([]models.CartLine, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		if l.Quantity != nil && *l.Quantity <= 0 {
			s.log.Warn(ctx, "dropping cart line with non-positive quantity", "line", l.ID, "quantity", *l.Quantity)
			continue
		}
		lines = append(lines, l)
	}
	return models.CartSnapshot{Lines: lines}
}

// refetch starts a fresh request even if one is in flight, so the result
// reflects the mutation that was just acknowledged.
func (s *Synchronizer) refetch(ctx context.Context) error {
	s.sf.Forget(fetchKey)
	return s.FetchCart(ctx)
}

func (s *Synchronizer) AddItem(ctx context.Context, req models.AddToCartRequest) error {
	if !s.sess.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	if req.ProductID == "" {
		return fmt.Errorf("%w: product is required", common.ErrValidation)
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", common.ErrValidation)
	}
	if err := s.api.AddToCart(ctx, req); err != nil {
		s.setErr(err)
		return err
	}
	return s.refetch(ctx)
}

// UpdateQuantity sets a line's quantity. Zero removes the line.
func (s *Synchronizer) UpdateQuantity(ctx context.Context, lineID string, quantity int) error {
	if !s.sess.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", common.ErrValidation)
	}
	if quantity == 0 {
		return s.RemoveItem(ctx, lineID)
	}
	if err := s.api.UpdateCartItem(ctx, lineID, quantity); err != nil {
		s.setErr(err)
		return err
	}
	return s.refetch(ctx)
}

func (s *Synchronizer) RemoveItem(ctx context.Context, lineID string) error {
	if !s.sess.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	if err := s.api.RemoveCartItem(ctx, lineID); err != nil {
		s.setErr(err)
		return err
	}
	return s.refetch(ctx)
}

// ClearCart empties the snapshot at once, then asks the server to do the
// same. A failed request is returned but the snapshot stays empty.
func (s *Synchronizer) ClearCart(ctx context.Context) error {
	if !s.sess.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	s.reset()
	if err := s.api.ClearCart(ctx); err != nil {
		s.log.Warn(ctx, "clear cart failed", "error", err)
		s.setErr(err)
		return err
	}
	return nil
}

// Snapshot returns a copy of the current cart, empty when signed out.
func (s *Synchronizer) Snapshot() models.CartSnapshot {
	if !s.sess.IsAuthenticated() {
		return models.CartSnapshot{Lines: []models.CartLine{}}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// TotalPrice sums price × quantity. A line missing either field is an error.
func (s *Synchronizer) TotalPrice() (decimal.Decimal, error) {
	if !s.sess.IsAuthenticated() {
		return decimal.Zero, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	total, err := s.snap.TotalPrice()
	if err != nil {
		s.err = err
	}
	return total, err
}

func (s *Synchronizer) TotalItems() (int, error) {
	if !s.sess.IsAuthenticated() {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	total, err := s.snap.TotalItems()
	if err != nil {
		s.err = err
	}
	return total, err
}
