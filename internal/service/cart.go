package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/comforty/storefront/internal/domain"
	"github.com/comforty/storefront/internal/storage"
)

// cartStorageKey is the fixed key the cart snapshot lives under. Every
// session reads and writes the same key.
const cartStorageKey = "cart"

// cartSchemaVersion is the current persisted snapshot schema.
const cartSchemaVersion = 1

// cartSnapshot is the persisted envelope. Earlier builds stored a bare line
// array; Load still accepts that shape and rewrites it versioned on the next
// mutation.
type cartSnapshot struct {
	Version int               `json:"version"`
	Lines   []domain.CartLine `json:"lines"`
}

// cartService implements domain.CartService. Lines are kept in insertion
// order, indexed by product identifier, and mirrored to the store after
// every mutation.
type cartService struct {
	mu    sync.Mutex
	lines []domain.CartLine
	index map[string]int

	store  storage.Store
	logger *slog.Logger
}

// NewCartService creates a cart service seeded from the persisted snapshot.
// A missing snapshot starts an empty cart. A snapshot that cannot be decoded
// is logged, purged from storage, and treated as empty rather than blocking
// startup.
func NewCartService(ctx context.Context, store storage.Store, logger *slog.Logger) (domain.CartService, error) {
	s := &cartService{
		index:  make(map[string]int),
		store:  store,
		logger: logger,
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *cartService) load(ctx context.Context) error {
	data, err := s.store.Get(ctx, cartStorageKey)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil
		}
		return domain.WrapError(err, domain.EINTERNAL, "cart.load", "Failed to read cart snapshot")
	}

	lines, ok := decodeSnapshot(data)
	if !ok {
		s.logger.Warn("discarding unreadable cart snapshot", "key", cartStorageKey, "bytes", len(data))
		if err := s.store.Delete(ctx, cartStorageKey); err != nil {
			s.logger.Error("failed to purge unreadable cart snapshot", "error", err)
		}
		return nil
	}

	for _, line := range lines {
		s.index[line.ProductID] = len(s.lines)
		s.lines = append(s.lines, line)
	}
	return nil
}

// decodeSnapshot accepts the versioned envelope or the legacy bare array.
func decodeSnapshot(data []byte) ([]domain.CartLine, bool) {
	var snap cartSnapshot
	if err := json.Unmarshal(data, &snap); err == nil && snap.Version == cartSchemaVersion {
		return snap.Lines, true
	}

	var legacy []domain.CartLine
	if err := json.Unmarshal(data, &legacy); err == nil {
		return legacy, true
	}
	return nil, false
}

// persist writes the full snapshot. Callers hold s.mu.
func (s *cartService) persist(ctx context.Context) error {
	snap := cartSnapshot{Version: cartSchemaVersion, Lines: s.lines}
	if snap.Lines == nil {
		snap.Lines = []domain.CartLine{}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return domain.WrapError(err, domain.EINTERNAL, "cart.persist", "Failed to encode cart snapshot")
	}
	if err := s.store.Put(ctx, cartStorageKey, data); err != nil {
		return domain.WrapError(err, domain.EINTERNAL, "cart.persist", "Failed to write cart snapshot")
	}
	return nil
}

// view builds the aggregate totals. Callers hold s.mu.
func (s *cartService) view() *domain.CartView {
	v := &domain.CartView{
		Lines:    make([]domain.CartLine, len(s.lines)),
		Subtotal: domain.NewAmount(0),
	}
	copy(v.Lines, s.lines)
	for _, line := range s.lines {
		v.Subtotal = v.Subtotal.Add(line.TotalPrice)
		v.ItemCount += line.Quantity
	}
	return v
}

func (s *cartService) Add(ctx context.Context, p domain.Product) (*domain.CartView, error) {
	const op = "cart.add"

	if p.ID == "" {
		return nil, domain.Invalid(op, "Product identifier is required")
	}
	if p.Title == "" {
		return nil, domain.Invalid(op, "Product title is required")
	}
	if p.Price.IsNegative() {
		return nil, domain.Invalid(op, "Product price must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if pos, ok := s.index[p.ID]; ok {
		line := &s.lines[pos]
		line.Quantity++
		line.TotalPrice = line.UnitPrice.MulInt(line.Quantity)
	} else {
		s.index[p.ID] = len(s.lines)
		s.lines = append(s.lines, domain.CartLine{
			ProductID:      p.ID,
			Title:          p.Title,
			Image:          p.Image,
			UnitPrice:      p.Price,
			Quantity:       1,
			TotalPrice:     p.Price,
			ShipmentStatus: domain.ShipmentStatusProcessing,
		})
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return s.view(), nil
}

func (s *cartService) Increment(ctx context.Context, id string) (*domain.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, domain.ErrLineNotFound
	}

	line := &s.lines[pos]
	line.Quantity++
	line.TotalPrice = line.UnitPrice.MulInt(line.Quantity)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return s.view(), nil
}

func (s *cartService) Decrement(ctx context.Context, id string) (*domain.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, domain.ErrLineNotFound
	}

	line := &s.lines[pos]
	if line.Quantity <= 1 {
		// Quantity floors at 1; removal is an explicit, separate action.
		return s.view(), nil
	}
	line.Quantity--
	line.TotalPrice = line.UnitPrice.MulInt(line.Quantity)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return s.view(), nil
}

func (s *cartService) Remove(ctx context.Context, id string) (*domain.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		// Removing an absent line leaves the cart untouched.
		return s.view(), nil
	}

	s.lines = append(s.lines[:pos], s.lines[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.lines); i++ {
		s.index[s.lines[i].ProductID] = i
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return s.view(), nil
}

func (s *cartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.index = make(map[string]int)

	return s.persist(ctx)
}

func (s *cartService) View(ctx context.Context) (*domain.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view(), nil
}
