package cart

import (
	"context"
	"sync"
	"time"

	"backend/internal/models"
)

// MemoryStore keeps anonymous carts in process memory, keyed by the
// cart-session cookie id. Each session sees only its own lines; contents are
// gone on restart, which is acceptable for the anonymous tier. It also serves
// as the fallback target when the durable store is unreachable.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]models.CartItem)}
}

func (s *MemoryStore) Add(ctx context.Context, owner string, item models.CartItem) error {
	item = normalizeItem(item)
	item.Owner = owner

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[owner]
	for i := range lines {
		if lines[i].ProductID == item.ProductID && lines[i].Flavor == item.Flavor {
			lines[i].Quantity += item.Quantity
			return nil
		}
	}

	item.AddedAt = time.Now()
	s.carts[owner] = append(lines, item)
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, owner, productID, flavor string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[owner]
	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID == productID && line.Flavor == flavor {
			continue
		}
		kept = append(kept, line)
	}

	if len(kept) == 0 {
		delete(s.carts, owner)
		return nil
	}
	s.carts[owner] = kept
	return nil
}

func (s *MemoryStore) SetQuantity(ctx context.Context, owner, productID, flavor string, quantity int) error {
	if quantity == 0 {
		return s.Remove(ctx, owner, productID, flavor)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[owner]
	for i := range lines {
		if lines[i].ProductID == productID && lines[i].Flavor == flavor {
			lines[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, owner)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, owner string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[owner]
	out := make([]models.CartItem, len(lines))
	copy(out, lines)
	return out, nil
}
