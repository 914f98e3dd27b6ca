package invoicing

import (
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/jhoicas/gst-lineitems/internal/domain/entity"
)

// MemoryLineItemStore keeps taxed line items in process memory, keyed per shop by LineItemKey.
type MemoryLineItemStore struct {
	mu    sync.RWMutex
	shops map[string]map[string]entity.TaxedLineItem
}

// NewMemoryLineItemStore creates an empty store.
func NewMemoryLineItemStore() *MemoryLineItemStore {
	return &MemoryLineItemStore{shops: make(map[string]map[string]entity.TaxedLineItem)}
}

// SaveLineItems upserts every record under its key.
func (s *MemoryLineItemStore) SaveLineItems(ctx context.Context, shop string, items []entity.TaxedLineItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	records, ok := s.shops[shop]
	if !ok {
		records = make(map[string]entity.TaxedLineItem)
		s.shops[shop] = records
	}
	for _, it := range items {
		records[LineItemKey(it.OrderNumber, it.Index)] = it
	}
	return nil
}

// ListByOrderNumber returns the records of one order sorted by line index.
func (s *MemoryLineItemStore) ListByOrderNumber(ctx context.Context, shop, orderNumber string) ([]entity.TaxedLineItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := lo.Filter(lo.Values(s.shops[shop]), func(it entity.TaxedLineItem, _ int) bool {
		return it.OrderNumber == orderNumber
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

// Len returns the number of records stored for a shop.
func (s *MemoryLineItemStore) Len(shop string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shops[shop])
}
