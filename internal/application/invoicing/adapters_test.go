package invoicing_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-lineitems/internal/application/invoicing"
	"github.com/jhoicas/gst-lineitems/internal/domain"
	"github.com/jhoicas/gst-lineitems/internal/domain/entity"
)

func TestLineItemKey(t *testing.T) {
	assert.Equal(t, "1001#1", invoicing.LineItemKey("1001", 1))
	assert.Equal(t, "A-7#12", invoicing.LineItemKey("A-7", 12))
}

func TestUUIDAllocator(t *testing.T) {
	a := invoicing.NewUUIDAllocator("  ")
	first, err := a.Allocate(context.Background(), shop, "1001")
	require.NoError(t, err)
	second, err := a.Allocate(context.Background(), shop, "1001")
	require.NoError(t, err)

	assert.Equal(t, "INV-1001", first.Number)
	assert.Equal(t, first.Number, second.Number)
	assert.NotEqual(t, first.ID, second.ID)
	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err)

	_, err = a.Allocate(context.Background(), shop, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMemoryLineItemStore_PartitionsAndOrders(t *testing.T) {
	s := invoicing.NewMemoryLineItemStore()
	ctx := context.Background()

	require.NoError(t, s.SaveLineItems(ctx, "a", []entity.TaxedLineItem{
		{OrderNumber: "1", Index: 2, Title: "second"},
		{OrderNumber: "1", Index: 1, Title: "first"},
		{OrderNumber: "2", Index: 1},
	}))
	require.NoError(t, s.SaveLineItems(ctx, "b", []entity.TaxedLineItem{{OrderNumber: "1", Index: 1}}))
	require.NoError(t, s.SaveLineItems(ctx, "a", []entity.TaxedLineItem{{OrderNumber: "1", Index: 2, Title: "replaced"}}))

	got, err := s.ListByOrderNumber(ctx, "a", "1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "replaced", got[1].Title)

	assert.Equal(t, 3, s.Len("a"))
	assert.Equal(t, 1, s.Len("b"))

	none, err := s.ListByOrderNumber(ctx, "missing", "1")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogHSNResolver(t *testing.T) {
	r := invoicing.NewCatalogHSNResolver(map[string]string{" kurta-m ": "6211"}, map[string]string{"22": "6214"})
	ctx := context.Background()

	code, ok, err := r.ResolveHSN(ctx, shop, entity.TaxedLineItem{SKU: "KURTA-M"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "6211", code)

	code, ok, _ = r.ResolveHSN(ctx, shop, entity.TaxedLineItem{SKU: "UNKNOWN", ProductID: "22"})
	assert.True(t, ok)
	assert.Equal(t, "6214", code)

	_, ok, _ = r.ResolveHSN(ctx, shop, entity.TaxedLineItem{})
	assert.False(t, ok)
}
