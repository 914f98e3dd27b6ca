package invoicing

import (
	"context"
	"fmt"

	"github.com/jhoicas/gst-lineitems/internal/domain/entity"
)

// Engine is the tax classification contract consumed by the use cases.
type Engine interface {
	Transform(order *entity.Order, profile entity.CompanyTaxProfile, ic entity.InvoiceContext) []entity.TaxedLineItem
}

// LineItemStore persists taxed line items partitioned by shop.
// Saving a record whose key already exists replaces it.
type LineItemStore interface {
	SaveLineItems(ctx context.Context, shop string, items []entity.TaxedLineItem) error
	ListByOrderNumber(ctx context.Context, shop, orderNumber string) ([]entity.TaxedLineItem, error)
}

// InvoiceIdentity is the invoice id and human-facing number for one order.
type InvoiceIdentity struct {
	ID     string
	Number string
}

// InvoiceAllocator hands out invoice identities.
type InvoiceAllocator interface {
	Allocate(ctx context.Context, shop, orderNumber string) (InvoiceIdentity, error)
}

// HSNResolver looks up the HSN code of a classified line. ok=false leaves the placeholder.
type HSNResolver interface {
	ResolveHSN(ctx context.Context, shop string, item entity.TaxedLineItem) (code string, ok bool, err error)
}

// LineItemKey is the storage key of a record: "<orderNumber>#<index>".
func LineItemKey(orderNumber string, index int) string {
	return fmt.Sprintf("%s#%d", orderNumber, index)
}
