package invoicing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/gst-lineitems/internal/domain"
)

// UUIDAllocator mints a random invoice id and the number "<prefix>-<orderNumber>".
// The same order always receives the same number, so re-running an order keeps its invoice number.
type UUIDAllocator struct {
	Prefix string
}

// NewUUIDAllocator creates an allocator; an empty prefix defaults to "INV".
func NewUUIDAllocator(prefix string) *UUIDAllocator {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "INV"
	}
	return &UUIDAllocator{Prefix: prefix}
}

// Allocate implements InvoiceAllocator.
func (a *UUIDAllocator) Allocate(ctx context.Context, _ string, orderNumber string) (InvoiceIdentity, error) {
	if err := ctx.Err(); err != nil {
		return InvoiceIdentity{}, err
	}
	if strings.TrimSpace(orderNumber) == "" {
		return InvoiceIdentity{}, domain.ErrInvalidInput
	}
	return InvoiceIdentity{
		ID:     uuid.NewString(),
		Number: fmt.Sprintf("%s-%s", a.Prefix, orderNumber),
	}, nil
}
