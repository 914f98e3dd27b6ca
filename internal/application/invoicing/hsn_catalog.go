package invoicing

import (
	"context"
	"strings"

	"github.com/jhoicas/gst-lineitems/internal/domain/entity"
)

// CatalogHSNResolver resolves HSN codes from a static catalogue keyed by SKU,
// falling back to product id.
type CatalogHSNResolver struct {
	bySKU     map[string]string
	byProduct map[string]string
}

// NewCatalogHSNResolver builds a resolver. Keys are matched case-insensitively after trimming.
func NewCatalogHSNResolver(bySKU, byProduct map[string]string) *CatalogHSNResolver {
	return &CatalogHSNResolver{bySKU: normalizeKeys(bySKU), byProduct: normalizeKeys(byProduct)}
}

func normalizeKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToUpper(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return out
}

// ResolveHSN implements HSNResolver.
func (r *CatalogHSNResolver) ResolveHSN(_ context.Context, _ string, item entity.TaxedLineItem) (string, bool, error) {
	if code, ok := r.bySKU[strings.ToUpper(strings.TrimSpace(item.SKU))]; ok && item.SKU != "" {
		return code, true, nil
	}
	if code, ok := r.byProduct[strings.ToUpper(strings.TrimSpace(item.ProductID))]; ok && item.ProductID != "" {
		return code, true, nil
	}
	return "", false, nil
}
