package invoicing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-lineitems/internal/application/dto"
	"github.com/jhoicas/gst-lineitems/internal/domain"
	"github.com/jhoicas/gst-lineitems/internal/domain/entity"
	pkggst "github.com/jhoicas/gst-lineitems/pkg/gst"
	"github.com/jhoicas/gst-lineitems/pkg/logger"
)

// TransformOrderUseCase decodes an order, classifies it and persists the taxed lines.
type TransformOrderUseCase struct {
	engine    Engine
	store     LineItemStore
	allocator InvoiceAllocator
	hsn       HSNResolver // optional
	profile   entity.CompanyTaxProfile
	log       *logger.Logger
	now       func() time.Time
}

// NewTransformOrderUseCase builds the use case. The company profile must carry a
// valid GSTIN whose state prefix matches the company state.
func NewTransformOrderUseCase(
	engine Engine,
	store LineItemStore,
	allocator InvoiceAllocator,
	hsn HSNResolver,
	profile entity.CompanyTaxProfile,
	log *logger.Logger,
) (*TransformOrderUseCase, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TransformOrderUseCase{
		engine:    engine,
		store:     store,
		allocator: allocator,
		hsn:       hsn,
		profile:   profile,
		log:       log,
		now:       time.Now,
	}, nil
}

var profileValidator = validator.New()

func validateProfile(p entity.CompanyTaxProfile) error {
	if err := profileValidator.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidProfile, err)
	}
	code, ok := pkggst.StateCode(p.State)
	if !ok {
		return fmt.Errorf("%w: unknown company state %q", domain.ErrInvalidProfile, p.State)
	}
	if err := pkggst.ValidateGSTIN(p.GSTIN); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidProfile, err)
	}
	if prefix, _ := pkggst.StateCodeFromGSTIN(p.GSTIN); prefix != code {
		return fmt.Errorf("%w: GSTIN %s is not registered in %s", domain.ErrInvalidProfile, p.GSTIN, p.State)
	}
	return nil
}

// Execute classifies one order. A missing payload yields ErrOrderRequired and
// JSON that is not an object yields ErrInvalidPayload. Collaborator failures are wrapped.
func (uc *TransformOrderUseCase) Execute(ctx context.Context, in dto.TransformOrderRequest) (*dto.TransformOrderResponse, error) {
	if strings.TrimSpace(in.Shop) == "" {
		return nil, fmt.Errorf("%w: shop is required", domain.ErrInvalidInput)
	}
	order, err := decodeOrder(in.Order)
	if err != nil {
		return nil, err
	}

	orderNumber := orderNumberOf(order)
	if orderNumber == "" {
		return nil, fmt.Errorf("%w: order has no order number, name or id", domain.ErrInvalidInput)
	}
	log := uc.log.WithFields(map[string]string{"shop": in.Shop, "order_number": orderNumber})

	identity, err := uc.allocator.Allocate(ctx, in.Shop, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAllocateInvoice, err)
	}

	invoiceDate := in.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = uc.now()
	}
	lines := uc.engine.Transform(order, uc.profile, entity.InvoiceContext{
		OrderNumber:   orderNumber,
		InvoiceID:     identity.ID,
		InvoiceNumber: identity.Number,
		InvoiceDate:   invoiceDate,
	})
	logDegraded(log, order, lines)

	if err := uc.mergeHSN(ctx, in.Shop, lines); err != nil {
		return nil, err
	}

	if err := uc.store.SaveLineItems(ctx, in.Shop, lines); err != nil {
		return nil, fmt.Errorf("save line items: %w", err)
	}

	unresolved := lo.CountBy(lines, func(l entity.TaxedLineItem) bool { return l.HSN == pkggst.HSNUnresolved })
	log.Info().
		Str("invoice_number", identity.Number).
		Int("lines", len(lines)).
		Int("unresolved_hsn", unresolved).
		Msg("order classified")

	return &dto.TransformOrderResponse{
		Shop:          in.Shop,
		OrderNumber:   orderNumber,
		InvoiceID:     identity.ID,
		InvoiceNumber: identity.Number,
		Unresolved:    unresolved,
		Totals:        Totals(lines),
		Lines:         lines,
	}, nil
}

func decodeOrder(raw json.RawMessage) (*entity.Order, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, domain.ErrOrderRequired
	}
	if trimmed[0] != '{' {
		return nil, domain.ErrInvalidPayload
	}
	var order entity.Order
	if err := json.Unmarshal(trimmed, &order); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidPayload, err)
	}
	return &order, nil
}

// orderNumberOf prefers order_number, then the display name without "#", then the id.
func orderNumberOf(o *entity.Order) string {
	if n := strings.TrimSpace(o.OrderNumber.String()); n != "" {
		return n
	}
	if n := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(o.Name.String()), "#")); n != "" {
		return n
	}
	return strings.TrimSpace(o.ID.String())
}

func (uc *TransformOrderUseCase) mergeHSN(ctx context.Context, shop string, lines []entity.TaxedLineItem) error {
	if uc.hsn == nil {
		return nil
	}
	for i := range lines {
		code, ok, err := uc.hsn.ResolveHSN(ctx, shop, lines[i])
		if err != nil {
			return fmt.Errorf("resolve hsn for line %d: %w", lines[i].Index, err)
		}
		if ok && strings.TrimSpace(code) != "" {
			lines[i].HSN = strings.TrimSpace(code)
		}
	}
	return nil
}

func logDegraded(log *logger.Logger, order *entity.Order, lines []entity.TaxedLineItem) {
	if len(lines) == 0 {
		log.Warn().Msg("order has no line items")
		return
	}
	head := lines[0]
	if head.PlaceOfSupplyCode == "" {
		log.Warn().Str("place_of_supply", head.PlaceOfSupply).Msg("place of supply not in state table, classified interstate")
	}
	if head.CustomerName == pkggst.GuestCustomer {
		log.Debug().Msg("no customer identity, using guest")
	}
	for i, li := range order.LineItems {
		if !li.Price.IsSet() {
			log.Warn().Int("line_item_index", i+1).Str("line_item_id", li.ID.String()).Msg("line item without price, valued at zero")
		}
	}
}

// Totals sums the rounded values of the lines of one invoice.
func Totals(lines []entity.TaxedLineItem) dto.InvoiceTotals {
	sum := func(field func(entity.TaxedLineItem) decimal.Decimal) decimal.Decimal {
		return lo.Reduce(lines, func(acc decimal.Decimal, l entity.TaxedLineItem, _ int) decimal.Decimal {
			return acc.Add(field(l))
		}, decimal.Zero)
	}
	t := dto.InvoiceTotals{
		Lines:        len(lines),
		TaxableValue: sum(func(l entity.TaxedLineItem) decimal.Decimal { return l.TaxableValue }),
		CGST:         sum(func(l entity.TaxedLineItem) decimal.Decimal { return l.CGST }),
		SGST:         sum(func(l entity.TaxedLineItem) decimal.Decimal { return l.SGST }),
		IGST:         sum(func(l entity.TaxedLineItem) decimal.Decimal { return l.IGST }),
		Cess:         sum(func(l entity.TaxedLineItem) decimal.Decimal { return l.Cess }),
		TotalTax:     sum(func(l entity.TaxedLineItem) decimal.Decimal { return l.TotalTax }),
	}
	t.GrandTotal = t.TaxableValue.Add(t.TotalTax)
	return t
}
