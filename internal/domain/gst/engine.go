// Package gst classifies the line items of a commerce order for GST invoicing.
//
// Prices arrive tax inclusive. For every unit the engine assumes the 5% slab,
// back-calculates the pre-tax base, and moves to the 18% slab when the
// discounted lower-slab base reaches the ₹2500 threshold. The engine is a pure
// function of the order, the company profile and the invoice context: it keeps
// no state between calls and performs no I/O.
package gst

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-lineitems/internal/domain/entity"
	pkggst "github.com/jhoicas/gst-lineitems/pkg/gst"
)

var (
	lowerDivisor = decimal.RequireFromString("1.05")
	upperDivisor = decimal.RequireFromString("1.18")
	threshold    = decimal.NewFromInt(pkggst.SlabThreshold)
)

// Engine transforms orders into taxed line items.
type Engine struct{}

// NewEngine creates the engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Transform implements the engine contract; see the package-level Transform.
func (e *Engine) Transform(order *entity.Order, profile entity.CompanyTaxProfile, ic entity.InvoiceContext) []entity.TaxedLineItem {
	return Transform(order, profile, ic)
}

// Transform returns one TaxedLineItem per line item of the order, in input
// order, indexed from 1. Malformed data degrades to zeros, "Unknown" or
// unresolved codes; it never fails. A nil order yields an empty result.
func Transform(order *entity.Order, profile entity.CompanyTaxProfile, ic entity.InvoiceContext) []entity.TaxedLineItem {
	if order == nil || len(order.LineItems) == 0 {
		return []entity.TaxedLineItem{}
	}

	customerState := CustomerState(order)
	customerStateCode, _ := pkggst.StateCode(customerState)
	placeOfSupply := PlaceOfSupply(order)
	class := Classify(profile.State, placeOfSupply)

	orderNumber := ic.OrderNumber
	if orderNumber == "" {
		orderNumber = order.OrderNumber.String()
	}
	invoiceDate := ""
	if !ic.InvoiceDate.IsZero() {
		invoiceDate = ic.InvoiceDate.Format("2006-01-02")
	}

	header := entity.TaxedLineItem{
		InvoiceID:         ic.InvoiceID,
		InvoiceNumber:     ic.InvoiceNumber,
		InvoiceDate:       invoiceDate,
		OrderID:           order.ID.String(),
		OrderNumber:       orderNumber,
		OrderDate:         order.CreatedAt.String(),
		HSN:               pkggst.HSNUnresolved,
		Cess:              decimal.Zero,
		CustomerName:      CustomerName(order),
		CustomerState:     customerState,
		CustomerStateCode: customerStateCode,
		PlaceOfSupply:     placeOfSupply,
		PlaceOfSupplyCode: class.PlaceOfSupplyCode,
		CompanyState:      profile.State,
		CompanyStateCode:  class.CompanyStateCode,
		CompanyGSTIN:      profile.GSTIN,
		TransactionType:   class.TransactionType(),
		SupplyType:        pkggst.SupplyTypeB2C,
	}

	orderDiscount := order.TotalDiscounts.Decimal()
	remaining := orderDiscount
	out := make([]entity.TaxedLineItem, 0, len(order.LineItems))
	for i, item := range order.LineItems {
		var lt lineTotals
		lt, remaining = computeLine(item, orderDiscount, remaining, class.Intrastate)

		rec := header
		rec.Index = i + 1
		rec.LineItemID = item.ID.String()
		rec.ProductID = item.ProductID.String()
		rec.VariantID = item.VariantID.String()
		rec.SKU = item.SKU.String()
		rec.Title = item.Title.String()
		rec.Quantity = lt.units
		rec.UnitPrice = Round2(item.Price.Decimal())
		rec.Discount = Round2(lt.discount)
		rec.TaxableValue = Round2(lt.taxable)
		rec.TaxRate = lt.rate
		rec.CGST = lt.heads.CGST
		rec.SGST = lt.heads.SGST
		rec.IGST = lt.heads.IGST
		rec.TotalTax = Round2(lt.tax)
		out = append(out, rec)
	}
	return out
}

// lineTotals are the unrounded sums of one line item's units.
type lineTotals struct {
	units    int
	rate     int // slab of the first unit
	discount decimal.Decimal
	taxable  decimal.Decimal
	tax      decimal.Decimal
	heads    Heads
}

// computeLine expands a line item into its units and sums them. The remaining
// order-level discount is threaded through explicitly and returned updated.
func computeLine(item entity.LineItem, orderDiscount, remaining decimal.Decimal, intrastate bool) (lineTotals, decimal.Decimal) {
	price := item.Price.Decimal()
	lt := lineTotals{units: item.Quantity.Units(), rate: pkggst.SlabLowerRate}

	// Without a price the line is worth nothing and consumes no discount.
	if !price.IsPositive() {
		lt.heads = SplitHeads(decimal.Zero, intrastate)
		return lt, remaining
	}

	lt.discount, remaining = allocateDiscount(price, item.TotalDiscount.Decimal(), orderDiscount, remaining)

	first := resolveUnit(price, lt.discount)
	lt.rate = first.rate
	lt.taxable = first.taxable
	lt.tax = first.tax

	// Units after the first carry no discount, so they all resolve identically.
	if rest := lt.units - 1; rest > 0 {
		u := resolveUnit(price, decimal.Zero)
		n := decimal.NewFromInt(int64(rest))
		lt.taxable = lt.taxable.Add(u.taxable.Mul(n))
		lt.tax = lt.tax.Add(u.tax.Mul(n))
	}

	lt.heads = SplitHeads(lt.tax, intrastate)
	return lt, remaining
}

// allocateDiscount picks the discount applied to a line item. When the
// order carries a discount and the line's approximate base (price / 1.05)
// exceeds it, the line draws whatever is left of the order-level pool;
// otherwise it keeps its own item discount. This is a heuristic kept for
// compatibility with filed returns, not an exact proration.
func allocateDiscount(price, itemDiscount, orderDiscount, remaining decimal.Decimal) (applied, remainingAfter decimal.Decimal) {
	approxBase := price.Div(lowerDivisor)
	if orderDiscount.IsPositive() && approxBase.GreaterThan(orderDiscount) {
		return remaining, decimal.Zero
	}
	return itemDiscount, remaining
}

type unitResult struct {
	rate    int
	taxable decimal.Decimal
	tax     decimal.Decimal
}

// resolveUnit computes one unit. The slab decision uses the lower-slab base
// minus the discount; after switching to 18% the discounted value is not
// re-checked against the threshold.
func resolveUnit(price, discount decimal.Decimal) unitResult {
	rate := pkggst.SlabLowerRate
	base := price.Div(lowerDivisor)
	if base.Sub(discount).GreaterThanOrEqual(threshold) {
		rate = pkggst.SlabUpperRate
		base = price.Div(upperDivisor)
	}
	return unitResult{
		rate:    rate,
		taxable: base.Sub(discount),
		tax:     price.Sub(base),
	}
}
