package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-lineitems/internal/domain/entity"
)

// TransformOrderRequest carries one raw commerce order to be classified.
// Order is the order JSON exactly as received from the store platform.
type TransformOrderRequest struct {
	Shop        string          `json:"shop"`
	Order       json.RawMessage `json:"order"`
	InvoiceDate time.Time       `json:"invoice_date,omitempty"` // zero = now
}

// InvoiceTotals aggregates the rounded line values of one invoice.
type InvoiceTotals struct {
	Lines        int             `json:"lines"`
	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	Cess         decimal.Decimal `json:"cess"`
	TotalTax     decimal.Decimal `json:"total_tax"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// TransformOrderResponse is the persisted result for one order.
type TransformOrderResponse struct {
	Shop          string                 `json:"shop"`
	OrderNumber   string                 `json:"order_number"`
	InvoiceID     string                 `json:"invoice_id"`
	InvoiceNumber string                 `json:"invoice_number"`
	Unresolved    int                    `json:"unresolved_hsn"` // lines still carrying the HSN placeholder
	Totals        InvoiceTotals          `json:"totals"`
	Lines         []entity.TaxedLineItem `json:"lines"`
}

// BatchFailure reports an order of a batch that could not be transformed.
type BatchFailure struct {
	Position int    `json:"position"` // 0-based position in the request slice
	Error    string `json:"error"`
}

// BatchTransformResponse collects the outcome of a batch; successful results keep request order.
type BatchTransformResponse struct {
	Results  []TransformOrderResponse `json:"results"`
	Failures []BatchFailure           `json:"failures,omitempty"`
}
