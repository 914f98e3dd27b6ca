package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceContext is supplied by the caller and stamped verbatim onto every record.
type InvoiceContext struct {
	OrderNumber   string
	InvoiceID     string
	InvoiceNumber string
	InvoiceDate   time.Time
}

// TaxedLineItem is the GST classification of one order line.
// Monetary fields are rounded to 2 decimals once, after unit-level summation.
type TaxedLineItem struct {
	InvoiceID     string `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date,omitempty"` // YYYY-MM-DD
	OrderID       string `json:"order_id"`
	OrderNumber   string `json:"order_number"`
	OrderDate     string `json:"order_date,omitempty"`
	Index         int    `json:"line_item_index"` // 1-based, input order

	LineItemID string `json:"line_item_id"`
	ProductID  string `json:"product_id"`
	VariantID  string `json:"variant_id"`
	SKU        string `json:"sku"`
	Title      string `json:"title"`
	HSN        string `json:"hsn"`

	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Discount     decimal.Decimal `json:"discount"`
	TaxableValue decimal.Decimal `json:"taxable_value"`
	// TaxRate is the slab of the first unit only; later units of the same
	// line may have resolved to another slab.
	TaxRate  int             `json:"tax_rate"`
	CGST     decimal.Decimal `json:"cgst"`
	SGST     decimal.Decimal `json:"sgst"`
	IGST     decimal.Decimal `json:"igst"`
	Cess     decimal.Decimal `json:"cess"`
	TotalTax decimal.Decimal `json:"total_tax"`

	CustomerName      string `json:"customer_name"`
	CustomerState     string `json:"customer_state"`
	CustomerStateCode string `json:"customer_state_code"` // empty = unresolved, encoded as null
	PlaceOfSupply     string `json:"place_of_supply"`
	PlaceOfSupplyCode string `json:"place_of_supply_code"` // empty = unresolved, encoded as null
	CompanyState      string `json:"company_state"`
	CompanyStateCode  string `json:"company_state_code"`
	CompanyGSTIN      string `json:"company_gstin"`

	TransactionType string `json:"transaction_type"` // intrastate | interstate
	SupplyType      string `json:"supply_type"`      // B2C
}

// LineTotal returns taxable value plus total tax, the tax-inclusive value of the line.
func (t TaxedLineItem) LineTotal() decimal.Decimal {
	return t.TaxableValue.Add(t.TotalTax)
}

// MarshalJSON writes unresolved state codes as null rather than "".
func (t TaxedLineItem) MarshalJSON() ([]byte, error) {
	type plain TaxedLineItem
	return json.Marshal(struct {
		plain
		CustomerStateCode *string `json:"customer_state_code"`
		PlaceOfSupplyCode *string `json:"place_of_supply_code"`
		CompanyStateCode  *string `json:"company_state_code"`
	}{
		plain:             plain(t),
		CustomerStateCode: nullable(t.CustomerStateCode),
		PlaceOfSupplyCode: nullable(t.PlaceOfSupplyCode),
		CompanyStateCode:  nullable(t.CompanyStateCode),
	})
}

func nullable(code string) *string {
	if code == "" {
		return nil
	}
	return &code
}
