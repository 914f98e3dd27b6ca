// Package gst contains the statutory catalogues of India's Goods and Services Tax
// used for invoicing: state codes, rate slabs and GSTIN validation.
package gst

// =============================================================================
// Transaction type (IGST Act, sections 7 and 8)
// Supplier and place of supply in the same state = intrastate (CGST + SGST).
// =============================================================================

const (
	TransactionIntrastate = "intrastate"
	TransactionInterstate = "interstate"
)

// =============================================================================
// Supply type. Only B2C is modelled; B2B needs the recipient's GSTIN.
// =============================================================================

const (
	SupplyTypeB2C = "B2C"
)

// =============================================================================
// Rate slabs for tax-inclusive priced goods: 5% below the threshold,
// 18% at or above it. The threshold applies to the per-unit taxable value.
// =============================================================================

const (
	SlabLowerRate = 5
	SlabUpperRate = 18
	SlabThreshold = 2500 // rupees per unit
)

// Placeholders emitted when the order carries no usable data.
const (
	HSNUnresolved = "UNRESOLVED" // HSN is merged by the caller after the engine runs
	UnknownState  = "Unknown"
	GuestCustomer = "Guest Customer"
)
