package gst

import "github.com/shopspring/decimal"

var half = decimal.RequireFromString("0.5")

// Heads are the statutory tax heads of one amount of GST.
type Heads struct {
	CGST decimal.Decimal
	SGST decimal.Decimal
	IGST decimal.Decimal
}

// SplitHeads splits an aggregate tax amount into its heads.
// Intrastate: CGST = SGST = round2(tax/2), IGST = 0.
// Interstate: IGST = round2(tax), CGST = SGST = 0.
// Each head is rounded on its own; CGST+SGST may differ from round2(tax) by
// 0.01 and no correction is applied.
func SplitHeads(tax decimal.Decimal, intrastate bool) Heads {
	if intrastate {
		h := Round2(tax.Mul(half))
		return Heads{CGST: h, SGST: h, IGST: decimal.Zero}
	}
	return Heads{CGST: decimal.Zero, SGST: decimal.Zero, IGST: Round2(tax)}
}

// Total returns the sum of the heads.
func (h Heads) Total() decimal.Decimal {
	return h.CGST.Add(h.SGST).Add(h.IGST)
}
