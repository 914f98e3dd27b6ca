package gst

import pkggst "github.com/jhoicas/gst-lineitems/pkg/gst"

// Classification is the intrastate/interstate decision for one order.
type Classification struct {
	CompanyStateCode  string // empty = unresolved
	PlaceOfSupplyCode string // empty = unresolved
	Intrastate        bool
}

// Classify resolves both state names and compares the codes. An unresolved
// code on either side is never treated as a match, so missing data falls back
// to interstate.
func Classify(companyState, placeOfSupply string) Classification {
	companyCode, okCompany := pkggst.StateCode(companyState)
	posCode, okPOS := pkggst.StateCode(placeOfSupply)
	return Classification{
		CompanyStateCode:  companyCode,
		PlaceOfSupplyCode: posCode,
		Intrastate:        okCompany && okPOS && companyCode == posCode,
	}
}

// TransactionType returns the statutory label of the classification.
func (c Classification) TransactionType() string {
	if c.Intrastate {
		return pkggst.TransactionIntrastate
	}
	return pkggst.TransactionInterstate
}
