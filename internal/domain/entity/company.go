package entity

// CompanyTaxProfile is the supplier's GST identity. It is immutable for the
// duration of one transformation.
type CompanyTaxProfile struct {
	Name  string `validate:"omitempty,max=200"`
	State string `validate:"required"` // display name, must exist in the state table
	GSTIN string `validate:"required,len=15"`
}
