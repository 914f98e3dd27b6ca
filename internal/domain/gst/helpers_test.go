package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gst-lineitems/internal/domain/entity"
	"github.com/jhoicas/gst-lineitems/internal/domain/gst"
	pkggst "github.com/jhoicas/gst-lineitems/pkg/gst"
)

// ── Round2 ────────────────────────────────────────────────────────────────────

func TestRound2_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"},
		{"1.004", "1.00"},
		{"2.675", "2.68"},
		{"-1.005", "-1.01"},
		{"457.6271186440677966", "457.63"},
		{"100", "100.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := gst.Round2(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

// ── SplitHeads ────────────────────────────────────────────────────────────────

func TestSplitHeads_Intrastate(t *testing.T) {
	h := gst.SplitHeads(decimal.RequireFromString("10"), true)
	assert.Equal(t, "5.00", h.CGST.StringFixed(2))
	assert.Equal(t, "5.00", h.SGST.StringFixed(2))
	assert.True(t, h.IGST.IsZero())
}

func TestSplitHeads_Interstate(t *testing.T) {
	h := gst.SplitHeads(decimal.RequireFromString("457.6271"), false)
	assert.Equal(t, "457.63", h.IGST.StringFixed(2))
	assert.True(t, h.CGST.IsZero())
	assert.True(t, h.SGST.IsZero())
}

// Each half is rounded on its own: 0.05 splits into 0.03 + 0.03.
func TestSplitHeads_OddPaisaIsNotCorrected(t *testing.T) {
	h := gst.SplitHeads(decimal.RequireFromString("0.05"), true)
	assert.Equal(t, "0.03", h.CGST.StringFixed(2))
	assert.Equal(t, "0.03", h.SGST.StringFixed(2))
	assert.Equal(t, "0.06", h.Total().StringFixed(2))
}

// ── Party identity ────────────────────────────────────────────────────────────

func TestCustomerName_FallbackChain(t *testing.T) {
	tests := []struct {
		name  string
		order *entity.Order
		want  string
	}{
		{
			name:  "customer names",
			order: &entity.Order{Customer: &entity.Customer{FirstName: "  Asha ", LastName: "Verma"}, BillingAddress: &entity.Address{Name: "Billing"}},
			want:  "Asha Verma",
		},
		{
			name:  "only last name",
			order: &entity.Order{Customer: &entity.Customer{LastName: "Verma"}},
			want:  "Verma",
		},
		{
			name:  "billing name",
			order: &entity.Order{Customer: &entity.Customer{Email: "a@b.in"}, BillingAddress: &entity.Address{Name: "Billing Name", FirstName: "X"}},
			want:  "Billing Name",
		},
		{
			name:  "billing first and last",
			order: &entity.Order{BillingAddress: &entity.Address{FirstName: "Ravi", LastName: "Kumar"}, ShippingAddress: &entity.Address{Name: "Ship"}},
			want:  "Ravi Kumar",
		},
		{
			name:  "shipping name",
			order: &entity.Order{Customer: &entity.Customer{Email: "a@b.in"}, ShippingAddress: &entity.Address{Name: "Ship Name"}},
			want:  "Ship Name",
		},
		{
			name:  "email",
			order: &entity.Order{Customer: &entity.Customer{Email: " a@b.in "}, BillingAddress: &entity.Address{Name: "  "}},
			want:  "a@b.in",
		},
		{
			name:  "guest",
			order: &entity.Order{},
			want:  pkggst.GuestCustomer,
		},
		{
			name:  "nil order",
			order: nil,
			want:  pkggst.GuestCustomer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gst.CustomerName(tt.order))
		})
	}
}

func TestCustomerStateAndPlaceOfSupply_ReverseOrder(t *testing.T) {
	order := &entity.Order{
		BillingAddress:  &entity.Address{Province: "Delhi"},
		ShippingAddress: &entity.Address{Province: "Kerala"},
	}
	assert.Equal(t, "Delhi", gst.CustomerState(order))
	assert.Equal(t, "Kerala", gst.PlaceOfSupply(order))

	onlyBilling := &entity.Order{BillingAddress: &entity.Address{Province: "Delhi"}}
	assert.Equal(t, "Delhi", gst.PlaceOfSupply(onlyBilling))

	onlyShipping := &entity.Order{ShippingAddress: &entity.Address{Province: "Kerala"}}
	assert.Equal(t, "Kerala", gst.CustomerState(onlyShipping))

	assert.Equal(t, pkggst.UnknownState, gst.CustomerState(&entity.Order{}))
	assert.Equal(t, pkggst.UnknownState, gst.PlaceOfSupply(nil))
}

// ── Classification ────────────────────────────────────────────────────────────

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		company string
		pos     string
		want    string
	}{
		{"same state", "Punjab", "Punjab", pkggst.TransactionIntrastate},
		{"different state", "Punjab", "Delhi", pkggst.TransactionInterstate},
		{"unknown place of supply", "Punjab", "Neverland", pkggst.TransactionInterstate},
		{"both unknown", "Atlantis", "Atlantis", pkggst.TransactionInterstate},
		{"case sensitive", "Punjab", "punjab", pkggst.TransactionInterstate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gst.Classify(tt.company, tt.pos).TransactionType())
		})
	}

	c := gst.Classify("Punjab", "Neverland")
	assert.Equal(t, "03", c.CompanyStateCode)
	assert.Empty(t, c.PlaceOfSupplyCode)
}
