package gst

import (
	"strings"

	"github.com/jhoicas/gst-lineitems/internal/domain/entity"
	pkggst "github.com/jhoicas/gst-lineitems/pkg/gst"
)

// CustomerName derives the display name of the buyer. Sources, first
// non-empty wins: customer first+last name, billing name, billing
// first+last name, shipping name, customer email, "Guest Customer".
func CustomerName(order *entity.Order) string {
	if order == nil {
		return pkggst.GuestCustomer
	}
	c, b, s := order.Customer, order.BillingAddress, order.ShippingAddress
	if c != nil {
		if name := joinName(c.FirstName, c.LastName); name != "" {
			return name
		}
	}
	if b != nil {
		if name := strings.TrimSpace(b.Name.String()); name != "" {
			return name
		}
		if name := joinName(b.FirstName, b.LastName); name != "" {
			return name
		}
	}
	if s != nil {
		if name := strings.TrimSpace(s.Name.String()); name != "" {
			return name
		}
	}
	if c != nil {
		if email := strings.TrimSpace(c.Email.String()); email != "" {
			return email
		}
	}
	return pkggst.GuestCustomer
}

// CustomerState prefers the billing province, then shipping, then "Unknown".
func CustomerState(order *entity.Order) string {
	if order == nil {
		return pkggst.UnknownState
	}
	return firstProvince(order.BillingAddress, order.ShippingAddress)
}

// PlaceOfSupply prefers the shipping province: for a B2C shipment the place
// of supply is the delivery address.
func PlaceOfSupply(order *entity.Order) string {
	if order == nil {
		return pkggst.UnknownState
	}
	return firstProvince(order.ShippingAddress, order.BillingAddress)
}

func firstProvince(addrs ...*entity.Address) string {
	for _, a := range addrs {
		if a != nil && strings.TrimSpace(a.Province.String()) != "" {
			return a.Province.String()
		}
	}
	return pkggst.UnknownState
}

func joinName(first, last entity.Text) string {
	return strings.TrimSpace(strings.TrimSpace(first.String()) + " " + strings.TrimSpace(last.String()))
}
