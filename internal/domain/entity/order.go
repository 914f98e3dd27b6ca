package entity

import "encoding/json"

// Order is the raw commerce order as received from the platform webhook.
// It is a read-only snapshot: the engine never mutates it. Every field decodes
// leniently, so a value of the wrong JSON type degrades to its zero value
// instead of failing the order.
type Order struct {
	ID              ID        `json:"id"`
	OrderNumber     ID        `json:"order_number"`
	Name            Text      `json:"name"`
	CreatedAt       Text      `json:"created_at"` // passed through to the output verbatim
	Customer        *Customer `json:"customer"`
	BillingAddress  *Address  `json:"billing_address"`
	ShippingAddress *Address  `json:"shipping_address"`
	TotalDiscounts  Amount    `json:"total_discounts"` // order-level discount
	LineItems       LineItems `json:"line_items"`
}

// Customer identity attached to an order.
type Customer struct {
	FirstName Text `json:"first_name"`
	LastName  Text `json:"last_name"`
	Email     Text `json:"email"`
}

// Address is a billing or shipping address. Province carries the state display name.
type Address struct {
	Name         Text `json:"name"`
	FirstName    Text `json:"first_name"`
	LastName     Text `json:"last_name"`
	Address1     Text `json:"address1"`
	City         Text `json:"city"`
	Province     Text `json:"province"`
	ProvinceCode Text `json:"province_code"`
	Zip          Text `json:"zip"`
	Country      Text `json:"country"`
}

// LineItem is one product line of the order. Price is tax inclusive, per unit.
type LineItem struct {
	ID            ID       `json:"id"`
	ProductID     ID       `json:"product_id"`
	VariantID     ID       `json:"variant_id"`
	SKU           Text     `json:"sku"`
	Title         Text     `json:"title"`
	Price         Amount   `json:"price"`
	Quantity      Quantity `json:"quantity"`
	TotalDiscount Amount   `json:"total_discount"` // explicit per-item discount
}

// LineItems decodes as empty when the payload carries something other than an array.
type LineItems []LineItem

// UnmarshalJSON implements json.Unmarshaler.
func (l *LineItems) UnmarshalJSON(b []byte) error {
	var items []LineItem
	if err := json.Unmarshal(b, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}

// UnmarshalJSON decodes a customer; a non-object value yields an empty customer.
func (c *Customer) UnmarshalJSON(b []byte) error {
	type plain Customer
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		*c = Customer{}
		return nil
	}
	*c = Customer(p)
	return nil
}

// UnmarshalJSON decodes an address; a non-object value yields an empty address.
func (a *Address) UnmarshalJSON(b []byte) error {
	type plain Address
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		*a = Address{}
		return nil
	}
	*a = Address(p)
	return nil
}

// UnmarshalJSON decodes a line item; a non-object value yields an empty line
// that the engine values at zero.
func (li *LineItem) UnmarshalJSON(b []byte) error {
	type plain LineItem
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		*li = LineItem{}
		return nil
	}
	*li = LineItem(p)
	return nil
}
