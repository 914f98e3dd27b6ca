package entity

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative monetary value decoded leniently from a commerce
// payload. Platforms send prices both as "105.00" and as 105; anything that is
// missing, null, unparseable, negative or non-finite decodes as an unset zero.
type Amount struct {
	value decimal.Decimal
	set   bool
}

// Bounds for values decoded from payloads. Anything outside them is treated as
// missing: exponent literals such as "1e2000000" would otherwise cost unbounded
// big-integer work in the slab divisions.
const (
	maxLiteralLen = 64
	maxExponent   = 12
	minExponent   = -32
)

var (
	maxAmount   = decimal.New(1, 12) // ₹1 lakh crore per unit
	maxQuantity = decimal.NewFromInt(100000)
)

// parseBounded parses a decimal literal whose length and exponent are bounded.
func parseBounded(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxLiteralLen {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if e := d.Exponent(); e > maxExponent || e < minExponent {
		return decimal.Zero, false
	}
	return d, true
}

// NewAmount builds a set Amount from a decimal. Negative values and values
// above ₹1 lakh crore are unset.
func NewAmount(d decimal.Decimal) Amount {
	if d.IsNegative() || d.GreaterThan(maxAmount) {
		return Amount{}
	}
	return Amount{value: d, set: true}
}

// ParseAmount parses a decimal-formatted string. It never fails.
func ParseAmount(s string) Amount {
	d, ok := parseBounded(s)
	if !ok {
		return Amount{}
	}
	return NewAmount(d)
}

// MustAmount builds an Amount from a literal; intended for fixtures and defaults.
func MustAmount(s string) Amount {
	return ParseAmount(s)
}

// Decimal returns the value, zero when unset.
func (a Amount) Decimal() decimal.Decimal {
	if !a.set {
		return decimal.Zero
	}
	return a.value
}

// IsSet reports whether the payload carried a usable value.
func (a Amount) IsSet() bool { return a.set }

// UnmarshalJSON accepts strings, numbers and null. It never returns an error.
func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*a = Amount{}
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		s, err := strconv.Unquote(raw)
		if err != nil {
			*a = Amount{}
			return nil
		}
		raw = s
	}
	*a = ParseAmount(raw)
	return nil
}

// MarshalJSON writes the value as a quoted decimal string, or null when unset.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.set {
		return []byte("null"), nil
	}
	return a.value.MarshalJSON()
}

// Quantity is a unit count decoded leniently (string or number).
// Zero means the payload did not carry a usable quantity.
type Quantity int

// Units returns the number of units to expand; missing or non-positive counts are 1.
func (q Quantity) Units() int {
	if q < 1 {
		return 1
	}
	return int(q)
}

// UnmarshalJSON accepts strings, integral numbers and null. Fractional,
// negative or implausibly large counts decode as missing. It never returns an error.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(b)), `"`)
	d, ok := parseBounded(raw)
	if !ok || d.IsNegative() || !d.IsInteger() || d.GreaterThan(maxQuantity) {
		*q = 0
		return nil
	}
	*q = Quantity(d.IntPart())
	return nil
}

// Text is a descriptive string field. Numbers and booleans keep their literal
// text; objects and arrays decode as empty. It never returns an error.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null", strings.HasPrefix(raw, "{"), strings.HasPrefix(raw, "["):
		*t = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			*t = ""
			return nil
		}
		*t = Text(s)
	default:
		*t = Text(raw)
	}
	return nil
}

// String returns the text.
func (t Text) String() string { return string(t) }

// ID is an identifier that platforms send either as a number or as a string.
type ID string

// UnmarshalJSON keeps numeric identifiers verbatim (no float conversion).
func (id *ID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*id = ""
	case strings.HasPrefix(raw, `"`):
		s, err := strconv.Unquote(raw)
		if err != nil {
			*id = ""
			return nil
		}
		*id = ID(s)
	default:
		*id = ID(raw)
	}
	return nil
}

// String returns the identifier as a plain string.
func (id ID) String() string { return string(id) }
