package gst

import (
	"fmt"
	"regexp"
	"strings"
)

// gstinCharset is the base-36 alphabet used by the GSTIN check character.
const gstinCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// gstinPattern: 2-digit state, 10-char PAN, entity number, 'Z', check char.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// ValidateGSTIN validates the structure, the state prefix and the check
// character of a 15-character GSTIN. Surrounding spaces are ignored.
func ValidateGSTIN(gstin string) error {
	g := strings.ToUpper(strings.TrimSpace(gstin))
	if len(g) != 15 {
		return fmt.Errorf("gst: GSTIN must have 15 characters, got %d", len(g))
	}
	if !gstinPattern.MatchString(g) {
		return fmt.Errorf("gst: GSTIN %q does not match the statutory format", g)
	}
	if !IsValidStateCode(g[:2]) {
		return fmt.Errorf("gst: GSTIN state code %q is not a known state", g[:2])
	}
	expected, err := ComputeGSTINCheckChar(g[:14])
	if err != nil {
		return err
	}
	if g[14] != expected {
		return fmt.Errorf("gst: GSTIN check character invalid: expected %c, got %c", expected, g[14])
	}
	return nil
}

// ComputeGSTINCheckChar computes the mod-36 check character over the first 14
// characters of a GSTIN. Odd positions (1-based) weigh 1, even positions 2;
// each product contributes quotient plus remainder of its division by 36.
func ComputeGSTINCheckChar(first14 string) (byte, error) {
	if len(first14) < 14 {
		return 0, fmt.Errorf("gst: 14 characters are required to compute the check character, got %d", len(first14))
	}
	var sum int
	for i := 0; i < 14; i++ {
		v := strings.IndexByte(gstinCharset, first14[i])
		if v < 0 {
			return 0, fmt.Errorf("gst: invalid GSTIN character %q at position %d", first14[i], i+1)
		}
		factor := 1
		if i%2 == 1 {
			factor = 2
		}
		p := v * factor
		sum += p/36 + p%36
	}
	return gstinCharset[(36-sum%36)%36], nil
}

// StateCodeFromGSTIN returns the state prefix of a GSTIN when it is a known code.
func StateCodeFromGSTIN(gstin string) (string, bool) {
	g := strings.TrimSpace(gstin)
	if len(g) < 2 {
		return "", false
	}
	code := g[:2]
	return code, IsValidStateCode(code)
}
