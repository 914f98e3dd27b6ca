package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-lineitems/internal/application/dto"
	"github.com/jhoicas/gst-lineitems/pkg/config"
	"github.com/jhoicas/gst-lineitems/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Env: "production", Name: "gstcalc-test", LogLevel: "error"},
		Company: config.CompanyConfig{Name: "Test Apparel", State: "Punjab", GSTIN: "03AAACP1234A1ZF"},
		Invoice: config.InvoiceConfig{Prefix: "PB", ShopDomain: "default"},
		Batch:   config.BatchConfig{Workers: 2},
	}
}

const order = `{"order_number": 1001, "shipping_address": {"province": "Punjab"},
 "line_items": [{"id": 1, "sku": "KURTA-M", "price": "3000.00", "quantity": 1}]}`

func TestRun_SingleOrderJSON(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "hsn.json")
	require.NoError(t, os.WriteFile(catalog, []byte(`{"KURTA-M": "6211"}`), 0o600))

	var out bytes.Buffer
	err := run(context.Background(), testConfig(), logger.Nop(),
		options{input: "-", hsnFile: catalog, date: "2024-03-15"}, strings.NewReader(order), &out)
	require.NoError(t, err)

	var res dto.TransformOrderResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "PB-1001", res.InvoiceNumber)
	assert.Equal(t, "default", res.Shop)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, "6211", res.Lines[0].HSN)
	assert.Equal(t, "2024-03-15", res.Lines[0].InvoiceDate)
	assert.Equal(t, 18, res.Lines[0].TaxRate)
	assert.Equal(t, "3000.00", res.Totals.GrandTotal.StringFixed(2))
}

func TestRun_BatchSummary(t *testing.T) {
	input := "[" + order + `, "not an order"]`
	var out bytes.Buffer
	err := run(context.Background(), testConfig(), logger.Nop(),
		options{input: "-", batch: true, summary: true, shop: "kurta-house"}, strings.NewReader(input), &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "GSTIN 03AAACP1234A1ZF, registered in Punjab (03)")
	assert.Contains(t, text, "Place of supply Punjab (03), intrastate")
	assert.Contains(t, text, "Invoice PB-1001")
	assert.Contains(t, text, "₹3,000.00")
	assert.Contains(t, text, "1 line(s) without HSN code")
	assert.Contains(t, text, "Order at position 1 failed")
}

func TestRun_SummaryUnresolvedPlaceOfSupply(t *testing.T) {
	var out bytes.Buffer
	input := `{"order_number": 7, "shipping_address": {"province": "Neverland"}, "line_items": [{"price": "105.00"}]}`
	err := run(context.Background(), testConfig(), logger.Nop(), options{input: "-", summary: true}, strings.NewReader(input), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Place of supply Neverland (unresolved), interstate")
}

func TestRun_Errors(t *testing.T) {
	cfg := testConfig()
	var out bytes.Buffer

	err := run(context.Background(), cfg, logger.Nop(), options{input: "-"}, strings.NewReader(""), &out)
	assert.Error(t, err, "empty stdin is not an order")

	err = run(context.Background(), cfg, logger.Nop(), options{input: filepath.Join(t.TempDir(), "missing.json")}, strings.NewReader(""), &out)
	assert.Error(t, err)

	err = run(context.Background(), cfg, logger.Nop(), options{input: "-", date: "15/03/2024"}, strings.NewReader(order), &out)
	assert.ErrorContains(t, err, "parse -date")

	err = run(context.Background(), cfg, logger.Nop(), options{input: "-", batch: true}, strings.NewReader(order), &out)
	assert.ErrorContains(t, err, "decode batch")
}
