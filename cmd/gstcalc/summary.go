package main

import (
	"io"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/gst-lineitems/internal/application/dto"
	"github.com/jhoicas/gst-lineitems/pkg/config"
	"github.com/jhoicas/gst-lineitems/pkg/gst"
)

var indianEnglish = language.MustParse("en-IN")

// writeSummary prints one block per invoice with amounts grouped the Indian way (1,23,456.78).
func writeSummary(w io.Writer, company config.CompanyConfig, results []dto.TransformOrderResponse, failures []dto.BatchFailure) error {
	p := message.NewPrinter(indianEnglish)
	code, _ := gst.StateCodeFromGSTIN(company.GSTIN)
	if _, err := p.Fprintf(w, "Supplier: %s (GSTIN %s, registered in %s)\n", company.Name, company.GSTIN, stateLabel(code, company.State)); err != nil {
		return err
	}
	for _, r := range results {
		t := r.Totals
		p.Fprintf(w, "\nInvoice %s  order %s  lines %d\n", r.InvoiceNumber, r.OrderNumber, t.Lines)
		if len(r.Lines) > 0 {
			head := r.Lines[0]
			p.Fprintf(w, "  Place of supply %s, %s\n", stateLabel(head.PlaceOfSupplyCode, head.PlaceOfSupply), head.TransactionType)
		}
		p.Fprintf(w, "  Taxable value  ₹%s\n", amount(p, t.TaxableValue))
		p.Fprintf(w, "  CGST           ₹%s\n", amount(p, t.CGST))
		p.Fprintf(w, "  SGST           ₹%s\n", amount(p, t.SGST))
		p.Fprintf(w, "  IGST           ₹%s\n", amount(p, t.IGST))
		p.Fprintf(w, "  Total          ₹%s\n", amount(p, t.GrandTotal))
		if r.Unresolved > 0 {
			p.Fprintf(w, "  %d line(s) without HSN code\n", r.Unresolved)
		}
	}
	for _, f := range failures {
		p.Fprintf(w, "\nOrder at position %d failed: %s\n", f.Position, f.Error)
	}
	return nil
}

// stateLabel renders "Name (code)" from the state table, or the raw name when the code is unresolved.
func stateLabel(code, raw string) string {
	if name, ok := gst.StateName(code); ok {
		return name + " (" + code + ")"
	}
	return raw + " (unresolved)"
}

func amount(p *message.Printer, d decimal.Decimal) string {
	return p.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}
