// Command gstcalc classifies commerce orders for GST invoicing.
//
// It reads one JSON order (or, with -batch, a JSON array of orders) from a file
// or stdin and prints the taxed line items as JSON. Company identity comes from
// the environment (COMPANY_STATE, COMPANY_GSTIN, ...).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/gst-lineitems/internal/application/dto"
	"github.com/jhoicas/gst-lineitems/internal/application/invoicing"
	"github.com/jhoicas/gst-lineitems/internal/domain/entity"
	"github.com/jhoicas/gst-lineitems/internal/domain/gst"
	"github.com/jhoicas/gst-lineitems/pkg/config"
	"github.com/jhoicas/gst-lineitems/pkg/logger"
)

type options struct {
	input   string
	hsnFile string
	shop    string
	date    string
	batch   bool
	summary bool
}

func main() {
	var opts options
	flag.StringVar(&opts.input, "in", "-", "order JSON file, - for stdin")
	flag.StringVar(&opts.hsnFile, "hsn", "", "optional JSON object mapping SKU to HSN code")
	flag.StringVar(&opts.shop, "shop", "", "shop domain (default SHOP_DOMAIN)")
	flag.StringVar(&opts.date, "date", "", "invoice date YYYY-MM-DD (default today)")
	flag.BoolVar(&opts.batch, "batch", false, "input is a JSON array of orders")
	flag.BoolVar(&opts.summary, "summary", false, "print an en-IN formatted summary instead of JSON")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load configuration:", err)
		os.Exit(2)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("company_state", cfg.Company.State).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, opts, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("gstcalc failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, opts options, stdin io.Reader, stdout io.Writer) error {
	raw, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}

	var resolver invoicing.HSNResolver
	if opts.hsnFile != "" {
		bySKU, err := readCatalog(opts.hsnFile)
		if err != nil {
			return err
		}
		resolver = invoicing.NewCatalogHSNResolver(bySKU, nil)
	}

	invoiceDate := time.Time{}
	if opts.date != "" {
		invoiceDate, err = time.Parse("2006-01-02", opts.date)
		if err != nil {
			return fmt.Errorf("parse -date: %w", err)
		}
	}
	shop := opts.shop
	if shop == "" {
		shop = cfg.Invoice.ShopDomain
	}

	profile := entity.CompanyTaxProfile{Name: cfg.Company.Name, State: cfg.Company.State, GSTIN: cfg.Company.GSTIN}
	uc, err := invoicing.NewTransformOrderUseCase(
		gst.NewEngine(),
		invoicing.NewMemoryLineItemStore(),
		invoicing.NewUUIDAllocator(cfg.Invoice.Prefix),
		resolver,
		profile,
		log,
	)
	if err != nil {
		return err
	}

	if !opts.batch {
		res, err := uc.Execute(ctx, dto.TransformOrderRequest{Shop: shop, Order: raw, InvoiceDate: invoiceDate})
		if err != nil {
			return err
		}
		if opts.summary {
			return writeSummary(stdout, cfg.Company, []dto.TransformOrderResponse{*res}, nil)
		}
		return writeJSON(stdout, res)
	}

	var orders []json.RawMessage
	if err := json.Unmarshal(raw, &orders); err != nil {
		return fmt.Errorf("decode batch: %w", err)
	}
	reqs := make([]dto.TransformOrderRequest, len(orders))
	for i, o := range orders {
		reqs[i] = dto.TransformOrderRequest{Shop: shop, Order: o, InvoiceDate: invoiceDate}
	}
	res, err := invoicing.NewBatchTransformUseCase(uc, cfg.Batch.Workers, log).ExecuteAll(ctx, reqs)
	if err != nil {
		return err
	}
	if opts.summary {
		return writeSummary(stdout, cfg.Company, res.Results, res.Failures)
	}
	return writeJSON(stdout, res)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

func readCatalog(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hsn catalogue: %w", err)
	}
	var bySKU map[string]string
	if err := json.Unmarshal(b, &bySKU); err != nil {
		return nil, fmt.Errorf("decode hsn catalogue %s: %w", path, err)
	}
	return bySKU, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
