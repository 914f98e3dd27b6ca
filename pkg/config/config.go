package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jhoicas/gst-lineitems/pkg/gst"
)

// Config groups the application settings (read through Viper from env vars and optional files).
type Config struct {
	App     AppConfig
	Company CompanyConfig
	Invoice InvoiceConfig
	Batch   BatchConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env      string `validate:"oneof=development staging production"`
	Name     string `validate:"required"`
	LogLevel string `validate:"oneof=trace debug info warn error"`
}

// CompanyConfig is the supplier's GST identity stamped on every invoice line.
type CompanyConfig struct {
	Name  string `validate:"max=200"`
	State string `validate:"required,gststate"` // display name, exactly as in the state table
	GSTIN string `validate:"required,gstin"`
}

// InvoiceConfig settings for the default invoice identity allocator.
type InvoiceConfig struct {
	Prefix     string `validate:"required,max=10"`
	ShopDomain string `validate:"required"` // partition key of the persisted line items
}

// BatchConfig bounded parallelism for batch transformation.
type BatchConfig struct {
	Workers int `validate:"min=1,max=256"`
}

// Load reads the configuration from environment variables (and optionally from file).
// Env vars take precedence. Expected names: APP_ENV, COMPANY_STATE, COMPANY_GSTIN, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional configuration file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // a missing file is not an error

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "gst-lineitems"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Company: CompanyConfig{
			Name:  getString(v, "COMPANY_NAME", ""),
			State: getString(v, "COMPANY_STATE", ""),
			GSTIN: strings.ToUpper(strings.TrimSpace(getString(v, "COMPANY_GSTIN", ""))),
		},
		Invoice: InvoiceConfig{
			Prefix:     getString(v, "INVOICE_PREFIX", "INV"),
			ShopDomain: getString(v, "SHOP_DOMAIN", "default"),
		},
		Batch: BatchConfig{
			Workers: getInt(v, "BATCH_WORKERS", 4),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags and the consistency between company state and GSTIN.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	stateCode, _ := gst.StateCode(c.Company.State)
	gstinCode, _ := gst.StateCodeFromGSTIN(c.Company.GSTIN)
	if stateCode != gstinCode {
		return fmt.Errorf("%w: COMPANY_STATE %q (code %s) does not match the GSTIN state code %s",
			ErrInvalidConfig, c.Company.State, stateCode, gstinCode)
	}
	return nil
}

// ErrInvalidConfig is returned (wrapped) when validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		return gst.ValidateGSTIN(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("gststate", func(fl validator.FieldLevel) bool {
		_, ok := gst.StateCode(fl.Field().String())
		return ok
	})
	return v
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
