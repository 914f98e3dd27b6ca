package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-lineitems/pkg/config"
)

func setCompanyEnv(t *testing.T, state, gstin string) {
	t.Helper()
	t.Setenv("COMPANY_STATE", state)
	t.Setenv("COMPANY_GSTIN", gstin)
}

func TestLoad_Defaults(t *testing.T) {
	setCompanyEnv(t, "Punjab", "03AAACP1234A1ZF")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "INV", cfg.Invoice.Prefix)
	assert.Equal(t, "default", cfg.Invoice.ShopDomain)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, "Punjab", cfg.Company.State)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setCompanyEnv(t, "Maharashtra", " 27aapfu0939f1zv ")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("INVOICE_PREFIX", "MH")
	t.Setenv("SHOP_DOMAIN", "kurta-house.myshopify.com")
	t.Setenv("BATCH_WORKERS", "8")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "27AAPFU0939F1ZV", cfg.Company.GSTIN, "GSTIN is normalised to upper case")
	assert.Equal(t, "MH", cfg.Invoice.Prefix)
	assert.Equal(t, "kurta-house.myshopify.com", cfg.Invoice.ShopDomain)
	assert.Equal(t, 8, cfg.Batch.Workers)
}

func TestLoad_RejectsInvalidCompany(t *testing.T) {
	tests := []struct {
		name  string
		state string
		gstin string
	}{
		{"missing GSTIN", "Punjab", ""},
		{"bad check character", "Punjab", "03AAACP1234A1ZG"},
		{"unknown state", "Neverland", "03AAACP1234A1ZF"},
		{"state and GSTIN disagree", "Delhi", "03AAACP1234A1ZF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setCompanyEnv(t, tt.state, tt.gstin)
			_, err := config.Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_RejectsBadWorkers(t *testing.T) {
	setCompanyEnv(t, "Punjab", "03AAACP1234A1ZF")
	t.Setenv("BATCH_WORKERS", "0")
	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
