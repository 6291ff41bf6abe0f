package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CUPCAKE_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "2.00", cfg.Pricing.UnitPrice)
	require.Equal(t, "$", cfg.Pricing.CurrencySymbol)
	require.Equal(t, "en", cfg.UI.Locale)
	require.Equal(t, "Mon Jan 2", cfg.UI.DateFormat)
	require.Equal(t, 4, cfg.UI.PickupDays)
	require.Equal(t, 150*time.Millisecond, cfg.UI.TransitionDelay)
	require.Equal(t, "file", cfg.Share.Target)
	require.Equal(t, "info", cfg.Log.Level)

	rule, err := cfg.Pricing.Rule()
	require.NoError(t, err)
	require.Equal(t, "3.00", rule.SameDaySurcharge.StringFixed(2))
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[pricing]
unit_price = "2.50"
currency_symbol = "€"

[ui]
locale = "es"
pickup_days = 40
transition_delay = "0s"

[share]
target = "command"
command = "mail -s {subject} orders@example.com"
`), 0o644))
	t.Setenv("CUPCAKE_SHARE_TARGET", "none")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "2.50", cfg.Pricing.UnitPrice)
	require.Equal(t, "3.00", cfg.Pricing.SameDaySurcharge)
	require.Equal(t, "€", cfg.Pricing.CurrencySymbol)
	require.Equal(t, "es", cfg.UI.Locale)
	require.Equal(t, 4, cfg.UI.PickupDays, "out-of-range pickup days fall back to the default")
	require.Equal(t, time.Duration(0), cfg.UI.TransitionDelay)
	require.Equal(t, "none", cfg.Share.Target)
	require.Equal(t, "mail -s {subject} orders@example.com", cfg.Share.Command)
}

func TestLoadRejectsBadPrice(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[pricing]\nunit_price = \"two dollars\"\n"), 0o644))

	_, err := LoadFile(path)
	require.ErrorContains(t, err, "pricing.unit_price")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestNegativePriceRejected(t *testing.T) {
	_, err := PricingConfig{UnitPrice: "-1", SameDaySurcharge: "3"}.Rule()
	require.Error(t, err)
}

func TestLoadKeyOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[keys]\nsend = [\"ctrl+s\", \"S\"]\ncancel = []\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"ctrl+s", "S"}, cfg.Keys["send"])
	_, ok := cfg.Keys["cancel"]
	require.False(t, ok, "empty key lists keep the defaults")
}
