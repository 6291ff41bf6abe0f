package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jask/cupcake/internal/order"
)

// Config holds application configuration.
type Config struct {
	Pricing PricingConfig
	UI      UIConfig
	Share   ShareConfig
	Log     LogConfig
	// Keys maps an action name to replacement keys, e.g. send = ["ctrl+s"].
	Keys map[string][]string
}

// PricingConfig holds the price rule constants as decimal strings.
type PricingConfig struct {
	UnitPrice        string `mapstructure:"unit_price"`
	SameDaySurcharge string `mapstructure:"same_day_surcharge"`
	CurrencySymbol   string `mapstructure:"currency_symbol"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale          string
	DateFormat      string        `mapstructure:"date_format"`
	PickupDays      int           `mapstructure:"pickup_days"`
	TransitionDelay time.Duration `mapstructure:"transition_delay"`
}

// ShareConfig selects where Send delivers the order.
type ShareConfig struct {
	Target  string
	Command string
	File    string
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string
	Level string
}

const maxPickupDays = 14

// Load reads configuration from file and env. Env var overrides use prefix CUPCAKE_.
func Load() (Config, error) {
	return LoadFile(os.Getenv("CUPCAKE_CONFIG"))
}

// LoadFile reads configuration from path, or from the default location when
// path is empty. A missing default file is not an error.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	home := os.Getenv("HOME")

	v.SetDefault("pricing.unit_price", "2.00")
	v.SetDefault("pricing.same_day_surcharge", "3.00")
	v.SetDefault("pricing.currency_symbol", "$")
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.date_format", order.DefaultDateLayout)
	v.SetDefault("ui.pickup_days", order.DefaultPickupDays)
	v.SetDefault("ui.transition_delay", "150ms")
	v.SetDefault("share.target", "file")
	v.SetDefault("share.command", "")
	v.SetDefault("share.file", filepath.Join(home, ".local", "share", "cupcake", "outbox.txt"))
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "cupcake", "cupcake.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "cupcake"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CUPCAKE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := c.Pricing.Rule(); err != nil {
		return Config{}, err
	}
	if c.UI.PickupDays <= 0 || c.UI.PickupDays > maxPickupDays {
		c.UI.PickupDays = order.DefaultPickupDays
	}
	if strings.TrimSpace(c.UI.DateFormat) == "" {
		c.UI.DateFormat = order.DefaultDateLayout
	}
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			delete(c.Keys, action)
		}
	}
	if c.UI.TransitionDelay < 0 {
		c.UI.TransitionDelay = 0
	}
	return c, nil
}

// Rule parses the configured prices.
func (p PricingConfig) Rule() (order.Pricing, error) {
	unit, err := decimal.NewFromString(strings.TrimSpace(p.UnitPrice))
	if err != nil {
		return order.Pricing{}, fmt.Errorf("pricing.unit_price %q: %w", p.UnitPrice, err)
	}
	surcharge, err := decimal.NewFromString(strings.TrimSpace(p.SameDaySurcharge))
	if err != nil {
		return order.Pricing{}, fmt.Errorf("pricing.same_day_surcharge %q: %w", p.SameDaySurcharge, err)
	}
	if unit.IsNegative() || surcharge.IsNegative() {
		return order.Pricing{}, fmt.Errorf("pricing: prices must not be negative")
	}
	return order.Pricing{UnitPrice: unit, SameDaySurcharge: surcharge}, nil
}
