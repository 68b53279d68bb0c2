// Config loading for the fincalc CLI. The config file carries the market
// rate tables (income-tax slabs, GST categories, forex rates, reference
// interest rates) alongside the data directory override; the tables are
// loaded once at startup and never mutated afterwards.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dukaforge/fincalc/internal/paths"
	"github.com/dukaforge/fincalc/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir   = "data_dir"
	cfgKeyIncomeTax = "tax.income_tax"
	cfgKeyGST       = "tax.gst"
	cfgKeyForex     = "forex"
	cfgKeyInterest  = "interest_rates"
)

// defaultConfigYAML is the content written to config.yaml on first run.
// The shipped tables mirror the FY 2023-24 Indian market defaults.
const defaultConfigYAML = `# fincalc configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

tax:
  income_tax:
    old:
      - up_to: 250000
        rate: 0
      - up_to: 500000
        rate: 5
      - up_to: 750000
        rate: 20
      - up_to: 1000000
        rate: 30
    new:
      - up_to: 300000
        rate: 0
      - up_to: 600000
        rate: 5
      - up_to: 900000
        rate: 10
      - up_to: 1200000
        rate: 15
      - up_to: 1500000
        rate: 20
      - up_to: 0 # unbounded
        rate: 30
  gst:
    nil: 0
    low: 5
    medium: 12
    standard: 18
    high: 28

# Directional exchange rates; only listed pairs are convertible.
forex:
  - from: USD
    to: INR
    rate: 82.50
  - from: EUR
    to: INR
    rate: 89.75
  - from: GBP
    to: INR
    rate: 104.25
  - from: JPY
    to: INR
    rate: 0.55

# Reference rates, display only.
interest_rates:
  repo_rate: 6.50
  reverse_repo_rate: 3.35
  crr: 4.50
  slr: 18.00
  mclr: 8.50
  base_rate: 8.75
  savings_rate: 3.50
  ppf_rate: 7.10
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// forexEntry is the config-file shape of one exchange rate.
type forexEntry struct {
	From string  `mapstructure:"from"`
	To   string  `mapstructure:"to"`
	Rate float64 `mapstructure:"rate"`
}

// buildRates assembles and validates the immutable rate tables from the
// loaded configuration.
func buildRates(v *viper.Viper) (types.Rates, error) {
	var rates types.Rates

	var regimes map[string]types.SlabTable
	if err := v.UnmarshalKey(cfgKeyIncomeTax, &regimes); err != nil {
		return rates, fmt.Errorf("parse income tax slabs: %w", err)
	}
	rates.IncomeTax = regimes

	var gst types.GSTTable
	if err := v.UnmarshalKey(cfgKeyGST, &gst); err != nil {
		return rates, fmt.Errorf("parse GST table: %w", err)
	}
	rates.GST = gst

	var forex []forexEntry
	if err := v.UnmarshalKey(cfgKeyForex, &forex); err != nil {
		return rates, fmt.Errorf("parse forex table: %w", err)
	}
	rates.Forex = make(types.ForexTable, len(forex))
	for _, fe := range forex {
		rates.Forex[types.CurrencyPair{From: fe.From, To: fe.To}] = fe.Rate
	}

	var interest map[string]float64
	if err := v.UnmarshalKey(cfgKeyInterest, &interest); err != nil {
		return rates, fmt.Errorf("parse interest rates: %w", err)
	}
	rates.Interest = interest

	if err := rates.Validate(); err != nil {
		return rates, err
	}
	return rates, nil
}

// resolveDataDir returns the data directory path following the precedence
// flag > config.yaml data_dir > FINCALC_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence flag > FINCALC_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
