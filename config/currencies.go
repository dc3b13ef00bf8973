package config

import (
	"fmt"
	"os"
	"strings"

	"game-economy/pkg/economy"

	"gopkg.in/yaml.v3"
)

// currencyCatalog is the layout of economy.currency_file.
type currencyCatalog struct {
	Currencies []economy.Currency `yaml:"currencies"`
}

// LoadCurrencyCatalog reads a YAML currency catalog:
//
//	currencies:
//	  - name: gem
//	    singular: Gem
//	    plural: Gems
//	    fractional_digits: 0
func LoadCurrencyCatalog(path string) ([]economy.Currency, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading currency catalog: %w", err)
	}

	var catalog currencyCatalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("parsing currency catalog: %w", err)
	}

	for i, c := range catalog.Currencies {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("currency catalog entry %d has no name", i)
		}
		if c.FractionalDigits < economy.NoRounding {
			return nil, fmt.Errorf("currency %q: fractional_digits must be >= %d", c.Name, economy.NoRounding)
		}
	}
	return catalog.Currencies, nil
}

// MergeCurrencies returns base with every entry of overrides applied.
// Entries are matched by case-insensitive name; new names are appended.
func MergeCurrencies(base, overrides []economy.Currency) []economy.Currency {
	out := make([]economy.Currency, 0, len(base)+len(overrides))
	index := make(map[string]int, len(base)+len(overrides))
	for _, c := range append(append([]economy.Currency{}, base...), overrides...) {
		key := strings.ToLower(c.Name)
		if i, ok := index[key]; ok {
			out[i] = c
			continue
		}
		index[key] = len(out)
		out = append(out, c)
	}
	return out
}
