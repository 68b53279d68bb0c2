package types

import (
	"bytes"
	"fmt"
)

// GSTTable maps a rate category name ("nil", "low", "standard", ...) to its
// percentage rate.
type GSTTable map[string]float64

// CurrencyPair is an ordered (from, to) pair of ISO currency codes. Only
// pairs explicitly present in a ForexTable are convertible; no cross rate
// is ever derived through a common base currency.
type CurrencyPair struct {
	From string
	To   string
}

// MarshalText renders the pair as "FROM/TO" so a ForexTable can serve as a
// JSON map key.
func (p CurrencyPair) MarshalText() ([]byte, error) {
	return []byte(p.From + "/" + p.To), nil
}

// UnmarshalText parses the "FROM/TO" form produced by MarshalText.
func (p *CurrencyPair) UnmarshalText(text []byte) error {
	from, to, ok := bytes.Cut(text, []byte("/"))
	if !ok || len(from) == 0 || len(to) == 0 {
		return fmt.Errorf("invalid currency pair %q", text)
	}
	p.From = string(from)
	p.To = string(to)
	return nil
}

// ForexTable maps an ordered currency pair to its exchange rate.
type ForexTable map[CurrencyPair]float64

// Rates groups every market rate table the engines consume. It is built
// once from configuration at startup and treated as read-only afterwards;
// engine functions receive it (or one of its tables) explicitly rather
// than reading shared state.
type Rates struct {
	// IncomeTax maps a regime name ("old", "new") to its slab table.
	IncomeTax map[string]SlabTable

	// GST holds the category rate table for goods-and-services tax.
	GST GSTTable

	// Forex holds directional exchange rates.
	Forex ForexTable

	// Interest holds reference lending and deposit rates keyed by a
	// short name (repo_rate, mclr, savings_rate, ...). Display data for
	// the shell; the engines never read it.
	Interest map[string]float64
}

// Validate checks every slab table and rejects empty GST or forex tables.
func (r Rates) Validate() error {
	if len(r.IncomeTax) == 0 {
		return ErrEmptyTable
	}
	for _, t := range r.IncomeTax {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	if len(r.GST) == 0 {
		return ErrEmptyTable
	}
	for _, rate := range r.GST {
		if rate < 0 {
			return ErrSlabRate
		}
	}
	if len(r.Forex) == 0 {
		return ErrEmptyTable
	}
	return nil
}
