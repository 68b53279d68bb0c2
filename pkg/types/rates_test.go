package types

import (
	"encoding/json"
	"testing"
)

func TestCurrencyPairText(t *testing.T) {
	text, err := CurrencyPair{From: "USD", To: "INR"}.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "USD/INR" {
		t.Fatalf("expected USD/INR, got %s", text)
	}

	var p CurrencyPair
	if err := p.UnmarshalText([]byte("EUR/INR")); err != nil {
		t.Fatal(err)
	}
	if p.From != "EUR" || p.To != "INR" {
		t.Fatalf("expected EUR/INR, got %+v", p)
	}

	for _, bad := range []string{"USDINR", "/INR", "USD/", ""} {
		if err := p.UnmarshalText([]byte(bad)); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestRatesJSONRoundTrip(t *testing.T) {
	rates := Rates{
		IncomeTax: map[string]SlabTable{
			"new": {{UpTo: 300000, RatePercent: 0}, {UpTo: 0, RatePercent: 30}},
		},
		GST: GSTTable{"standard": 18},
		Forex: ForexTable{
			{From: "USD", To: "INR"}: 82.50,
			{From: "EUR", To: "INR"}: 89.75,
		},
		Interest: map[string]float64{"ppf_rate": 7.10},
	}

	data, err := json.Marshal(rates)
	if err != nil {
		t.Fatalf("marshal of Rates failed: %v", err)
	}

	var got Rates
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Forex[CurrencyPair{From: "USD", To: "INR"}] != 82.50 {
		t.Fatalf("forex table did not survive the round trip: %+v", got.Forex)
	}
	if len(got.Forex) != 2 {
		t.Fatalf("expected 2 forex pairs, got %d", len(got.Forex))
	}
	if got.GST["standard"] != 18 {
		t.Fatalf("GST table did not survive the round trip: %+v", got.GST)
	}
}
