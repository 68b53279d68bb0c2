package types

import (
	"errors"
	"math"
	"testing"
)

func TestSlabBound(t *testing.T) {
	if got := (Slab{UpTo: 250000}).Bound(); got != 250000 {
		t.Fatalf("expected 250000, got %v", got)
	}
	if got := (Slab{UpTo: 0}).Bound(); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for unbounded slab, got %v", got)
	}
}

func TestSlabTableValidate(t *testing.T) {
	tests := []struct {
		name  string
		table SlabTable
		want  error
	}{
		{
			name: "valid bounded table",
			table: SlabTable{
				{UpTo: 250000, RatePercent: 0},
				{UpTo: 500000, RatePercent: 5},
				{UpTo: 1000000, RatePercent: 30},
			},
		},
		{
			name: "valid table with unbounded tail",
			table: SlabTable{
				{UpTo: 300000, RatePercent: 0},
				{UpTo: 0, RatePercent: 30},
			},
		},
		{
			name:  "empty table",
			table: SlabTable{},
			want:  ErrEmptyTable,
		},
		{
			name: "non-increasing bounds",
			table: SlabTable{
				{UpTo: 500000, RatePercent: 5},
				{UpTo: 250000, RatePercent: 20},
			},
			want: ErrSlabOrder,
		},
		{
			name: "unbounded slab not last",
			table: SlabTable{
				{UpTo: 0, RatePercent: 0},
				{UpTo: 500000, RatePercent: 5},
			},
			want: ErrSlabOrder,
		},
		{
			name: "negative rate",
			table: SlabTable{
				{UpTo: 250000, RatePercent: -1},
			},
			want: ErrSlabRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRatesValidate(t *testing.T) {
	valid := Rates{
		IncomeTax: map[string]SlabTable{
			"new": {{UpTo: 300000, RatePercent: 0}, {UpTo: 0, RatePercent: 30}},
		},
		GST:   GSTTable{"standard": 18},
		Forex: ForexTable{{From: "USD", To: "INR"}: 82.50},
	}
	if err := valid.Validate(); err != nil {
		t.Fatal(err)
	}

	noTax := valid
	noTax.IncomeTax = nil
	if err := noTax.Validate(); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}

	badGST := valid
	badGST.GST = GSTTable{"standard": -18}
	if err := badGST.Validate(); !errors.Is(err, ErrSlabRate) {
		t.Fatalf("expected ErrSlabRate, got %v", err)
	}

	noForex := valid
	noForex.Forex = nil
	if err := noForex.Validate(); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}
}
