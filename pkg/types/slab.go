package types

import "math"

// Slab is one bracket of a progressive tax table. The marginal rate applies
// to the portion of income strictly between the previous slab's bound and
// UpTo. UpTo == 0 on the final slab marks it unbounded.
type Slab struct {
	UpTo        float64 `json:"up_to" mapstructure:"up_to"`
	RatePercent float64 `json:"rate" mapstructure:"rate"`
}

// Bound returns the effective upper bound of the slab, substituting +Inf
// for the unbounded sentinel.
func (s Slab) Bound() float64 {
	if s.UpTo == 0 {
		return math.Inf(1)
	}
	return s.UpTo
}

// SlabTable is an ordered sequence of slabs with strictly increasing bounds.
type SlabTable []Slab

// Validate checks that the table is non-empty, that bounds strictly
// increase, that only the last slab may be unbounded, and that rates are
// non-negative.
func (t SlabTable) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}
	prev := 0.0
	for i, s := range t {
		if s.UpTo == 0 && i != len(t)-1 {
			return ErrSlabOrder
		}
		if s.Bound() <= prev {
			return ErrSlabOrder
		}
		if s.RatePercent < 0 {
			return ErrSlabRate
		}
		prev = s.Bound()
	}
	return nil
}
