package stats

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/courtside/hoopstats/internal/provider"
)

const (
	metersPerInch   = 0.0254
	poundsPerKilo   = 2.2046
	notFoundDisplay = "Not found"
)

// Measure is a derived metric value that may be missing from the source data.
// The zero value is "not found".
type Measure struct {
	Value float64
	Found bool
}

// found wraps a known value.
func found(v float64) Measure { return Measure{Value: v, Found: true} }

// String renders the value with two decimals, or "Not found".
func (m Measure) String() string {
	if !m.Found {
		return notFoundDisplay
	}
	return strconv.FormatFloat(m.Value, 'f', 2, 64)
}

// MarshalJSON encodes a missing measure as null.
func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.Found {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// Height returns the player's height in meters rounded to two decimals. It is
// not found only when both feet and inches are missing; a single missing
// component counts as zero.
func Height(p provider.Player) Measure {
	if p.HeightFeet == nil && p.HeightInches == nil {
		return Measure{}
	}
	inches := valueOr(p.HeightFeet)*12 + valueOr(p.HeightInches)
	return found(round2(float64(inches) * metersPerInch))
}

// Weight returns the player's weight in kilograms rounded to two decimals.
func Weight(p provider.Player) Measure {
	if p.WeightPounds == nil {
		return Measure{}
	}
	return found(round2(float64(*p.WeightPounds) / poundsPerKilo))
}

func valueOr(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
