// Package planning holds the pure domain logic of the API: compound-growth
// projections and wallet-alignment scoring. Nothing in this package touches
// the database or the HTTP layer.
package planning

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxYears bounds the projection horizon so a single request cannot ask
// for unbounded work.
const MaxYears = 100

// DataPoint is one projected year-end value of a simulation.
type DataPoint struct {
	Year           int
	ProjectedValue float64
}

// Project computes a monthly-compounded growth trajectory and returns one
// data point per completed year, each rounded to two decimal places.
//
// The annual rate (in percent) is converted to an effective monthly rate,
// and within each month the contribution is deposited before growth is
// applied. This deposit-then-grow ordering is part of the numeric contract:
// persisted simulations must be reproducible from the same inputs.
func Project(initialValue, monthlyContribution, annualRatePct float64, years int) []DataPoint {
	if years < 1 {
		return nil
	}
	if years > MaxYears {
		years = MaxYears
	}

	monthlyRate := math.Pow(1+annualRatePct/100, 1.0/12) - 1

	points := make([]DataPoint, 0, years)
	value := initialValue
	for year := 1; year <= years; year++ {
		for month := 1; month <= 12; month++ {
			value = (value + monthlyContribution) * (1 + monthlyRate)
		}
		points = append(points, DataPoint{
			Year:           year,
			ProjectedValue: round2(value),
		})
	}
	return points
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
