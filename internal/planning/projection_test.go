package planning

import (
	"math"
	"testing"
)

func TestProject(t *testing.T) {
	t.Run("returns_one_point_per_year", func(t *testing.T) {
		points := Project(1000, 100, 8, 30)
		if len(points) != 30 {
			t.Fatalf("expected 30 points, got %d", len(points))
		}
		for i, p := range points {
			if p.Year != i+1 {
				t.Errorf("point %d: expected year %d, got %d", i, i+1, p.Year)
			}
		}
	})

	t.Run("non_decreasing_with_non_negative_inputs", func(t *testing.T) {
		points := Project(5000, 250, 10, 40)
		prev := 0.0
		for _, p := range points {
			if p.ProjectedValue < prev {
				t.Fatalf("year %d: value %.2f dropped below %.2f", p.Year, p.ProjectedValue, prev)
			}
			prev = p.ProjectedValue
		}
	})

	t.Run("matches_iterative_recurrence", func(t *testing.T) {
		// Independent computation of the same recurrence: deposit first,
		// grow after, per month.
		monthlyRate := math.Pow(1.12, 1.0/12) - 1
		value := 1000.0
		for month := 0; month < 12; month++ {
			value = (value + 100) * (1 + monthlyRate)
		}

		points := Project(1000, 100, 12, 1)
		if len(points) != 1 {
			t.Fatalf("expected 1 point, got %d", len(points))
		}
		if diff := math.Abs(points[0].ProjectedValue - value); diff > 0.005 {
			t.Errorf("expected projected value within 2dp of %.4f, got %.2f", value, points[0].ProjectedValue)
		}
	})

	t.Run("values_rounded_to_two_decimals", func(t *testing.T) {
		points := Project(1234.56, 78.9, 7.3, 5)
		for _, p := range points {
			scaled := p.ProjectedValue * 100
			if math.Abs(scaled-math.Round(scaled)) > 1e-6 {
				t.Errorf("year %d: value %v not rounded to 2 decimals", p.Year, p.ProjectedValue)
			}
		}
	})

	t.Run("zero_rate_accumulates_contributions", func(t *testing.T) {
		points := Project(0, 100, 0, 2)
		if points[0].ProjectedValue != 1200 {
			t.Errorf("expected 1200 after year 1, got %.2f", points[0].ProjectedValue)
		}
		if points[1].ProjectedValue != 2400 {
			t.Errorf("expected 2400 after year 2, got %.2f", points[1].ProjectedValue)
		}
	})

	t.Run("horizon_bounds", func(t *testing.T) {
		if got := Project(100, 10, 5, 0); got != nil {
			t.Errorf("expected nil for zero years, got %d points", len(got))
		}
		if got := Project(100, 10, 5, 500); len(got) != MaxYears {
			t.Errorf("expected horizon clamped to %d years, got %d", MaxYears, len(got))
		}
	})
}
