package planning

import "github.com/shopspring/decimal"

// Buckets holds the score cutoffs used to classify clients by planning
// alignment. The boundaries are a product policy, kept configurable rather
// than inlined at call sites.
type Buckets struct {
	High float64
	Mid  float64
	Low  float64
}

// DefaultBuckets is the standard alignment classification policy.
var DefaultBuckets = Buckets{High: 90, Mid: 70, Low: 50}

// DistributionReport gives each bucket's share of scored clients as a
// whole percentage.
type DistributionReport struct {
	AboveHigh     int `json:"above_high"`
	MidToHigh     int `json:"mid_to_high"`
	LowToMid      int `json:"low_to_mid"`
	BelowLow      int `json:"below_low"`
	ScoredClients int `json:"scored_clients"`
}

// SummaryReport is the mean alignment score across scored clients.
type SummaryReport struct {
	AverageScore int `json:"average_score"`
	ClientCount  int `json:"client_count"`
}

// Score compares a client's actual allocation percentages against the
// ideal targets, both keyed by asset class. For each target class the
// absolute percentage-point gap is taken (missing actual counts as zero);
// the score is 100 minus the average gap.
//
// A client with no ideal targets cannot be scored and reports ok=false;
// such clients are excluded from distribution and summary aggregates.
func Score(actual, targets map[string]float64) (score float64, ok bool) {
	if len(targets) == 0 {
		return 0, false
	}

	var totalGap float64
	for class, target := range targets {
		gap := actual[class] - target
		if gap < 0 {
			gap = -gap
		}
		totalGap += gap
	}
	avgMisalignment := totalGap / float64(len(targets))
	return 100 - avgMisalignment, true
}

// Distribute classifies each score into exactly one bucket and reports
// bucket shares as round-half-up percentages of the scored count.
func Distribute(scores []float64, b Buckets) DistributionReport {
	report := DistributionReport{ScoredClients: len(scores)}
	if len(scores) == 0 {
		return report
	}

	var aboveHigh, midToHigh, lowToMid, belowLow int
	for _, s := range scores {
		switch {
		case s > b.High:
			aboveHigh++
		case s >= b.Mid:
			midToHigh++
		case s >= b.Low:
			lowToMid++
		default:
			belowLow++
		}
	}

	total := len(scores)
	report.AboveHigh = roundPct(aboveHigh, total)
	report.MidToHigh = roundPct(midToHigh, total)
	report.LowToMid = roundPct(lowToMid, total)
	report.BelowLow = roundPct(belowLow, total)
	return report
}

// Summarize returns the round-half-up mean of the given scores along with
// the number of clients included.
func Summarize(scores []float64) SummaryReport {
	if len(scores) == 0 {
		return SummaryReport{}
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))
	return SummaryReport{
		AverageScore: roundInt(mean),
		ClientCount:  len(scores),
	}
}

// roundPct returns count/total as a whole percentage, rounded half up.
func roundPct(count, total int) int {
	return roundInt(float64(count) / float64(total) * 100)
}

// roundInt rounds half away from zero to the nearest integer. Scores and
// shares are non-negative here, so this matches round-half-up.
func roundInt(v float64) int {
	return int(decimal.NewFromFloat(v).Round(0).IntPart())
}
