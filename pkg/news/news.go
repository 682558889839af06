// Package news carries media coverage analyses and folds them into the
// per-legislator news impact figure used by the scoring engine.
package news

import (
	"context"
	"time"

	"github.com/montanaflynn/stats"
)

// Analysis is one analyzed news item about a legislator. Impact is on a
// 0-10 scale; Sentiment runs -1 (negative) to 1 (positive).
type Analysis struct {
	LegislatorID string
	Title        string
	URL          string
	Source       string
	Summary      string
	Sentiment    float64
	Impact       float64
	Keywords     []string
	CreatedAt    time.Time
}

// DefaultImpact is the neutral impact assigned when a legislator has no
// analyses. It matches the scoring engine's fallback so that a legislator
// with no coverage and one with exactly neutral coverage score the same.
const DefaultImpact = 5.0

// Analyzer produces analyses for a legislator from an external source,
// typically a model API. Implementations live outside this module; the
// pipeline only consumes the records.
type Analyzer interface {
	Analyze(ctx context.Context, legislatorID, displayName string) ([]Analysis, error)
}

// ImpactAverage returns the mean impact of the given analyses, or
// DefaultImpact when there are none.
func ImpactAverage(analyses []Analysis) float64 {
	if len(analyses) == 0 {
		return DefaultImpact
	}
	impacts := make([]float64, len(analyses))
	for i, a := range analyses {
		impacts[i] = a.Impact
	}
	mean, err := stats.Mean(impacts)
	if err != nil {
		return DefaultImpact
	}
	return mean
}

// AverageByLegislator groups analyses by legislator and averages each
// group. Legislators absent from the input are simply absent from the
// result; callers fall back to DefaultImpact for them.
func AverageByLegislator(analyses []Analysis) map[string]float64 {
	grouped := make(map[string][]float64)
	for _, a := range analyses {
		if a.LegislatorID == "" {
			continue
		}
		grouped[a.LegislatorID] = append(grouped[a.LegislatorID], a.Impact)
	}

	averages := make(map[string]float64, len(grouped))
	for id, impacts := range grouped {
		mean, err := stats.Mean(impacts)
		if err != nil {
			mean = DefaultImpact
		}
		averages[id] = mean
	}
	return averages
}
