// Package scoring computes the role-aware fair score: weighted activity
// counts with procedural filtering already applied upstream, a ghost
// penalty for fully inactive legislators, and a bounded, explainable
// result.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/meclisdata/vekil/pkg/activity"
)

// RoleStrategy is the weighting regime applied to a legislator. It is a
// closed two-way classification: every party maps to exactly one of these,
// with no neutral bucket.
type RoleStrategy string

const (
	// Government legislators are expected to legislate; party discipline
	// suppresses independent oversight activity.
	Government RoleStrategy = "GOVERNMENT"

	// Opposition legislators are expected to conduct oversight; their
	// proposals structurally cannot pass.
	Opposition RoleStrategy = "OPPOSITION"
)

// Weights is a role's scoring weight table, applied linearly. The
// commission bonus has no weight: it is added as raw points for both roles.
type Weights struct {
	FirstSignature   float64
	SupportSignature float64
	Question         float64
	Research         float64
	PassedLawBonus   float64
	NewsWeight       float64
	GhostPenalty     float64
}

// GovernmentWeights rewards legislating over oversight.
var GovernmentWeights = Weights{
	FirstSignature:   15.0,
	SupportSignature: 3.0,
	Question:         0.5,
	Research:         2.0,
	PassedLawBonus:   20.0,
	NewsWeight:       1.0,
	GhostPenalty:     -15.0,
}

// OppositionWeights rewards oversight; passed-law credit is structurally
// unavailable.
var OppositionWeights = Weights{
	FirstSignature:   10.0,
	SupportSignature: 2.0,
	Question:         3.0,
	Research:         4.0,
	PassedLawBonus:   0.0,
	NewsWeight:       1.0,
	GhostPenalty:     -15.0,
}

// DefaultNewsImpact is the neutral news impact on the 0-10 scale, used
// whenever no analyses are available for a legislator.
const DefaultNewsImpact = 5.0

// governmentParties are the party labels (and label fragments) that map to
// the government strategy. Everything else is opposition.
var governmentParties = []string{
	"AKP", "MHP", "ADALET VE KALKINMA PARTİSİ", "MİLLİYETÇİ HAREKET PARTİSİ",
}

// PartyAlignments is the extension point for explicit party-to-strategy
// mappings, consulted before the substring fallback. Keys are compared in
// upper-cased form. Adding a future
// coalition bucket means touching this table and the weight registry, not
// the scoring logic.
var PartyAlignments = map[string]RoleStrategy{}

// StrategyFor selects the role strategy and weight table for a party label.
// The label is upper-cased and checked against PartyAlignments, then
// against the government set by exact membership or substring containment;
// all other labels, including empty ones, are opposition.
func StrategyFor(party string) (RoleStrategy, Weights) {
	upper := strings.ToUpper(strings.TrimSpace(party))

	if strategy, ok := PartyAlignments[upper]; ok {
		return strategy, weightsFor(strategy)
	}

	for _, gov := range governmentParties {
		if upper == gov || strings.Contains(upper, gov) {
			return Government, GovernmentWeights
		}
	}
	return Opposition, OppositionWeights
}

func weightsFor(strategy RoleStrategy) Weights {
	if strategy == Government {
		return GovernmentWeights
	}
	return OppositionWeights
}

// ImpactLabel buckets a score for display.
type ImpactLabel string

const (
	LabelGhost  ImpactLabel = "Ghost"
	LabelLow    ImpactLabel = "Low"
	LabelMedium ImpactLabel = "Medium"
	LabelHigh   ImpactLabel = "High"
)

// Result is one legislator's computed fair score. Results are recomputed
// from scratch on every pass; identical inputs always produce an identical
// Result.
type Result struct {
	LegislatorID string
	Score        float64
	Strategy     RoleStrategy
	Label        ImpactLabel
	Explanation  string

	// Raw inputs echoed for auditability.
	Inputs     activity.Inputs
	NewsImpact float64
}

// Score computes the fair score for one legislator. It never fails: any
// input combination yields a result, missing counts are zero and a
// non-positive news impact falls back to the neutral default.
func Score(legislatorID, party string, in activity.Inputs, newsImpact float64) Result {
	strategy, w := StrategyFor(party)

	if newsImpact <= 0 {
		newsImpact = DefaultNewsImpact
	}

	score := float64(in.FirstSignature)*w.FirstSignature +
		float64(in.SupportSignature)*w.SupportSignature +
		float64(in.QuestionCount)*w.Question +
		float64(in.ResearchCount)*w.Research +
		float64(in.PassedLaws)*w.PassedLawBonus +
		float64(in.CommissionBonus) +
		newsImpact*w.NewsWeight

	total := in.TotalActivity()
	if total == 0 {
		score += w.GhostPenalty
	}

	score = math.Round(math.Max(0, score)*10) / 10

	var label ImpactLabel
	switch {
	case total == 0:
		label = LabelGhost
	case score >= 100:
		label = LabelHigh
	case score >= 30:
		label = LabelMedium
	default:
		label = LabelLow
	}

	return Result{
		LegislatorID: legislatorID,
		Score:        score,
		Strategy:     strategy,
		Label:        label,
		Explanation:  explanation(strategy, in),
		Inputs:       in,
		NewsImpact:   newsImpact,
	}
}

// explanation renders the role- and activity-conditioned summary sentence.
// Free text for display only; nothing downstream parses it.
func explanation(strategy RoleStrategy, in activity.Inputs) string {
	if strategy == Government {
		if in.TotalActivity() == 0 {
			return "İktidar vekili, hiçbir bireysel faaliyeti tespit edilemedi."
		}
		return fmt.Sprintf("İktidar vekili, %d kanun teklifi ağırlıklı puanlandı.", in.FirstSignature)
	}
	if in.TotalActivity() == 0 {
		return "Muhalefet vekili, hiçbir bireysel faaliyeti tespit edilemedi."
	}
	return fmt.Sprintf("Muhalefet vekili, %d soru ve %d araştırma önergesi ağırlıklı puanlandı.", in.QuestionCount, in.ResearchCount)
}
