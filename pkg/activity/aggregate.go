package activity

import (
	"github.com/meclisdata/vekil/pkg/classify"
	"github.com/meclisdata/vekil/pkg/extract"
	"github.com/meclisdata/vekil/pkg/roster"
	"github.com/meclisdata/vekil/pkg/turkish"
)

// Aggregator turns an activity corpus into per-legislator Inputs. It owns
// its accumulators for the duration of one pass; each run starts fresh, so
// repeated runs over an unchanged corpus produce identical results.
type Aggregator struct {
	extractor *extract.Extractor
	matcher   *roster.Matcher
}

// NewAggregator builds an aggregator over the given matcher. The matcher
// collects every unmatched and ambiguous name the pass encounters.
func NewAggregator(ex *extract.Extractor, m *roster.Matcher) *Aggregator {
	return &Aggregator{extractor: ex, matcher: m}
}

// Run processes the full corpus and returns scoring inputs keyed by
// normalized legislator key. Every proposal is classified before any of its
// counts are attributed: procedural proposals increment only the
// treaty-filtered counter, never signature counts. Unresolved names are
// recorded by the matcher and contribute to no counter.
func (a *Aggregator) Run(recs Records) map[string]Inputs {
	inputs := make(map[string]Inputs)

	for _, prop := range recs.Proposals {
		class := classify.Classify(prop.Summary)

		for _, cand := range a.extractor.Proposers(prop.Summary) {
			leg, outcome := a.matcher.Match(cand.Key)
			if outcome == roster.Miss || outcome == roster.Ambiguous {
				continue
			}

			in := inputs[leg.Key]
			switch class {
			case classify.Procedural:
				in.TreatyFiltered++
			default:
				if cand.FirstSigner {
					in.FirstSignature++
				} else {
					in.SupportSignature++
				}
				if class == classify.Omnibus {
					in.OmnibusCount++
				}
			}
			inputs[leg.Key] = in
		}
	}

	for _, q := range recs.Questions {
		if leg, ok := a.resolveLead(q.Subject); ok {
			in := inputs[leg.Key]
			in.QuestionCount++
			inputs[leg.Key] = in
		}
	}

	for _, r := range recs.Research {
		if leg, ok := a.resolveLead(r.Summary); ok {
			in := inputs[leg.Key]
			in.ResearchCount++
			inputs[leg.Key] = in
		}
	}

	for _, cm := range recs.Commissions {
		// Member names arrive as plain display strings, no leading clause.
		key := turkish.NormalizeKey(cm.Member)
		if key == "" {
			continue
		}
		leg, outcome := a.matcher.Match(key)
		if outcome == roster.Miss || outcome == roster.Ambiguous {
			continue
		}
		in := inputs[leg.Key]
		in.CommissionBonus += roleBonus(cm.Role)
		inputs[leg.Key] = in
	}

	return inputs
}

// resolveLead extracts and matches the single attributed name of a question
// or research motion.
func (a *Aggregator) resolveLead(text string) (roster.Legislator, bool) {
	cand, ok := a.extractor.LeadName(text)
	if !ok {
		return roster.Legislator{}, false
	}
	leg, outcome := a.matcher.Match(cand.Key)
	if outcome == roster.Miss || outcome == roster.Ambiguous {
		return roster.Legislator{}, false
	}
	return leg, true
}
