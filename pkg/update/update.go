// Package update orchestrates a full scoring pass: roster indexing,
// activity aggregation, fair scoring and persistence.
package update

import (
	"context"
	"log"
	"time"

	"github.com/meclisdata/vekil/pkg/activity"
	"github.com/meclisdata/vekil/pkg/extract"
	"github.com/meclisdata/vekil/pkg/roster"
	"github.com/meclisdata/vekil/pkg/scoring"
	"github.com/meclisdata/vekil/pkg/store"
)

// ScoreStore is the persistence surface the orchestrator needs. The
// SQLite store satisfies it; tests substitute an in-memory fake.
type ScoreStore interface {
	UpsertScores(ctx context.Context, records []store.LegislatorRecord) error
	ReplaceAll(ctx context.Context, records []store.LegislatorRecord) error
	AddRunLog(ctx context.Context, runLog store.RunLog) (string, error)
}

// Options controls one update pass.
type Options struct {
	// Rebuild drops every stored row and writes the pass from scratch
	// instead of upserting.
	Rebuild bool

	// DryRun computes everything but persists nothing.
	DryRun bool

	// Strict disables fuzzy surname matching.
	Strict bool
}

// Stats summarizes one update pass.
type Stats struct {
	Updated          int
	Government       int
	Opposition       int
	Ghost            int
	HighImpact       int
	FilteredTreaties int
	Unmatched        int
	Ambiguous        int
}

// Orchestrator runs scoring passes against one store.
type Orchestrator struct {
	store  ScoreStore
	logger *log.Logger
}

// New builds an orchestrator. A nil logger falls back to the default.
func New(s ScoreStore, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.Default()
	}
	return &Orchestrator{store: s, logger: logger}
}

// Run executes one scoring pass over the given roster and corpus. Every
// roster legislator gets a row, active or not. newsAverages carries
// per-key news impact averages; absent keys fall back to the neutral
// default inside the scoring engine. The returned report lists every
// unmatched and ambiguous name the pass encountered.
func (o *Orchestrator) Run(ctx context.Context, legislators []roster.Legislator, recs activity.Records, newsAverages map[string]float64, opts Options) (Stats, *roster.Report, error) {
	started := time.Now().UTC()

	idx := roster.New(legislators)
	for _, col := range idx.Collisions() {
		o.logger.Printf("roster key collision on %q: kept %q, dropped %q", col.Key, col.Kept, col.Lost)
	}

	matcher := roster.NewMatcher(idx, roster.WithFuzzy(!opts.Strict))
	agg := activity.NewAggregator(extract.New(), matcher)
	inputs := agg.Run(recs)

	var stats Stats
	records := make([]store.LegislatorRecord, 0, idx.Len())

	for _, key := range idx.Keys() {
		leg, _ := idx.Get(key)
		in := inputs[key]
		result := scoring.Score(key, leg.Party, in, newsAverages[key])

		stats.Updated++
		stats.FilteredTreaties += in.TreatyFiltered
		switch result.Strategy {
		case scoring.Government:
			stats.Government++
		default:
			stats.Opposition++
		}
		if result.Label == scoring.LabelGhost {
			stats.Ghost++
		}
		if result.Label == scoring.LabelHigh {
			stats.HighImpact++
		}

		records = append(records, store.LegislatorRecord{
			ID:               key,
			Name:             leg.Name,
			Party:            leg.Party,
			City:             leg.City,
			Strategy:         string(result.Strategy),
			Score:            result.Score,
			Label:            string(result.Label),
			Explanation:      result.Explanation,
			FirstSignature:   in.FirstSignature,
			SupportSignature: in.SupportSignature,
			QuestionCount:    in.QuestionCount,
			ResearchCount:    in.ResearchCount,
			CommissionBonus:  in.CommissionBonus,
			TreatyFiltered:   in.TreatyFiltered,
			OmnibusCount:     in.OmnibusCount,
			PassedLaws:       in.PassedLaws,
			NewsImpact:       result.NewsImpact,
			IsPassive:        result.Label == scoring.LabelGhost,
			UpdatedAt:        started,
		})
	}

	report := matcher.Report()
	stats.Unmatched = report.TotalUnmatched()
	stats.Ambiguous = len(report.Ambiguities)

	if opts.DryRun {
		o.logger.Printf("dry run: %d legislators scored, nothing persisted", stats.Updated)
		return stats, report, nil
	}

	persist := o.store.UpsertScores
	mode := "score"
	if opts.Rebuild {
		persist = o.store.ReplaceAll
		mode = "rebuild"
	}
	if err := persist(ctx, records); err != nil {
		return stats, report, err
	}

	_, err := o.store.AddRunLog(ctx, store.RunLog{
		Mode:             mode,
		StartedAt:        started,
		FinishedAt:       time.Now().UTC(),
		Updated:          stats.Updated,
		Government:       stats.Government,
		Opposition:       stats.Opposition,
		Ghost:            stats.Ghost,
		HighImpact:       stats.HighImpact,
		FilteredTreaties: stats.FilteredTreaties,
		Unmatched:        stats.Unmatched,
		Ambiguous:        stats.Ambiguous,
	})
	if err != nil {
		return stats, report, err
	}

	o.logger.Printf("%s pass: %d updated, %d government, %d opposition, %d ghost, %d unmatched names",
		mode, stats.Updated, stats.Government, stats.Opposition, stats.Ghost, stats.Unmatched)
	return stats, report, nil
}
