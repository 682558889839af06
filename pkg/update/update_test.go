package update

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/meclisdata/vekil/pkg/activity"
	"github.com/meclisdata/vekil/pkg/roster"
	"github.com/meclisdata/vekil/pkg/store"
)

type fakeStore struct {
	rows     map[string]store.LegislatorRecord
	replaced bool
	runLogs  []store.RunLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[string]store.LegislatorRecord)}
}

func (f *fakeStore) UpsertScores(_ context.Context, records []store.LegislatorRecord) error {
	for _, rec := range records {
		f.rows[rec.ID] = rec
	}
	return nil
}

func (f *fakeStore) ReplaceAll(ctx context.Context, records []store.LegislatorRecord) error {
	f.rows = make(map[string]store.LegislatorRecord)
	f.replaced = true
	return f.UpsertScores(ctx, records)
}

func (f *fakeStore) AddRunLog(_ context.Context, runLog store.RunLog) (string, error) {
	f.runLogs = append(f.runLogs, runLog)
	return "run-1", nil
}

func testLegislators() []roster.Legislator {
	return []roster.Legislator{
		{Name: "Özgür ÖZEL", Party: "CHP", City: "Manisa"},
		{Name: "Mustafa ARSLAN", Party: "AKP", City: "Tokat"},
		{Name: "Elif ESEN", Party: "CHP", City: "İstanbul"},
	}
}

func testRecords() activity.Records {
	return activity.Records{
		Proposals: []activity.LawProposal{
			{Summary: "Tokat Milletvekili Mustafa ARSLAN\nAsgari ücrete ilişkin Kanun Teklifi"},
		},
		Questions: []activity.WrittenQuestion{
			{Subject: "İstanbul Milletvekili Elif ESEN'in sağlık yatırımlarına ilişkin yazılı soru önergesi"},
		},
	}
}

func quietOrchestrator(s ScoreStore) *Orchestrator {
	return New(s, log.New(io.Discard, "", 0))
}

func TestRunScoresEveryLegislator(t *testing.T) {
	fs := newFakeStore()
	o := quietOrchestrator(fs)

	stats, _, err := o.Run(context.Background(), testLegislators(), testRecords(), nil, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if stats.Updated != 3 {
		t.Errorf("every roster member must be scored: %+v", stats)
	}
	if len(fs.rows) != 3 {
		t.Errorf("expected 3 persisted rows, got %d", len(fs.rows))
	}
	if stats.Government != 1 || stats.Opposition != 2 {
		t.Errorf("unexpected strategy split: %+v", stats)
	}

	// Özel has no activity in this corpus.
	ozel := fs.rows["OZGUR OZEL"]
	if !ozel.IsPassive || ozel.Label != "Ghost" {
		t.Errorf("inactive legislator must be flagged passive: %+v", ozel)
	}
	if stats.Ghost != 1 {
		t.Errorf("expected 1 ghost, got %+v", stats)
	}

	arslan := fs.rows["MUSTAFA ARSLAN"]
	if arslan.FirstSignature != 1 || arslan.Strategy != "GOVERNMENT" {
		t.Errorf("unexpected record: %+v", arslan)
	}
	// 1*15 + 5.0 news = 20.0
	if arslan.Score != 20.0 {
		t.Errorf("expected score 20.0, got %v", arslan.Score)
	}
}

func TestRunDryRunPersistsNothing(t *testing.T) {
	fs := newFakeStore()
	o := quietOrchestrator(fs)

	stats, _, err := o.Run(context.Background(), testLegislators(), testRecords(), nil, Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Updated != 3 {
		t.Errorf("dry run must still compute: %+v", stats)
	}
	if len(fs.rows) != 0 || len(fs.runLogs) != 0 {
		t.Error("dry run must not touch the store")
	}
}

func TestRunRebuildReplaces(t *testing.T) {
	fs := newFakeStore()
	fs.rows["ESKI VEKIL"] = store.LegislatorRecord{ID: "ESKI VEKIL"}
	o := quietOrchestrator(fs)

	_, _, err := o.Run(context.Background(), testLegislators(), testRecords(), nil, Options{Rebuild: true})
	if err != nil {
		t.Fatal(err)
	}
	if !fs.replaced {
		t.Error("rebuild must replace, not upsert")
	}
	if _, ok := fs.rows["ESKI VEKIL"]; ok {
		t.Error("stale row survived rebuild")
	}
	if len(fs.runLogs) != 1 || fs.runLogs[0].Mode != "rebuild" {
		t.Errorf("expected rebuild run log, got %+v", fs.runLogs)
	}
}

func TestRunRecordsRunLog(t *testing.T) {
	fs := newFakeStore()
	o := quietOrchestrator(fs)

	stats, _, err := o.Run(context.Background(), testLegislators(), testRecords(), nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(fs.runLogs) != 1 {
		t.Fatalf("expected 1 run log, got %d", len(fs.runLogs))
	}
	logged := fs.runLogs[0]
	if logged.Mode != "score" || logged.Updated != stats.Updated || logged.Ghost != stats.Ghost {
		t.Errorf("run log does not mirror stats: %+v vs %+v", logged, stats)
	}
	if logged.FinishedAt.Before(logged.StartedAt) {
		t.Errorf("run log time range inverted: %+v", logged)
	}
}

func TestRunNewsAveragesApplied(t *testing.T) {
	fs := newFakeStore()
	o := quietOrchestrator(fs)

	news := map[string]float64{"MUSTAFA ARSLAN": 9.0}
	_, _, err := o.Run(context.Background(), testLegislators(), testRecords(), news, Options{})
	if err != nil {
		t.Fatal(err)
	}

	arslan := fs.rows["MUSTAFA ARSLAN"]
	if arslan.NewsImpact != 9.0 {
		t.Errorf("expected news impact 9.0, got %v", arslan.NewsImpact)
	}
	// 1*15 + 9.0 news = 24.0
	if arslan.Score != 24.0 {
		t.Errorf("expected score 24.0, got %v", arslan.Score)
	}

	esen := fs.rows["ELIF ESEN"]
	if esen.NewsImpact != 5.0 {
		t.Errorf("absent news average must fall back to neutral: %v", esen.NewsImpact)
	}
}

func TestRunReportsUnmatched(t *testing.T) {
	fs := newFakeStore()
	o := quietOrchestrator(fs)

	recs := activity.Records{
		Proposals: []activity.LawProposal{
			{Summary: "Rize Milletvekili Hayali VEKİL\nKira artışlarının sınırlandırılması hakkında Kanun Teklifi"},
		},
	}

	stats, report, err := o.Run(context.Background(), testLegislators(), recs, nil, Options{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Unmatched != 1 {
		t.Errorf("expected 1 unmatched, got %+v", stats)
	}
	if report.Unmatched["HAYALI VEKIL"] != 1 {
		t.Errorf("unmatched name missing from report: %+v", report)
	}
}

func TestRunDeterministic(t *testing.T) {
	fsA, fsB := newFakeStore(), newFakeStore()

	if _, _, err := quietOrchestrator(fsA).Run(context.Background(), testLegislators(), testRecords(), nil, Options{}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := quietOrchestrator(fsB).Run(context.Background(), testLegislators(), testRecords(), nil, Options{}); err != nil {
		t.Fatal(err)
	}

	for id, a := range fsA.rows {
		b := fsB.rows[id]
		if a.Score != b.Score || a.Label != b.Label || a.Strategy != b.Strategy {
			t.Errorf("%s: runs diverge: %+v vs %+v", id, a, b)
		}
	}
}
