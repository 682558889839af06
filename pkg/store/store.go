// Package store persists computed legislator scores, news analyses and
// update run logs in an embedded SQLite database.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// upsertBatchSize bounds the rows written per transaction so one bad row
// cannot roll back an entire rebuild.
const upsertBatchSize = 400

const schema = `
CREATE TABLE IF NOT EXISTS legislators (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	party             TEXT NOT NULL DEFAULT '',
	city              TEXT NOT NULL DEFAULT '',
	strategy          TEXT NOT NULL DEFAULT '',
	score             REAL NOT NULL DEFAULT 0,
	label             TEXT NOT NULL DEFAULT '',
	explanation       TEXT NOT NULL DEFAULT '',
	first_signature   INTEGER NOT NULL DEFAULT 0,
	support_signature INTEGER NOT NULL DEFAULT 0,
	question_count    INTEGER NOT NULL DEFAULT 0,
	research_count    INTEGER NOT NULL DEFAULT 0,
	commission_bonus  INTEGER NOT NULL DEFAULT 0,
	treaty_filtered   INTEGER NOT NULL DEFAULT 0,
	omnibus_count     INTEGER NOT NULL DEFAULT 0,
	passed_laws       INTEGER NOT NULL DEFAULT 0,
	news_impact       REAL NOT NULL DEFAULT 5.0,
	is_passive        INTEGER NOT NULL DEFAULT 0,
	updated_at        TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS news_analyses (
	id            TEXT PRIMARY KEY,
	legislator_id TEXT NOT NULL,
	title         TEXT NOT NULL DEFAULT '',
	url           TEXT NOT NULL DEFAULT '',
	source        TEXT NOT NULL DEFAULT '',
	summary       TEXT NOT NULL DEFAULT '',
	sentiment     REAL NOT NULL DEFAULT 0,
	impact        REAL NOT NULL DEFAULT 5.0,
	keywords      TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_news_legislator ON news_analyses(legislator_id);

CREATE TABLE IF NOT EXISTS run_logs (
	id                TEXT PRIMARY KEY,
	mode              TEXT NOT NULL DEFAULT '',
	started_at        TIMESTAMP NOT NULL,
	finished_at       TIMESTAMP NOT NULL,
	updated           INTEGER NOT NULL DEFAULT 0,
	government        INTEGER NOT NULL DEFAULT 0,
	opposition        INTEGER NOT NULL DEFAULT 0,
	ghost             INTEGER NOT NULL DEFAULT 0,
	high_impact       INTEGER NOT NULL DEFAULT 0,
	filtered_treaties INTEGER NOT NULL DEFAULT 0,
	unmatched         INTEGER NOT NULL DEFAULT 0,
	ambiguous         INTEGER NOT NULL DEFAULT 0
);
`

// LegislatorRecord is one scored legislator row. The id is the normalized
// name key; all activity counters are echoed alongside the score for
// auditability.
type LegislatorRecord struct {
	ID               string    `db:"id"`
	Name             string    `db:"name"`
	Party            string    `db:"party"`
	City             string    `db:"city"`
	Strategy         string    `db:"strategy"`
	Score            float64   `db:"score"`
	Label            string    `db:"label"`
	Explanation      string    `db:"explanation"`
	FirstSignature   int       `db:"first_signature"`
	SupportSignature int       `db:"support_signature"`
	QuestionCount    int       `db:"question_count"`
	ResearchCount    int       `db:"research_count"`
	CommissionBonus  int       `db:"commission_bonus"`
	TreatyFiltered   int       `db:"treaty_filtered"`
	OmnibusCount     int       `db:"omnibus_count"`
	PassedLaws       int       `db:"passed_laws"`
	NewsImpact       float64   `db:"news_impact"`
	IsPassive        bool      `db:"is_passive"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// NewsRecord is one persisted news analysis. Keywords are stored
// comma-joined.
type NewsRecord struct {
	ID           string    `db:"id"`
	LegislatorID string    `db:"legislator_id"`
	Title        string    `db:"title"`
	URL          string    `db:"url"`
	Source       string    `db:"source"`
	Summary      string    `db:"summary"`
	Sentiment    float64   `db:"sentiment"`
	Impact       float64   `db:"impact"`
	Keywords     string    `db:"keywords"`
	CreatedAt    time.Time `db:"created_at"`
}

// RunLog is one recorded update pass.
type RunLog struct {
	ID               string    `db:"id"`
	Mode             string    `db:"mode"`
	StartedAt        time.Time `db:"started_at"`
	FinishedAt       time.Time `db:"finished_at"`
	Updated          int       `db:"updated"`
	Government       int       `db:"government"`
	Opposition       int       `db:"opposition"`
	Ghost            int       `db:"ghost"`
	HighImpact       int       `db:"high_impact"`
	FilteredTreaties int       `db:"filtered_treaties"`
	Unmatched        int       `db:"unmatched"`
	Ambiguous        int       `db:"ambiguous"`
}

// Store wraps the SQLite handle.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at path, creating it if absent,
// and ensures the schema exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

const upsertLegislatorSQL = `
INSERT INTO legislators (
	id, name, party, city, strategy, score, label, explanation,
	first_signature, support_signature, question_count, research_count,
	commission_bonus, treaty_filtered, omnibus_count, passed_laws,
	news_impact, is_passive, updated_at
) VALUES (
	:id, :name, :party, :city, :strategy, :score, :label, :explanation,
	:first_signature, :support_signature, :question_count, :research_count,
	:commission_bonus, :treaty_filtered, :omnibus_count, :passed_laws,
	:news_impact, :is_passive, :updated_at
)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	party = excluded.party,
	city = excluded.city,
	strategy = excluded.strategy,
	score = excluded.score,
	label = excluded.label,
	explanation = excluded.explanation,
	first_signature = excluded.first_signature,
	support_signature = excluded.support_signature,
	question_count = excluded.question_count,
	research_count = excluded.research_count,
	commission_bonus = excluded.commission_bonus,
	treaty_filtered = excluded.treaty_filtered,
	omnibus_count = excluded.omnibus_count,
	passed_laws = excluded.passed_laws,
	news_impact = excluded.news_impact,
	is_passive = excluded.is_passive,
	updated_at = excluded.updated_at`

// UpsertScores writes the records in transactional batches. Each batch
// commits independently so a failure loses at most one batch of work.
func (s *Store) UpsertScores(ctx context.Context, records []LegislatorRecord) error {
	for start := 0; start < len(records); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(records) {
			end = len(records)
		}
		if err := s.upsertBatch(ctx, records[start:end]); err != nil {
			return fmt.Errorf("upserting batch at %d: %w", start, err)
		}
	}
	return nil
}

func (s *Store) upsertBatch(ctx context.Context, batch []LegislatorRecord) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, rec := range batch {
		if _, err := tx.NamedExecContext(ctx, upsertLegislatorSQL, rec); err != nil {
			return fmt.Errorf("row %s: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

// ReplaceAll deletes every legislator row and writes the given records
// from scratch. Full rebuilds use this so stale rows cannot survive a
// roster change.
func (s *Store) ReplaceAll(ctx context.Context, records []LegislatorRecord) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM legislators`); err != nil {
		return fmt.Errorf("clearing legislators: %w", err)
	}
	return s.UpsertScores(ctx, records)
}

// GetLegislator fetches one row by normalized key.
func (s *Store) GetLegislator(ctx context.Context, id string) (LegislatorRecord, error) {
	var rec LegislatorRecord
	err := s.db.GetContext(ctx, &rec, `SELECT * FROM legislators WHERE id = ?`, id)
	if err != nil {
		return LegislatorRecord{}, fmt.Errorf("fetching legislator %s: %w", id, err)
	}
	return rec, nil
}

// ListLegislators returns all rows ordered by score descending, then id,
// for a stable ranking.
func (s *Store) ListLegislators(ctx context.Context) ([]LegislatorRecord, error) {
	var recs []LegislatorRecord
	err := s.db.SelectContext(ctx, &recs, `SELECT * FROM legislators ORDER BY score DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing legislators: %w", err)
	}
	return recs, nil
}

// AddNewsAnalyses persists analyses in one transaction, assigning ids and
// timestamps to records missing them.
func (s *Store) AddNewsAnalyses(ctx context.Context, records []NewsRecord) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = time.Now().UTC()
		}
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO news_analyses (id, legislator_id, title, url, source, summary, sentiment, impact, keywords, created_at)
			VALUES (:id, :legislator_id, :title, :url, :source, :summary, :sentiment, :impact, :keywords, :created_at)`, rec)
		if err != nil {
			return fmt.Errorf("inserting analysis for %s: %w", rec.LegislatorID, err)
		}
	}
	return tx.Commit()
}

// NewsByLegislator returns the stored analyses for one legislator, newest
// first.
func (s *Store) NewsByLegislator(ctx context.Context, legislatorID string) ([]NewsRecord, error) {
	var recs []NewsRecord
	err := s.db.SelectContext(ctx, &recs, `
		SELECT * FROM news_analyses WHERE legislator_id = ? ORDER BY created_at DESC, id ASC`, legislatorID)
	if err != nil {
		return nil, fmt.Errorf("fetching analyses for %s: %w", legislatorID, err)
	}
	return recs, nil
}

// NewsImpactAverages returns the mean stored impact per legislator.
// Legislators without analyses are absent from the map.
func (s *Store) NewsImpactAverages(ctx context.Context) (map[string]float64, error) {
	rows := []struct {
		LegislatorID string  `db:"legislator_id"`
		Impact       float64 `db:"impact"`
	}{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT legislator_id, AVG(impact) AS impact FROM news_analyses GROUP BY legislator_id`)
	if err != nil {
		return nil, fmt.Errorf("averaging news impact: %w", err)
	}

	averages := make(map[string]float64, len(rows))
	for _, row := range rows {
		averages[row.LegislatorID] = row.Impact
	}
	return averages, nil
}

// AddRunLog records one update pass and returns its generated id.
func (s *Store) AddRunLog(ctx context.Context, log RunLog) (string, error) {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO run_logs (id, mode, started_at, finished_at, updated, government, opposition, ghost, high_impact, filtered_treaties, unmatched, ambiguous)
		VALUES (:id, :mode, :started_at, :finished_at, :updated, :government, :opposition, :ghost, :high_impact, :filtered_treaties, :unmatched, :ambiguous)`, log)
	if err != nil {
		return "", fmt.Errorf("recording run log: %w", err)
	}
	return log.ID, nil
}

// RecentRunLogs returns the latest n run logs, newest first.
func (s *Store) RecentRunLogs(ctx context.Context, n int) ([]RunLog, error) {
	var logs []RunLog
	err := s.db.SelectContext(ctx, &logs, `
		SELECT * FROM run_logs ORDER BY started_at DESC, id ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("listing run logs: %w", err)
	}
	return logs, nil
}

// JoinKeywords renders a keyword list for storage.
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, ",")
}

// SplitKeywords parses a stored keyword column.
func SplitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
