package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/meclisdata/vekil/pkg/activity"
	"github.com/meclisdata/vekil/pkg/classify"
	"github.com/meclisdata/vekil/pkg/corpus"
	"github.com/meclisdata/vekil/pkg/extract"
	"github.com/meclisdata/vekil/pkg/report"
	"github.com/meclisdata/vekil/pkg/roster"
	"github.com/meclisdata/vekil/pkg/scoring"
	"github.com/meclisdata/vekil/pkg/store"
	"github.com/meclisdata/vekil/pkg/turkish"
	"github.com/meclisdata/vekil/pkg/update"
)

var version = "0.1.0"

func main() {
	// Optional .env for local runs; a missing file is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "vekil",
		Short: "Parliamentary activity scoring",
		Long: `Vekil ingests scraped parliamentary activity documents and computes a
role-aware fair impact score for every legislator.

It extracts petitioner names from proposal summaries, filters procedural
treaty ratifications, weighs activity by government or opposition role
and persists the ranked results in an embedded SQLite database.`,
		Version: version,
	}

	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(rebuildCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(matchCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dbPath resolves the database location: flag first, then VEKIL_DB, then
// a file in the working directory.
func dbPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("VEKIL_DB"); env != "" {
		return env
	}
	return "vekil.db"
}

func addCorpusFlags(cmd *cobra.Command) {
	cmd.Flags().String("roster", "", "City-grouped legislator roster (JSON)")
	cmd.Flags().String("proposals", "", "Law proposal documents (JSON)")
	cmd.Flags().String("questions", "", "Written question documents (JSON)")
	cmd.Flags().String("research", "", "Research motion documents (JSON)")
	cmd.Flags().String("commissions", "", "Commission membership map (JSON)")
	cmd.Flags().String("db", "", "SQLite database path (default $VEKIL_DB or vekil.db)")
	cmd.Flags().Bool("dry-run", false, "Compute scores without persisting")
	cmd.Flags().Bool("strict", false, "Disable fuzzy surname matching")
	cmd.Flags().IntP("top", "n", 20, "Print the top N scorers after the pass (0 to skip)")
	cmd.MarkFlagRequired("roster")
}

func runScoringPass(cmd *cobra.Command, rebuild bool) error {
	rosterPath, _ := cmd.Flags().GetString("roster")
	proposalsPath, _ := cmd.Flags().GetString("proposals")
	questionsPath, _ := cmd.Flags().GetString("questions")
	researchPath, _ := cmd.Flags().GetString("research")
	commissionsPath, _ := cmd.Flags().GetString("commissions")
	db, _ := cmd.Flags().GetString("db")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	strict, _ := cmd.Flags().GetBool("strict")
	top, _ := cmd.Flags().GetInt("top")

	legislators, err := corpus.LoadRoster(rosterPath)
	if err != nil {
		return err
	}
	recs, err := corpus.LoadRecords(proposalsPath, questionsPath, researchPath, commissionsPath)
	if err != nil {
		return err
	}

	s, err := store.Open(dbPath(db))
	if err != nil {
		return err
	}
	defer s.Close()

	newsAverages, err := s.NewsImpactAverages(cmd.Context())
	if err != nil {
		return err
	}

	stats, rep, err := update.New(s, nil).Run(cmd.Context(), legislators, recs, newsAverages, update.Options{
		Rebuild: rebuild,
		DryRun:  dryRun,
		Strict:  strict,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Güncellenen: %d (iktidar %d, muhalefet %d)\n", stats.Updated, stats.Government, stats.Opposition)
	fmt.Printf("Hayalet: %d, Yüksek etki: %d, Elenen uluslararası anlaşma: %d\n", stats.Ghost, stats.HighImpact, stats.FilteredTreaties)
	fmt.Print(report.RenderUnmatched(rep))

	if top > 0 && !dryRun {
		records, err := s.ListLegislators(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Print(report.RenderRanking(records, top))
	}
	return nil
}

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute and upsert fair scores for the full roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScoringPass(cmd, false)
		},
	}
	addCorpusFlags(cmd)
	return cmd
}

func rebuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Recompute all scores from scratch, dropping stale rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScoringPass(cmd, true)
		},
	}
	addCorpusFlags(cmd)
	return cmd
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [summary]",
		Short: "Extract petitioner names from a proposal summary",
		Long: `Extract parses a proposal summary and prints the petitioners found on
its first line, marking the first signer. With --file it scans every
proposal in a JSON corpus instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			ex := extract.New()

			var summaries []string
			switch {
			case file != "":
				proposals, err := corpus.LoadProposals(file)
				if err != nil {
					return err
				}
				for _, p := range proposals {
					summaries = append(summaries, p.Summary)
				}
			case len(args) == 1:
				summaries = append(summaries, args[0])
			default:
				return fmt.Errorf("provide a summary argument or --file")
			}

			for _, summary := range summaries {
				candidates := ex.Proposers(summary)
				if len(candidates) == 0 {
					fmt.Println("(isim bulunamadı)")
					continue
				}
				for _, cand := range candidates {
					marker := " "
					if cand.FirstSigner {
						marker = "*"
					}
					fmt.Printf("%s %-30s %s\n", marker, cand.Key, cand.Name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "Proposal corpus to scan (JSON)")
	return cmd
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [summary]",
		Short: "Classify a proposal as substantive, procedural or omnibus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(classify.Classify(args[0]))
			return nil
		},
	}
}

func matchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [name]",
		Short: "Resolve a name against the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rosterPath, _ := cmd.Flags().GetString("roster")
			strict, _ := cmd.Flags().GetBool("strict")

			legislators, err := corpus.LoadRoster(rosterPath)
			if err != nil {
				return err
			}
			matcher := roster.NewMatcher(roster.New(legislators), roster.WithFuzzy(!strict))

			key := turkish.NormalizeKey(args[0])
			leg, outcome := matcher.Match(key)
			fmt.Printf("anahtar: %s\nsonuç: %s\n", key, outcome)
			if outcome == roster.Exact || outcome == roster.Fuzzy {
				fmt.Printf("vekil: %s (%s, %s)\n", leg.Name, leg.Party, leg.City)
			}
			rep := matcher.Report()
			for _, amb := range rep.Ambiguities {
				fmt.Printf("adaylar: %v\n", amb.Candidates)
			}
			return nil
		},
	}
	cmd.Flags().String("roster", "", "City-grouped legislator roster (JSON)")
	cmd.Flags().Bool("strict", false, "Disable fuzzy surname matching")
	cmd.MarkFlagRequired("roster")
	return cmd
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the score ranking from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _ := cmd.Flags().GetString("db")
			top, _ := cmd.Flags().GetInt("top")
			xlsxPath, _ := cmd.Flags().GetString("xlsx")
			runs, _ := cmd.Flags().GetInt("runs")

			s, err := store.Open(dbPath(db))
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.ListLegislators(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(report.RenderRanking(records, top))

			if xlsxPath != "" {
				empty := &roster.Report{Unmatched: map[string]int{}}
				if err := report.WriteXLSX(xlsxPath, records, empty); err != nil {
					return err
				}
				fmt.Printf("Excel raporu yazıldı: %s\n", xlsxPath)
			}

			if runs > 0 {
				logs, err := s.RecentRunLogs(cmd.Context(), runs)
				if err != nil {
					return err
				}
				for _, l := range logs {
					fmt.Printf("%s %s: %d güncellendi, %d hayalet, %d eşleşmeyen (%s)\n",
						l.StartedAt.Format("2006-01-02 15:04"), l.Mode, l.Updated, l.Ghost, l.Unmatched, l.ID)
				}
			}
			return nil
		},
	}
	cmd.Flags().String("db", "", "SQLite database path (default $VEKIL_DB or vekil.db)")
	cmd.Flags().IntP("top", "n", 20, "Rows to print (0 for all)")
	cmd.Flags().String("xlsx", "", "Also write an Excel workbook to this path")
	cmd.Flags().Int("runs", 0, "Also print the latest N run logs")
	return cmd
}

// seedCmd loads a small demonstration roster so the report commands have
// something to show without a scraped corpus.
func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a small sample data set to the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _ := cmd.Flags().GetString("db")

			s, err := store.Open(dbPath(db))
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.UpsertScores(cmd.Context(), seedRecords()); err != nil {
				return err
			}
			fmt.Printf("%d örnek vekil yazıldı\n", len(seedRecords()))
			return nil
		},
	}
	cmd.Flags().String("db", "", "SQLite database path (default $VEKIL_DB or vekil.db)")
	return cmd
}

type seedEntry struct {
	name  string
	party string
	city  string
	in    activity.Inputs
	news  float64
}

func seedRecords() []store.LegislatorRecord {
	entries := []seedEntry{
		{"Ayşe YILMAZ", "CHP", "İzmir", activity.Inputs{FirstSignature: 4, QuestionCount: 35, ResearchCount: 6}, 7.2},
		{"Mehmet DEMİR", "AKP", "Konya", activity.Inputs{FirstSignature: 6, SupportSignature: 12, CommissionBonus: 25}, 6.1},
		{"Fatma KAYA", "DEM", "Diyarbakır", activity.Inputs{QuestionCount: 48, ResearchCount: 11}, 5.8},
		{"Hasan ÇELİK", "MHP", "Adana", activity.Inputs{SupportSignature: 9, CommissionBonus: 15}, 0},
		{"Zeynep ARSLAN", "İYİ", "Bursa", activity.Inputs{FirstSignature: 1, QuestionCount: 8}, 4.4},
	}

	records := make([]store.LegislatorRecord, 0, len(entries))
	now := time.Now().UTC()
	for _, e := range entries {
		key := turkish.NormalizeKey(e.name)
		result := scoring.Score(key, e.party, e.in, e.news)
		records = append(records, store.LegislatorRecord{
			ID:               key,
			Name:             e.name,
			Party:            e.party,
			City:             e.city,
			Strategy:         string(result.Strategy),
			Score:            result.Score,
			Label:            string(result.Label),
			Explanation:      result.Explanation,
			FirstSignature:   e.in.FirstSignature,
			SupportSignature: e.in.SupportSignature,
			QuestionCount:    e.in.QuestionCount,
			ResearchCount:    e.in.ResearchCount,
			CommissionBonus:  e.in.CommissionBonus,
			NewsImpact:       result.NewsImpact,
			IsPassive:        result.Label == scoring.LabelGhost,
			UpdatedAt:        now,
		})
	}
	return records
}
