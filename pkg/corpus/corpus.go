// Package corpus decodes the scraped parliamentary JSON files into typed
// activity records and the legislator roster.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/meclisdata/vekil/pkg/activity"
	"github.com/meclisdata/vekil/pkg/roster"
)

// partyAliases maps scraped party labels to their canonical short form.
// Unknown labels pass through unchanged.
var partyAliases = map[string]string{
	"AK Parti":       "AKP",
	"İYİ Parti":      "İYİ",
	"DEM PARTİ":      "DEM",
	"SAADET Partisi": "SP",
}

// NormalizeParty canonicalizes a scraped party label.
func NormalizeParty(party string) string {
	if canonical, ok := partyAliases[party]; ok {
		return canonical
	}
	return party
}

type proposalDoc struct {
	Summary string `json:"summary"`
	Date    string `json:"date"`
	Period  string `json:"period"`
}

type questionDoc struct {
	Subject string `json:"subject"`
	Date    string `json:"date"`
	Period  string `json:"period"`
}

type rosterMember struct {
	Name  string `json:"name"`
	Party string `json:"party"`
}

type rosterDoc struct {
	Cities map[string][]rosterMember `json:"cities"`
}

type commissionMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// LoadProposals reads a JSON array of law proposal documents. Missing
// fields decode to empty strings; a structurally malformed file is an
// error.
func LoadProposals(path string) ([]activity.LawProposal, error) {
	var docs []proposalDoc
	if err := readJSON(path, &docs); err != nil {
		return nil, fmt.Errorf("loading proposals: %w", err)
	}

	proposals := make([]activity.LawProposal, len(docs))
	for i, d := range docs {
		proposals[i] = activity.LawProposal{Summary: d.Summary, Date: d.Date, Period: d.Period}
	}
	return proposals, nil
}

// LoadQuestions reads a JSON array of written question documents.
func LoadQuestions(path string) ([]activity.WrittenQuestion, error) {
	var docs []questionDoc
	if err := readJSON(path, &docs); err != nil {
		return nil, fmt.Errorf("loading questions: %w", err)
	}

	questions := make([]activity.WrittenQuestion, len(docs))
	for i, d := range docs {
		questions[i] = activity.WrittenQuestion{Subject: d.Subject, Date: d.Date, Period: d.Period}
	}
	return questions, nil
}

// LoadResearch reads a JSON array of research motion documents.
func LoadResearch(path string) ([]activity.ResearchMotion, error) {
	var docs []proposalDoc
	if err := readJSON(path, &docs); err != nil {
		return nil, fmt.Errorf("loading research motions: %w", err)
	}

	motions := make([]activity.ResearchMotion, len(docs))
	for i, d := range docs {
		motions[i] = activity.ResearchMotion{Summary: d.Summary, Date: d.Date, Period: d.Period}
	}
	return motions, nil
}

// LoadRoster reads the city-grouped legislator roster. Members without a
// name are skipped; a missing party defaults to independent. Cities are
// walked in sorted order so the returned slice is deterministic.
func LoadRoster(path string) ([]roster.Legislator, error) {
	var doc rosterDoc
	if err := readJSON(path, &doc); err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}

	cities := make([]string, 0, len(doc.Cities))
	for city := range doc.Cities {
		cities = append(cities, city)
	}
	sort.Strings(cities)

	var legislators []roster.Legislator
	for _, city := range cities {
		for _, m := range doc.Cities[city] {
			if m.Name == "" {
				continue
			}
			party := m.Party
			if party == "" {
				party = "Bağımsız"
			}
			legislators = append(legislators, roster.Legislator{
				Name:  m.Name,
				Party: NormalizeParty(party),
				City:  city,
			})
		}
	}
	return legislators, nil
}

// LoadCommissions reads the commission membership map, one entry per
// commission keyed by its display name. A missing role defaults to
// ordinary membership. Commissions are walked in sorted order.
func LoadCommissions(path string) ([]activity.CommissionMembership, error) {
	var doc map[string][]commissionMember
	if err := readJSON(path, &doc); err != nil {
		return nil, fmt.Errorf("loading commissions: %w", err)
	}

	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	var memberships []activity.CommissionMembership
	for _, commission := range names {
		for _, m := range doc[commission] {
			if m.Name == "" {
				continue
			}
			role := m.Role
			if role == "" {
				role = "ÜYE"
			}
			memberships = append(memberships, activity.CommissionMembership{
				Commission: commission,
				Role:       role,
				Member:     m.Name,
			})
		}
	}
	return memberships, nil
}

// LoadRecords assembles the full activity corpus from the four input
// files. Empty paths are skipped, leaving that portion of the corpus
// empty.
func LoadRecords(proposalsPath, questionsPath, researchPath, commissionsPath string) (activity.Records, error) {
	var recs activity.Records
	var err error

	if proposalsPath != "" {
		if recs.Proposals, err = LoadProposals(proposalsPath); err != nil {
			return activity.Records{}, err
		}
	}
	if questionsPath != "" {
		if recs.Questions, err = LoadQuestions(questionsPath); err != nil {
			return activity.Records{}, err
		}
	}
	if researchPath != "" {
		if recs.Research, err = LoadResearch(researchPath); err != nil {
			return activity.Records{}, err
		}
	}
	if commissionsPath != "" {
		if recs.Commissions, err = LoadCommissions(commissionsPath); err != nil {
			return activity.Records{}, err
		}
	}
	return recs, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
