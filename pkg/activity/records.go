// Package activity defines parliamentary activity records and aggregates
// them into per-legislator scoring inputs.
package activity

import "strings"

// LawProposal is a legislative proposal document. The proposer list is
// extracted from the summary's first line at aggregation time.
type LawProposal struct {
	Summary string
	Date    string
	Period  string
}

// WrittenQuestion is a written parliamentary question. The attributed
// legislator appears in the subject's leading clause.
type WrittenQuestion struct {
	Subject string
	Date    string
	Period  string
}

// ResearchMotion is a parliamentary research motion.
type ResearchMotion struct {
	Summary string
	Date    string
	Period  string
}

// CommissionMembership is one legislator's seat on a commission.
type CommissionMembership struct {
	Commission string
	Role       string
	Member     string
}

// Records is the full activity corpus for one legislative period.
type Records struct {
	Proposals   []LawProposal
	Questions   []WrittenQuestion
	Research    []ResearchMotion
	Commissions []CommissionMembership
}

// Commission role bonus points. Memberships sum additively, no cap.
const (
	bonusChair     = 25 // BAŞKAN
	bonusViceChair = 20 // BAŞKANVEKİLİ
	bonusSpokesman = 18 // SÖZCÜ, KATİP
	bonusMember    = 15 // ÜYE and anything unrecognized
)

// roleBonus returns the bonus points for a commission role. Unknown roles
// default to ordinary membership.
func roleBonus(role string) int {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case "BAŞKAN":
		return bonusChair
	case "BAŞKANVEKİLİ", "BAŞKANVEKILI":
		return bonusViceChair
	case "SÖZCÜ", "SÖZCU", "KATİP", "KATIP":
		return bonusSpokesman
	default:
		return bonusMember
	}
}

// Inputs is the accumulated activity of one legislator, the sole input of
// the fair scoring engine. All fields default to zero.
type Inputs struct {
	// FirstSignature counts proposals where this legislator was the first
	// extracted (primary) petitioner.
	FirstSignature int

	// SupportSignature counts proposals co-signed at a later position.
	SupportSignature int

	// QuestionCount counts attributed written questions.
	QuestionCount int

	// ResearchCount counts attributed research motions.
	ResearchCount int

	// CommissionBonus is the summed role bonus across commission seats,
	// applied to the score as raw points.
	CommissionBonus int

	// TreatyFiltered counts proposals excluded as procedural treaty
	// ratifications. Reported, never scored.
	TreatyFiltered int

	// OmnibusCount counts proposals classified omnibus. These also count
	// in the signature fields; the separate counter is for reporting.
	OmnibusCount int

	// PassedLaws counts enacted proposals. The ingest corpus does not
	// carry enactment status, so aggregation leaves this zero; callers
	// with that data may set it before scoring.
	PassedLaws int
}

// TotalActivity is the ghost-penalty trigger sum: first signatures,
// questions and research motions. Support signatures and commission seats
// do not count as individual activity.
func (in Inputs) TotalActivity() int {
	return in.FirstSignature + in.QuestionCount + in.ResearchCount
}
