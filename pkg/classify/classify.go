// Package classify labels law proposal summaries so that procedural
// rubber-stamp items can be excluded from productivity scoring.
package classify

import "strings"

// Class is the classification of a proposal summary. Every summary gets
// exactly one class.
type Class int

const (
	// Substantive is an ordinary legislative proposal.
	Substantive Class = iota

	// Procedural marks international treaty or protocol ratification
	// language. These proposals score zero toward activity.
	Procedural

	// Omnibus marks a single bill amending multiple unrelated laws. Counted
	// as substantive activity but tracked separately for reporting.
	Omnibus
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Procedural:
		return "PROCEDURAL"
	case Omnibus:
		return "OMNIBUS"
	default:
		return "SUBSTANTIVE"
	}
}

// proceduralKeywords are phrases that appear in treaty ratification and
// protocol approval summaries. Matching is case-insensitive but
// diacritic-sensitive: the phrases are compared in upper case with their
// Turkish letters intact.
var proceduralKeywords = []string{
	"Onaylanmasının Uygun Bulunduğuna Dair",
	"Anlaşmanın Onaylanması",
	"Anlaşmasının Onaylanması",
	"Mutabakat Zaptı",
	"Protokolün Onaylanması",
	"Sözleşmenin Onaylanması",
	"Tadil Edilmesine İlişkin",
	"Milletlerarası Andlaşma",
}

// omnibusKeywords are phrases that mark omnibus ("torba") bills.
var omnibusKeywords = []string{
	"Bazı Kanunlarda Değişiklik",
	"Çeşitli Kanunlarda Değişiklik",
	"Değişiklik Yapılmasına Dair",
}

// Classify labels a proposal summary. The procedural check always precedes
// the omnibus check: treaty language wins when a summary matches both sets.
func Classify(summary string) Class {
	upper := strings.ToUpper(summary)

	if containsAny(upper, proceduralKeywords) {
		return Procedural
	}
	if containsAny(upper, omnibusKeywords) {
		return Omnibus
	}
	return Substantive
}

func containsAny(upper string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return true
		}
	}
	return false
}
