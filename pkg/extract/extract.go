// Package extract parses legislator names out of free-text legislative
// document summaries.
//
// The documents follow a narrow grammar: a first line listing petitioners as
// "<City> Milletvekili <FirstName...> <SURNAME>", comma-separated, often
// closed with "ve N Milletvekili" ("and N more members"). Subsequent lines
// are procedural boilerplate. Extraction is a best-effort scan over that
// sublanguage, not general NLP; zero extracted names is a valid outcome.
package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/meclisdata/vekil/pkg/turkish"
)

// Candidate is one extracted legislator name in document order.
type Candidate struct {
	// Name is the cleaned span as it appeared in the document.
	Name string

	// Key is the normalized comparison key for roster matching.
	Key string

	// FirstSigner marks the first name extracted from a document. The
	// primary petitioner is always listed first in the source text.
	FirstSigner bool
}

// Extractor scans document text for legislator names.
type Extractor struct {
	// anchorPattern locates the role word that precedes every name.
	anchorPattern *regexp.Regexp

	// moreMembersPattern matches the "ve N Milletvekili" list terminator.
	moreMembersPattern *regexp.Regexp

	// fallbackPattern matches "<Word> <ALLCAPS-SURNAME>" in loosely
	// structured text where the role word is missing.
	fallbackPattern *regexp.Regexp

	// exclusions holds normalized keys of capitalized non-name words that
	// commonly sit in the fallback pattern's first slot.
	exclusions map[string]bool
}

// fallbackWindow bounds the fallback scan to the leading portion of the
// summary, where petitioner names appear.
const fallbackWindow = 200

// New returns an Extractor with compiled patterns.
func New() *Extractor {
	exclusionWords := []string{
		"sayılı", "kanun", "dair", "yapılmasına", "hakkında", "ile", "bazı",
	}
	exclusions := make(map[string]bool, len(exclusionWords))
	for _, w := range exclusionWords {
		exclusions[turkish.NormalizeKey(w)] = true
	}

	return &Extractor{
		anchorPattern:      regexp.MustCompile(`Milletvekili\s+`),
		moreMembersPattern: regexp.MustCompile(`\s+ve\s+\d+`),
		fallbackPattern:    regexp.MustCompile(`(\pL+)\s+(\p{Lu}{2,})`),
		exclusions:         exclusions,
	}
}

// Proposers extracts the ordered proposer list from a law proposal summary.
// Only the first line is scanned; each "Milletvekili <name>" occurrence up to
// the next comma, list terminator, or end of line yields one candidate. The
// first accepted candidate is the first signer, all others support signers.
// Occurrence order is preserved and repeats are not de-duplicated: signature
// attribution counts positions, not unique names.
func (e *Extractor) Proposers(summary string) []Candidate {
	firstLine := firstLineOf(summary)

	var out []Candidate
	for _, span := range e.nameSpans(firstLine) {
		name, ok := e.cleanSpan(span)
		if !ok {
			continue
		}
		out = append(out, Candidate{
			Name:        name,
			Key:         turkish.NormalizeKey(name),
			FirstSigner: len(out) == 0,
		})
	}
	return out
}

// LeadName extracts the single attributed name from a question or research
// motion's leading clause. The second return is false when the clause does
// not follow the grammar; callers treat that as a countable miss, not an
// error.
func (e *Extractor) LeadName(text string) (Candidate, bool) {
	firstLine := firstLineOf(text)

	loc := e.anchorPattern.FindStringIndex(firstLine)
	if loc == nil {
		return Candidate{}, false
	}

	span := e.trimSpan(firstLine[loc[1]:])
	name, ok := e.cleanSpan(span)
	if !ok {
		return Candidate{}, false
	}
	return Candidate{Name: name, Key: turkish.NormalizeKey(name), FirstSigner: true}, true
}

// Names extracts a de-duplicated candidate list from loosely structured
// text. The primary grammar is tried first; only when it yields nothing does
// the fallback "<Word> <ALLCAPS>" scan over the leading characters run, with
// known procedural words excluded. Used for attribution paths where a name
// appearing twice must count once.
func (e *Extractor) Names(summary string) []Candidate {
	var out []Candidate
	seen := make(map[string]bool)

	add := func(name string) {
		key := turkish.NormalizeKey(name)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, Candidate{Name: name, Key: key, FirstSigner: len(out) == 0})
	}

	for _, span := range e.nameSpans(firstLineOf(summary)) {
		if name, ok := e.cleanSpan(span); ok {
			add(name)
		}
	}
	if len(out) > 0 {
		return out
	}

	head := summary
	if runes := []rune(summary); len(runes) > fallbackWindow {
		head = string(runes[:fallbackWindow])
	}
	for _, m := range e.fallbackPattern.FindAllStringSubmatch(head, -1) {
		first, surname := m[1], m[2]
		if e.exclusions[turkish.NormalizeKey(first)] {
			continue
		}
		add(first + " " + surname)
	}
	return out
}

// nameSpans returns the raw text spans following each role-word anchor.
func (e *Extractor) nameSpans(line string) []string {
	var spans []string
	for _, loc := range e.anchorPattern.FindAllStringIndex(line, -1) {
		spans = append(spans, e.trimSpan(line[loc[1]:]))
	}
	return spans
}

// trimSpan cuts a span at the first comma or "ve N" list terminator.
func (e *Extractor) trimSpan(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	if loc := e.moreMembersPattern.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	return s
}

// cleanSpan collapses whitespace, drops tokens that do not begin with an
// uppercase letter (stray lowercase procedural words), and strips clitic
// suffixes attached with an apostrophe ("ESEN'in" -> "ESEN"). A span is a
// name only if at least two tokens survive.
func (e *Extractor) cleanSpan(span string) (string, bool) {
	var words []string
	for _, w := range strings.Fields(span) {
		if i := strings.IndexAny(w, "'’"); i >= 0 {
			w = w[:i]
		}
		if w == "" {
			continue
		}
		r := []rune(w)[0]
		if !unicode.IsUpper(r) {
			continue
		}
		words = append(words, w)
	}

	name := strings.Join(words, " ")
	if len(words) < 2 || len(name) < 5 {
		return "", false
	}
	return name, true
}

// firstLineOf returns text up to the first newline.
func firstLineOf(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
