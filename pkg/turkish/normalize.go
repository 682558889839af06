// Package turkish provides Turkish-specific text normalization for building
// comparable legislator name keys.
package turkish

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// foldTable maps Turkish letters onto their plain Latin fold. Both case
// variants are listed because case conversion alone does not merge the
// dotted/dotless I family: upper-casing "ı" and "i" yields "I" and "İ",
// which would otherwise remain distinct keys.
var foldTable = map[rune]rune{
	'ı': 'I', 'İ': 'I', 'i': 'I',
	'ğ': 'G', 'Ğ': 'G',
	'ü': 'U', 'Ü': 'U',
	'ş': 'S', 'Ş': 'S',
	'ö': 'O', 'Ö': 'O',
	'ç': 'C', 'Ç': 'C',
}

// NormalizeKey canonicalizes a raw name into the key used for all roster
// matching: surrounding whitespace trimmed, internal runs collapsed to a
// single space, Turkish letters folded to Latin, upper-cased.
//
// The mapping is pure and idempotent but lossy: distinct display names can
// collapse to the same key (surname collisions are tolerated downstream).
// Empty input yields an empty key.
func NormalizeKey(raw string) string {
	folded := strings.Map(func(r rune) rune {
		if out, ok := foldTable[r]; ok {
			return out
		}
		return r
	}, raw)
	folded = strings.ToUpper(folded)
	return strings.Join(strings.Fields(folded), " ")
}

// DisplayName renders a normalized key (or any shouted name) in Turkish
// title case for human-facing reports: "OZGUR OZEL" -> "Ozgur Ozel".
func DisplayName(key string) string {
	return cases.Title(language.Turkish).String(strings.Join(strings.Fields(key), " "))
}
