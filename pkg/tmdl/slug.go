package tmdl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gosimple/slug"
)

// Slug lower-cases a name and turns every underscore, hyphen and space into
// exactly one hyphen, so names that differ only in separators keep distinct
// slugs. "%" becomes "percent"; other symbols and non-ASCII letters are
// transliterated ("é" -> "e", "&" -> "and") or dropped.
// Slug(Slug(s)) == Slug(s) for every s.
func Slug(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			sb.WriteByte('-')
		case r == '%':
			sb.WriteString("percent")
		case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteString(slug.Make(string(r)))
		}
	}
	return sb.String()
}

// LineageTag returns the lineage tag for an object of the given kind,
// e.g. LineageTag("Start_Date", "column") == "start-date-column".
func LineageTag(name, kind string) string {
	return Slug(name) + "-" + kind
}
