package x509name

/*
canon.go contains the case and Unicode normalization steps applied to
canonical string forms.
*/

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

/*
canonicalCase lower-cases s by way of a full upper-case mapping first,
so that characters without a single-rune lower-case partner (e.g. the
German sharp s) compare equal to their expanded spellings.
*/
func canonicalCase(s string) string {
	s = cases.Upper(language.AmericanEnglish).String(s)
	return cases.Lower(language.AmericanEnglish).String(s)
}

/*
canonicalize returns the case-folded NFKD form of s.
*/
func canonicalize(s string) string {
	return norm.NFKD.String(canonicalCase(s))
}
