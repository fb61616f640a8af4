// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// fields.go implements the per-field extraction cascades. Each field has
// an ordered list of matchers tried in sequence; the first hit wins and a
// full miss yields the zero value, never an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Jackela/citegraph/pkg/types"
)

// Author patterns.
var (
	// authorListRe matches a multi-author block ending "& Surname" right
	// before the year marker, e.g. "Smith, J., Doe, A., & Brown, T. (2021".
	authorListRe = regexp.MustCompile(`^([A-Z][\w'-]+,\s*[A-Z]\.(?:,?\s*[A-Z][\w'-]+,\s*[A-Z]\.)*,?\s*(?:&|and)\s*[A-Z][\w'-]+,?\s*[A-Z]?\.?)\s*\(\d{4}`)

	// leadAuthorRe matches a single "Surname, I." token at span start.
	leadAuthorRe = regexp.MustCompile(`^([A-Z][\w'-]+),\s*([A-Z])\.`)

	// authorBeforeYearRe matches the author-shaped token immediately
	// preceding the year marker.
	authorBeforeYearRe = regexp.MustCompile(`([A-Z][\w'-]+),?\s+([A-Z])\.\s*\(\d{4}`)

	// bareAuthorRe matches "Surname I." without the comma at span start.
	bareAuthorRe = regexp.MustCompile(`^([A-Z][\w'-]+)\s+([A-Z])\.`)

	// surnameRe extracts the first surname from a matched author list.
	surnameRe = regexp.MustCompile(`^([A-Z][\w'-]+)`)
)

// authorMatcher tries one author pattern against a span.
type authorMatcher func(span string) (string, bool)

// authorCascade is ordered from most to least specific.
var authorCascade = []authorMatcher{
	matchAuthorList,
	matchLeadAuthor,
	matchAuthorBeforeYear,
	matchBareAuthor,
}

// ExtractAuthor returns the normalized lead author of a span, or "" when
// no pattern matches. Multi-author lists collapse to "Surname et al.";
// single authors normalize to "Surname, I.".
func ExtractAuthor(span string) string {
	for _, match := range authorCascade {
		if author, ok := match(span); ok {
			return author
		}
	}
	return ""
}

func matchAuthorList(span string) (string, bool) {
	m := authorListRe.FindStringSubmatch(span)
	if m == nil {
		return "", false
	}
	s := surnameRe.FindStringSubmatch(m[1])
	if s == nil {
		return "", false
	}
	return s[1] + " et al.", true
}

func matchLeadAuthor(span string) (string, bool) {
	m := leadAuthorRe.FindStringSubmatch(span)
	if m == nil {
		return "", false
	}
	return m[1] + ", " + m[2] + ".", true
}

func matchAuthorBeforeYear(span string) (string, bool) {
	m := authorBeforeYearRe.FindStringSubmatch(span)
	if m == nil {
		return "", false
	}
	return m[1] + ", " + m[2] + ".", true
}

func matchBareAuthor(span string) (string, bool) {
	m := bareAuthorRe.FindStringSubmatch(span)
	if m == nil {
		return "", false
	}
	return m[1] + ", " + m[2] + ".", true
}

// Title patterns.
var (
	// quotedTitleRe matches a quoted title of at least five characters.
	quotedTitleRe = regexp.MustCompile(`["“]([^"”]{5,})["”]`)

	// authorBlockRe matches the full author block at the start of a span
	// so the title search can begin after it.
	authorBlockRe = regexp.MustCompile(`^((?:[A-Z][\w'-]+,?\s*(?:[A-Z]\.,?\s*)+(?:(?:&|and)\s*)?)+)`)
)

// ExtractTitle returns the most likely title of a span, or "".
func ExtractTitle(span string) string {
	for _, match := range []func(string) (string, bool){
		matchQuotedTitle,
		matchTitleBeforeYear,
		matchTitleAfterYear,
	} {
		if title, ok := match(span); ok {
			return title
		}
	}
	return ""
}

func matchQuotedTitle(span string) (string, bool) {
	m := quotedTitleRe.FindStringSubmatch(span)
	if m == nil {
		return "", false
	}
	return cleanTitle(m[1]), true
}

// matchTitleBeforeYear takes the text between the author block and the
// year marker, cut at the first period.
func matchTitleBeforeYear(span string) (string, bool) {
	loc := parenYearRe.FindStringIndex(span)
	if loc == nil {
		return "", false
	}
	prefix := span[:loc[0]]
	if m := authorBlockRe.FindString(prefix); m != "" {
		prefix = prefix[len(m):]
	}
	if i := strings.Index(prefix, "."); i >= 0 {
		prefix = prefix[:i]
	}
	title := cleanTitle(prefix)
	if len(title) < 5 {
		return "", false
	}
	return title, true
}

// matchTitleAfterYear takes the text following the year marker up to the
// next period.
func matchTitleAfterYear(span string) (string, bool) {
	loc := parenYearRe.FindStringIndex(span)
	if loc == nil {
		return "", false
	}
	rest := strings.TrimLeft(span[loc[1]:], ". ")
	if i := strings.Index(rest, "."); i >= 0 {
		rest = rest[:i]
	}
	title := cleanTitle(rest)
	if len(title) < 5 {
		return "", false
	}
	return title, true
}

func cleanTitle(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'“”.,`)
}

// dottedYearRe matches a 4-digit year terminated by a period, the common
// form in entries without parentheses.
var dottedYearRe = regexp.MustCompile(`\b(\d{4})\.`)

// ExtractYear returns the publication year of a span, or 0. Only values
// within the plausible range are accepted.
func ExtractYear(span string) int {
	for _, re := range []*regexp.Regexp{parenYearRe, dottedYearRe} {
		m := re.FindStringSubmatch(span)
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if year >= types.MinYear && year <= types.MaxYear {
			return year
		}
	}
	return 0
}

// ExtractVenue returns the publication venue of a span, or "". The venue
// is the text after the year marker up to the first comma or period,
// skipping over a title sentence when one is present.
func ExtractVenue(span string) string {
	loc := parenYearRe.FindStringIndex(span)
	if loc == nil {
		return ""
	}
	rest := strings.TrimLeft(span[loc[1]:], ". ")

	// When a title sentence follows the year, the venue starts after it.
	if i := strings.Index(rest, ". "); i >= 0 {
		rest = rest[i+2:]
	}

	end := len(rest)
	if i := strings.IndexAny(rest, ",."); i >= 0 {
		end = i
	}
	venue := strings.TrimSpace(rest[:end])
	if len(venue) <= 3 {
		return ""
	}
	return venue
}

// doiRe matches DOIs behind doi.org URLs or "DOI:"/"doi:" prefixes.
var doiRe = regexp.MustCompile(`(?i)(?:doi\.org/|doi:\s*)(10\.\S+)`)

// ExtractDOI returns the DOI of a span with trailing punctuation
// stripped, or "".
func ExtractDOI(span string) string {
	m := doiRe.FindStringSubmatch(span)
	if m == nil {
		return ""
	}
	return strings.TrimRight(m[1], ".,;)")
}
