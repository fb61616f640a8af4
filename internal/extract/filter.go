// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract finds bibliographic citations in plain document text.
// filter.go handles candidate selection: boilerplate removal and span
// validation before any field extraction runs.
package extract

import (
	"regexp"
	"strings"
)

// boilerplateRes match lines that are document furniture rather than
// reference entries: section headers, figure/table labels, page markers.
// Matching is case-insensitive and anchored to the whole line.
var boilerplateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^references?:?$`),
	regexp.MustCompile(`(?i)^bibliography:?$`),
	regexp.MustCompile(`(?i)^works cited:?$`),
	regexp.MustCompile(`(?i)^(abstract|introduction|conclusions?|discussion|acknowledg(e)?ments?|appendix)\b.{0,10}$`),
	regexp.MustCompile(`(?i)^(figure|fig\.?|table)\s+\d+`),
	regexp.MustCompile(`(?i)^page\s+\d+(\s+of\s+\d+)?$`),
	regexp.MustCompile(`^\d{1,4}$`),
	regexp.MustCompile(`(?i)^copyright\b`),
	regexp.MustCompile(`(?i)^all rights reserved`),
	regexp.MustCompile(`(?i)^https?://\S+$`),
}

// stopWords are lowercase first words that disqualify a span: determiners
// and vague sentence openers that signal running prose, not a reference.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "this": true, "that": true,
	"these": true, "those": true, "it": true, "we": true, "our": true,
	"method": true, "methods": true, "study": true, "studies": true,
	"approach": true, "result": true, "results": true, "however": true,
	"therefore": true, "thus": true, "table": true, "figure": true,
	"section": true,
}

// parenYearRe matches a parenthesized 4-digit year with an optional
// disambiguating lowercase suffix, e.g. "(2023)" or "(2023a)".
var parenYearRe = regexp.MustCompile(`\((\d{4})([a-z]?)\)`)

// firstWordRe captures the leading word of a span.
var firstWordRe = regexp.MustCompile(`^([A-Za-z][\w'-]*)`)

// CandidateSpans splits text into one candidate span per non-empty line,
// discarding boilerplate. Each surviving span still has to pass
// ValidCandidate before extraction.
func CandidateSpans(text string) []string {
	var spans []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isBoilerplate(line) {
			continue
		}
		spans = append(spans, line)
	}
	return spans
}

func isBoilerplate(line string) bool {
	for _, re := range boilerplateRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// ValidCandidate reports whether a span looks like a reference entry:
// long enough, carries a parenthesized year, opens with a capitalized
// non-stop word, and ends like a sentence. Rejection is silent; the
// filter trades recall for precision.
func ValidCandidate(span string) bool {
	if len(span) < 20 {
		return false
	}
	if !parenYearRe.MatchString(span) {
		return false
	}

	m := firstWordRe.FindStringSubmatch(span)
	if m == nil {
		return false
	}
	first := m[1]
	if first[0] < 'A' || first[0] > 'Z' {
		return false
	}
	if stopWords[strings.ToLower(first)] {
		return false
	}

	return strings.HasSuffix(span, ".") || strings.HasSuffix(span, ").")
}
