// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/Jackela/citegraph/pkg/types"
)

// typeBucket pairs a citation type with the keywords that signal it.
type typeBucket struct {
	citationType types.CitationType
	keywords     []string
}

// typeBuckets is checked in order; the first bucket with a hit wins.
// Conference markers come first because conference proceedings titles
// often also contain journal-like words.
var typeBuckets = []typeBucket{
	{types.TypeConference, []string{
		"proceedings", "conference", "symposium", "workshop", "congress",
		" conf.", "meeting of",
	}},
	{types.TypeJournal, []string{
		"journal", "transactions", "letters", "quarterly", "annals",
		"bulletin", "review", "magazine", "vol.",
	}},
	{types.TypeBook, []string{
		"press", "publisher", "publishing", "edition", "handbook",
		"chapter", "springer", "wiley", "elsevier",
	}},
	{types.TypeThesis, []string{
		"thesis", "dissertation", "phd", "doctoral", "master's",
	}},
}

// ClassifyType assigns a citation type from keyword evidence in the raw
// span. Unmatched spans stay unknown.
func ClassifyType(span string) types.CitationType {
	lower := strings.ToLower(span)
	for _, bucket := range typeBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.citationType
			}
		}
	}
	return types.TypeUnknown
}
