// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"

	"github.com/Jackela/citegraph/pkg/types"
)

// Scoring weights. The total over all fields is 1.0.
const (
	authorWeight       = 0.25
	authorMarginal     = 0.15
	titleWeight        = 0.25
	titleMarginal      = 0.15
	yearWeight         = 0.20
	venueWeight        = 0.15
	doiWeight          = 0.15
	confidenceFloor    = 0.1
	substantialTitleLen = 10
)

// wellFormedAuthorRe matches the two canonical author forms produced by
// the cascade: "Surname, I." and "Surname et al.".
var wellFormedAuthorRe = regexp.MustCompile(`^[A-Z][\w'-]+(?:, [A-Z]\.| et al\.)$`)

// ScoreConfidence computes the field-completeness confidence for a
// citation. Well-formed fields earn full weight, marginal ones a reduced
// weight. The result is floored at 0.1 so every accepted candidate keeps
// a nonzero score, and capped at 1.0.
func ScoreConfidence(c *types.Citation) float64 {
	score := 0.0

	switch {
	case wellFormedAuthorRe.MatchString(c.Author):
		score += authorWeight
	case c.Author != "":
		score += authorMarginal
	}

	switch {
	case len(c.Title) >= substantialTitleLen:
		score += titleWeight
	case c.Title != "":
		score += titleMarginal
	}

	if c.Year >= types.MinYear && c.Year <= types.MaxYear {
		score += yearWeight
	}
	if c.Venue != "" {
		score += venueWeight
	}
	if c.DOI != "" {
		score += doiWeight
	}

	if score < confidenceFloor {
		score = confidenceFloor
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
