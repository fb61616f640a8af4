// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "github.com/Jackela/citegraph/pkg/types"

// duplicateThreshold is the raw-text similarity above which a fallback
// citation is treated as a duplicate of a primary one.
const duplicateThreshold = 0.8

// Overlap computes positional character overlap between two raw texts:
// the count of matching positions divided by the longer length. Both
// empty counts as identical. The measure assumes aligned prefixes;
// see DESIGN.md for the tradeoff against token-based similarity.
func Overlap(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}

	matches := 0
	for i := 0; i < shorter; i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(longer)
}

// Merge reconciles primary citations (external extractor output) with the
// rule-based fallback list. Primary citations always survive; a fallback
// citation is appended only when it resembles no primary entry, so the
// fallback fills gaps without overriding the primary source.
func Merge(primary, fallback []types.Citation) []types.Citation {
	merged := make([]types.Citation, 0, len(primary)+len(fallback))
	merged = append(merged, primary...)

	for _, fb := range fallback {
		duplicate := false
		for _, p := range primary {
			if Overlap(p.RawText, fb.RawText) > duplicateThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			merged = append(merged, fb)
		}
	}
	return merged
}
