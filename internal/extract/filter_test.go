package extract

import "testing"

func TestCandidateSpans(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain reference lines survive",
			text: "Smith, J. (2023). Test Paper. Journal of Testing, 1(1), 1-10.\nDoe, A. (2020). Another Paper. Some Venue, 2(3), 11-20.",
			want: []string{
				"Smith, J. (2023). Test Paper. Journal of Testing, 1(1), 1-10.",
				"Doe, A. (2020). Another Paper. Some Venue, 2(3), 11-20.",
			},
		},
		{
			name: "section headers dropped",
			text: "References\nSmith, J. (2023). Test Paper. Journal of Testing, 1(1), 1-10.",
			want: []string{"Smith, J. (2023). Test Paper. Journal of Testing, 1(1), 1-10."},
		},
		{
			name: "figure and table labels dropped",
			text: "Figure 3: results overview\nTable 12\nFig. 1 shows the effect",
			want: nil,
		},
		{
			name: "page markers and bare numbers dropped",
			text: "Page 4 of 12\n17\nSmith, J. (2023). Paper. Venue, 1, 1-2.",
			want: []string{"Smith, J. (2023). Paper. Venue, 1, 1-2."},
		},
		{
			name: "case insensitive",
			text: "REFERENCES\nBIBLIOGRAPHY\nABSTRACT",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "blank lines ignored",
			text: "\n\n   \n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CandidateSpans(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d spans %q, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidCandidate(t *testing.T) {
	tests := []struct {
		name string
		span string
		want bool
	}{
		{
			name: "well formed reference",
			span: "Smith, J. (2023). Test Paper. Journal of Testing, 1(1), 1-10.",
			want: true,
		},
		{
			name: "year with disambiguation suffix",
			span: "Smith, J. (2023a). Test Paper. Journal of Testing, 1(1), 1-10.",
			want: true,
		},
		{
			name: "ends with parenthesis period",
			span: "Smith, J. (2023). Test Paper (extended version).",
			want: true,
		},
		{
			name: "too short",
			span: "Smith (2023) ok.",
			want: false,
		},
		{
			name: "no parenthesized year",
			span: "Smith, J. 2023. Test Paper. Journal of Testing, 1-10.",
			want: false,
		},
		{
			name: "starts with stop word",
			span: "This method was proposed by Smith (2023) and became popular.",
			want: false,
		},
		{
			name: "starts with lowercase",
			span: "see Smith, J. (2023). Test Paper. Journal of Testing.",
			want: false,
		},
		{
			name: "no terminal period",
			span: "Smith, J. (2023). Test Paper. Journal of Testing, 1-10",
			want: false,
		},
		{
			name: "determiner opener",
			span: "The results of Smith (2023) were never replicated at scale.",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCandidate(tt.span); got != tt.want {
				t.Errorf("ValidCandidate(%q) = %v, want %v", tt.span, got, tt.want)
			}
		})
	}
}

func TestValidCandidateLengthBoundary(t *testing.T) {
	// One character under the minimum with all other rules satisfied.
	span := "Smith watts (2020)."
	if len(span) != 19 {
		t.Fatalf("fixture length drifted: %d", len(span))
	}
	if ValidCandidate(span) {
		t.Error("span under 20 chars accepted")
	}
	longer := "Smith watts x (2020)."
	if !ValidCandidate(longer) {
		t.Errorf("span of %d chars rejected", len(longer))
	}
}
