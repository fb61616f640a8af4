package extract

import (
	"testing"

	"github.com/Jackela/citegraph/pkg/types"
)

func TestClassifyType(t *testing.T) {
	tests := []struct {
		name string
		span string
		want types.CitationType
	}{
		{
			name: "journal",
			span: "Smith, J. (2023). Test Paper. Journal of Testing, 1(1), 1-10.",
			want: types.TypeJournal,
		},
		{
			name: "conference",
			span: "Doe, A. (2021). Fast parsing. Proceedings of the 10th Parsing Conference.",
			want: types.TypeConference,
		},
		{
			name: "conference beats journal keywords",
			span: "Doe, A. (2021). Results. Proceedings of the Journal Club Symposium.",
			want: types.TypeConference,
		},
		{
			name: "book",
			span: "Knuth, D. (1968). The Art of Computer Programming. Addison-Wesley Publishing.",
			want: types.TypeBook,
		},
		{
			name: "thesis",
			span: "Lee, K. (2019). Neural methods for citation parsing. PhD thesis, MIT.",
			want: types.TypeThesis,
		},
		{
			name: "transactions is journal",
			span: "Shannon, C. (1948). A mathematical theory. IEEE Transactions, 27.",
			want: types.TypeJournal,
		},
		{
			name: "unknown",
			span: "Smith, J. (2023). Untyped reference with no venue hints.",
			want: types.TypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyType(tt.span); got != tt.want {
				t.Errorf("ClassifyType(%q) = %q, want %q", tt.span, got, tt.want)
			}
		})
	}
}
