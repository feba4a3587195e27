package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitAtMarker(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no marker",
			text: "Contents\nChapter 1\nIndex\nApples\t1:2",
			want: nil,
		},
		{
			name: "marker case differs",
			text: "index\nnote: the numbers indicate the book number, followed by the page number.\nA",
			want: nil,
		},
		{
			name: "marker with nothing after it",
			text: "Front matter\n" + Marker + "\n\n   \n",
			want: nil,
		},
		{
			name: "body trimmed and split",
			text: "Preface\n" + Marker + "\n\nA\nApples\t1:5,1:6\r\nBananas\t2:9\n\n",
			want: []string{"A", "Apples\t1:5,1:6", "Bananas\t2:9"},
		},
		{
			name: "inner blank lines kept",
			text: Marker + "\nA\n\nB",
			want: []string{"A", "", "B"},
		},
		{
			name: "first occurrence only",
			text: Marker + "\nA\n" + Marker + "\nB",
			want: []string{"A", "Index", "Note: The numbers indicate the book number, followed by the page number.", "B"},
		},
		{
			name: "page breaks split lines",
			text: Marker + "\nA\fB\rC",
			want: []string{"A", "B", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitAtMarker(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitAtMarker() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitAtMarkerFeedsParse(t *testing.T) {
	text := "Title page\n" + Marker + "\nA\nApples\t1:5,1:6\nBananas\t2:9\n"
	rows := Parse(SplitAtMarker(text))
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].Subject != "A" || rows[2].Subject != "Bananas" {
		t.Errorf("unexpected subjects: %q, %q", rows[0].Subject, rows[2].Subject)
	}
}
