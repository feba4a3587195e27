package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatPages(t *testing.T) {
	tests := []struct {
		in   Pages
		want string
	}{
		{nil, ""},
		{Pages{"9"}, `"9"`},
		{Pages{"5", "6", "6"}, `"5, 6, 6"`},
	}
	for _, tt := range tests {
		if got := FormatPages(tt.in); got != tt.want {
			t.Errorf("FormatPages(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRowRecord(t *testing.T) {
	rows := Parse([]string{"A", "Apples\t1:5,1:6", "Bananas\t2:9"})
	var got [][]string
	for _, r := range rows {
		got = append(got, r.Record())
	}
	want := [][]string{
		{"A", "", "", "", "", "", ""},
		{"Apples", `"5, 6"`, "", "", "", "", ""},
		{"Bananas", "", `"9"`, "", "", "", ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if len(Header) != len(want[0]) {
		t.Errorf("header has %d fields, records have %d", len(Header), len(want[0]))
	}
}

func TestRowIsDivider(t *testing.T) {
	if !Divider("Q").IsDivider() {
		t.Error("Divider(Q) should be a divider")
	}
	if (Row{Subject: "Q", Books: [Books]Pages{0: {"1"}}}).IsDivider() {
		t.Error("row with pages should not be a divider")
	}
	if (Row{Subject: "Quinoa"}).IsDivider() {
		t.Error("multi-letter subject should not be a divider")
	}
}
