package extract

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
	rpdf "rsc.io/pdf"
)

// PDF reads the text layer of a PDF. Glyphs are regrouped into visual lines
// so that an index typeset in two columns (subject, references) comes back as
// "subject<TAB>references".
type PDF struct{}

func (PDF) Text(ctx context.Context, path string) (text string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return "", err
	}

	// rsc.io/pdf panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("reading pdf: %v", r)
		}
	}()

	doc, err := rpdf.NewReader(f, fi.Size())
	if err != nil {
		return "", err
	}
	pages := make([]string, 0, doc.NumPage())
	for i := 1; i <= doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		p := doc.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, strings.Join(layoutLines(p.Content().Text), "\n"))
	}
	return norm.NFKC.String(strings.Join(pages, "\n")), nil
}

const (
	// rowTolerance is how far apart two baselines may be, as a fraction of
	// the font size, and still count as the same line.
	rowTolerance = 0.4
	// spaceGap and tabGap are horizontal gaps, as a fraction of the font
	// size, that become a space or a column break.
	spaceGap = 0.15
	tabGap   = 1.5
)

type glyphRow struct {
	y      float64
	glyphs []rpdf.Text
}

// layoutLines orders glyphs top to bottom, left to right and renders each
// visual line as a string.
func layoutLines(texts []rpdf.Text) []string {
	var rows []*glyphRow
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		var row *glyphRow
		for _, r := range rows {
			if math.Abs(r.y-t.Y) <= rowTolerance*fontSize(t) {
				row = r
				break
			}
		}
		if row == nil {
			row = &glyphRow{y: t.Y}
			rows = append(rows, row)
		}
		row.glyphs = append(row.glyphs, t)
	}

	// PDF coordinates grow upwards.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		sort.SliceStable(r.glyphs, func(i, j int) bool { return r.glyphs[i].X < r.glyphs[j].X })
		lines = append(lines, renderRow(r.glyphs))
	}
	return lines
}

func renderRow(glyphs []rpdf.Text) string {
	var b strings.Builder
	for i, g := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			gap := g.X - (prev.X + prev.W)
			size := fontSize(g)
			switch {
			case gap >= tabGap*size:
				b.WriteByte('\t')
			case gap >= spaceGap*size && !endsInSpace(&b) && g.S != " ":
				b.WriteByte(' ')
			}
		}
		if g.S == " " && endsInSpace(&b) {
			continue
		}
		b.WriteString(g.S)
	}
	return strings.TrimRight(b.String(), " ")
}

func endsInSpace(b *strings.Builder) bool {
	s := b.String()
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last == ' ' || last == '\t'
}

func fontSize(t rpdf.Text) float64 {
	if t.FontSize > 0 {
		return t.FontSize
	}
	return 10
}
