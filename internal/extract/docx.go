package extract

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DOCX reads Word documents. Body paragraphs are joined with newlines; tabs
// and manual line breaks inside a paragraph are kept.
type DOCX struct{}

func (DOCX) Text(ctx context.Context, path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()
	return paragraphText(doc.Editable().GetContent())
}

// paragraphText walks word/document.xml and returns the text of every
// paragraph outside tables, one paragraph per line.
func paragraphText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	var (
		paras   []string
		cur     strings.Builder
		inPara  bool
		inText  bool
		skip    int // depth inside pPr/rPr, whose w:tab elements are tab stops
		inTable int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				inTable++
			case "p":
				if inTable == 0 {
					inPara = true
					cur.Reset()
				}
			case "pPr", "rPr":
				skip++
			case "t":
				inText = inPara && skip == 0
			case "tab":
				if inPara && skip == 0 {
					cur.WriteByte('\t')
				}
			case "br", "cr":
				if inPara && skip == 0 {
					cur.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				inTable--
			case "p":
				if inPara && inTable == 0 {
					paras = append(paras, cur.String())
					inPara = false
				}
			case "pPr", "rPr":
				skip--
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	return strings.Join(paras, "\n"), nil
}
