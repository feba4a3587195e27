package convert

import (
	"github.com/thywilljoshua/index-converter/internal/extract"
)

// Result summarizes one converted file.
type Result struct {
	Input    string `json:"input"`
	Output   string `json:"output"`
	Rows     int    `json:"rows"`
	Subjects int    `json:"subjects"`
	Dividers int    `json:"dividers"`
	Lines    int    `json:"index_lines"`
}

type Config struct {
	// OutPath is the CSV file to write. Required.
	OutPath string
	// Extractors reads the source; nil means extract.Default().
	Extractors extract.Registry
}
