// Package report renders the end-of-assessment summary for download.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/score"
)

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "csv" or "xlsx", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q (want csv or xlsx)", s)
}

// Header is the column row shared by every format.
var Header = []string{
	"Student_First_Name",
	"Student_Last_Name",
	"Score littéral",
	"Score inférentiel",
	"Score évaluatif",
	"Score total",
}

// Report is one pupil's summary. Results is optional and only rendered
// by formats that have room for it.
type Report struct {
	FirstName string
	LastName  string
	Score     score.UserScore
	Results   []quiz.Result
}

// Row returns the data row matching Header.
func (r Report) Row() []string {
	return []string{
		r.FirstName,
		r.LastName,
		strconv.Itoa(r.Score.Literal),
		strconv.Itoa(r.Score.Inferential),
		strconv.Itoa(r.Score.Evaluative),
		strconv.Itoa(r.Score.Total),
	}
}

var unsafeName = strings.NewReplacer("/", "_", `\`, "_", "\x00", "")

// FileName returns Rapport_<lastName>_<firstName>.<ext>.
func FileName(r Report, f Format) string {
	return fmt.Sprintf("Rapport_%s_%s.%s",
		unsafeName.Replace(strings.TrimSpace(r.LastName)),
		unsafeName.Replace(strings.TrimSpace(r.FirstName)),
		f,
	)
}

// Write renders r in format f.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, r)
	case FormatXLSX:
		return WriteXLSX(w, r)
	}
	return fmt.Errorf("unknown report format %q", f)
}

// Save writes r into dir under FileName and returns the full path.
func Save(dir string, r Report, f Format) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, FileName(r, f))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := Write(file, r, f); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	return path, nil
}
