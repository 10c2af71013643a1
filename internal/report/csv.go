package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

const utf8BOM = "\uFEFF"

// WriteCSV writes a UTF-8 CSV with BOM, the header and one row, using LF
// line endings.
func WriteCSV(w io.Writer, r Report) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.Write(r.Row()); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
