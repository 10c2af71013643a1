package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Rapport"
	answersSheet = "Réponses"
)

var answersHeader = []any{"Question", "Type", "Réponse de l'élève", "Résultat", "Essais", "Commentaire", "Réponse attendue"}

// WriteXLSX writes a workbook whose first sheet mirrors the CSV. When
// results are present a second sheet lists every question.
func WriteXLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := []any{r.FirstName, r.LastName, r.Score.Literal, r.Score.Inferential, r.Score.Evaluative, r.Score.Total}
	if err := f.SetSheetRow(summarySheet, "A2", &row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	if len(r.Results) > 0 {
		if err := writeAnswers(f, r); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeAnswers(f *excelize.File, r Report) error {
	if _, err := f.NewSheet(answersSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	if err := f.SetSheetRow(answersSheet, "A1", &answersHeader); err != nil {
		return fmt.Errorf("write answers header: %w", err)
	}

	for i, res := range r.Results {
		verdict := "Incorrect"
		if res.IsCorrect {
			verdict = "Correct"
		}
		row := []any{
			res.Question.Text,
			res.Question.Type.Label(),
			res.UserAnswer,
			verdict,
			res.Attempt,
			res.Feedback,
			res.CorrectAnswer,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(answersSheet, cell, &row); err != nil {
			return fmt.Errorf("write answer %d: %w", res.Question.ID, err)
		}
	}
	return nil
}
