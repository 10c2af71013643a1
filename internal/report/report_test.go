package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/score"
	"github.com/abhisek/lectio/internal/story"
)

func amine() Report {
	return Report{
		FirstName: "Amine",
		LastName:  "Benali",
		Score:     score.UserScore{Literal: 4, Inferential: 4, Evaluative: 2, Total: 10},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, amine()))

	want := "\uFEFF" +
		"Student_First_Name,Student_Last_Name,Score littéral,Score inférentiel,Score évaluatif,Score total\n" +
		"Amine,Benali,4,4,2,10\n"
	assert.Equal(t, want, buf.String())
	assert.NotContains(t, buf.String(), "\r")
}

func TestWriteCSV_QuotesNamesWithCommas(t *testing.T) {
	r := amine()
	r.LastName = "Benali, Jr"
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, r))
	assert.Contains(t, buf.String(), `Amine,"Benali, Jr",4`)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Rapport_Benali_Amine.csv", FileName(amine(), FormatCSV))
	assert.Equal(t, "Rapport_Benali_Amine.xlsx", FileName(amine(), FormatXLSX))

	r := Report{FirstName: " Léa ", LastName: "a/b"}
	assert.Equal(t, "Rapport_a_b_Léa.csv", FileName(r, FormatCSV))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestWriteXLSX(t *testing.T) {
	r := amine()
	for _, q := range story.Sample().Questions {
		r.Results = append(r.Results, quiz.Result{Question: q, UserAnswer: "réponse", IsCorrect: true, Feedback: "Bravo"})
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, r))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"Amine", "Benali", "4", "4", "2", "10"}, rows[1])

	answers, err := f.GetRows(answersSheet)
	require.NoError(t, err)
	assert.Len(t, answers, 11)
	assert.Equal(t, "Littéral", answers[1][1])
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := Save(dir, amine(), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Rapport_Benali_Amine.csv"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "\uFEFFStudent_First_Name"))
}
