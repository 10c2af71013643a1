package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/gateway"
	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/report"
	"github.com/abhisek/lectio/internal/story"
)

// answerAll grades every answer correct.
func answerAll(req llm.Request) llm.MockResponse {
	msg := req.Messages[0]
	switch {
	case len(msg.Images) > 0:
		raw, _ := json.Marshal(story.Sample())
		return llm.MockResponse{Content: raw}
	case req.JSONMode:
		return llm.MockResponse{Content: json.RawMessage(`{"isCorrect": true, "score": 2, "feedback": "Bien vu !"}`)}
	default:
		return llm.MockResponse{Content: json.RawMessage("Bravo, continue comme ça !")}
	}
}

func newHeadless(t *testing.T, input string) (*headless, *bytes.Buffer) {
	t.Helper()
	gw := gateway.New(llm.NewMockHandler(answerAll), gateway.DefaultConfig(), nil, nil)
	var out bytes.Buffer
	return &headless{
		orch:   assessment.New(gw, nil, nil, nil),
		in:     bufio.NewScanner(strings.NewReader(input)),
		out:    &out,
		dir:    t.TempDir(),
		format: report.FormatCSV,
	}, &out
}

func pagePath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o644))
	return path
}

func TestHeadless_RunsWholeSession(t *testing.T) {
	h, out := newHeadless(t, strings.Repeat("une réponse\n", 10))

	path, err := h.run(context.Background(), "Amine", "Benali", pagePath(t))
	require.NoError(t, err)
	assert.Equal(t, "Rapport_Benali_Amine.csv", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\nAmine,Benali,4,4,2,10\n"))

	text := out.String()
	assert.Contains(t, text, "Le renard et la cigogne")
	assert.Contains(t, text, "Total 10/10")
	assert.Contains(t, text, "Bravo, continue comme ça !")
	assert.Equal(t, 1, strings.Count(text, "=== Tour"))
}

func TestHeadless_InputClosedEarly(t *testing.T) {
	h, _ := newHeadless(t, "une seule réponse\n")

	_, err := h.run(context.Background(), "Amine", "Benali", pagePath(t))
	assert.ErrorIs(t, err, errInputClosed)
}

func TestHeadless_RejectsTextFile(t *testing.T) {
	h, _ := newHeadless(t, "")
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("pas une image"), 0o644))

	_, err := h.run(context.Background(), "Amine", "Benali", path)
	require.Error(t, err)
	assert.Equal(t, h.orch.Messages().Alerts.NotAnImage, err.Error())
	assert.Equal(t, assessment.Setup, h.orch.State())
}

func TestHeadless_BlankNames(t *testing.T) {
	h, _ := newHeadless(t, "")

	_, err := h.run(context.Background(), "  ", "Benali", pagePath(t))
	require.Error(t, err)
	assert.Equal(t, h.orch.Messages().Alerts.InvalidName, err.Error())
}
