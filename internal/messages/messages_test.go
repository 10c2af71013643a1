package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrench_LoadsEmbeddedCatalog(t *testing.T) {
	c := French()
	assert.Contains(t, c.IncompleteFeedback, "Tu n'as pas répondu")
	assert.NotEmpty(t, c.DefaultFeedback)
	assert.NotEmpty(t, c.ExtractionFailed)
	assert.NotEmpty(t, c.FinalEncouragement)
	assert.NotEmpty(t, c.Alerts.AssessmentFailed)
	assert.NotEmpty(t, c.Hedging)
}

func TestFold(t *testing.T) {
	tests := map[string]string{
		"Le texte n’a pas été FOURNI": "le texte n'a pas ete fourni",
		"  Évaluatif\tet   inférentiel ": "evaluatif et inferentiel",
		"":                                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Fold(in), "Fold(%q)", in)
	}
}

func TestContainsHedging(t *testing.T) {
	c := French()

	refusals := []string{
		"Je ne peux pas répondre sans le texte.",
		"Désolé, le texte n’a pas été fourni.",
		"IMPOSSIBLE D'ÉVALUER cette réponse",
		"Peux-tu préciser ta question ?",
	}
	for _, s := range refusals {
		assert.True(t, c.ContainsHedging(s), s)
	}

	answers := []string{
		"Parce qu'il cherche la gloire.",
		"Le renard a servi la soupe dans une assiette plate.",
		"Il n'y a aucun texte sur la pancarte.",
		"Il est parti sans le texte de sa chanson.",
		"Impossible de répondre à la cigogne, elle était déjà partie.",
		"Peux-tu préciser ta réponse avec un mot du texte ?",
		"",
	}
	for _, s := range answers {
		assert.False(t, c.ContainsHedging(s), s)
	}
}

func TestLoad_RejectsMissingMessages(t *testing.T) {
	_, err := Load([]byte("default_feedback: ok\n"))
	require.Error(t, err)

	_, err = Load([]byte("default_feedback: [unclosed"))
	require.Error(t, err)
}
