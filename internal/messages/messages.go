// Package messages holds the French strings shown to the pupil, embedded
// as a YAML catalog, and the phrase set used to detect model refusals.
package messages

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed messages_fr.yaml
var frenchYAML []byte

// Alerts are one-line notices for failures the pupil must act on.
type Alerts struct {
	AssessmentFailed string `yaml:"assessment_failed"`
	NotAnImage       string `yaml:"not_an_image"`
	SubmitFailed     string `yaml:"submit_failed"`
	InvalidName      string `yaml:"invalid_name"`
	UnreadableFile   string `yaml:"unreadable_file"`
	ExportFailed     string `yaml:"export_failed"`
}

// Catalog is a loaded message set.
type Catalog struct {
	DefaultFeedback    string   `yaml:"default_feedback"`
	IncompleteFeedback string   `yaml:"incomplete_feedback"`
	ExtractionFailed   string   `yaml:"extraction_failed"`
	FinalEncouragement string   `yaml:"final_encouragement"`
	Alerts             Alerts   `yaml:"alerts"`
	Hedging            []string `yaml:"hedging"`

	folded []string
}

// Load parses a YAML catalog. Every top-level message is required.
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse message catalog: %w", err)
	}

	required := map[string]string{
		"default_feedback":    c.DefaultFeedback,
		"incomplete_feedback": c.IncompleteFeedback,
		"extraction_failed":   c.ExtractionFailed,
		"final_encouragement": c.FinalEncouragement,
	}
	for key, v := range required {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("message catalog: %s is empty", key)
		}
	}

	for _, h := range c.Hedging {
		if f := Fold(h); f != "" {
			c.folded = append(c.folded, f)
		}
	}
	return &c, nil
}

var french = sync.OnceValue(func() *Catalog {
	c, err := Load(frenchYAML)
	if err != nil {
		panic(err)
	}
	return c
})

// French returns the embedded French catalog.
func French() *Catalog {
	return french()
}

// ContainsHedging reports whether s contains any refusal phrase, ignoring
// case, accents and apostrophe style.
func (c *Catalog) ContainsHedging(s string) bool {
	f := Fold(s)
	if f == "" {
		return false
	}
	for _, h := range c.folded {
		if strings.Contains(f, h) {
			return true
		}
	}
	return false
}

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'", "`", "'")

// Fold lower-cases s, strips diacritics, unifies apostrophes and collapses
// whitespace, so "Le texte n’a pas été FOURNI" folds to
// "le texte n'a pas ete fourni".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = apostrophes.Replace(strings.ToLower(out))
	return strings.Join(strings.Fields(out), " ")
}
