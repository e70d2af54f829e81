// Package suggest serves the catalog of sample questions
package suggest

import (
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultQuestions []byte

// Question is one sample question
type Question struct {
	Category string `yaml:"category" json:"category"`
	Text     string `yaml:"text" json:"text"`
}

type catalogFile struct {
	Questions []Question `yaml:"questions"`
}

// Catalog is an immutable list of sample questions
type Catalog struct {
	questions []Question
}

// Default loads the embedded catalog
func Default() (*Catalog, error) {
	return Parse(defaultQuestions)
}

// Parse reads a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse question catalog")
	}

	questions := make([]Question, 0, len(f.Questions))
	for i, q := range f.Questions {
		q.Category = strings.TrimSpace(q.Category)
		q.Text = strings.TrimSpace(q.Text)
		if q.Text == "" {
			return nil, errors.Errorf("question %d has no text", i)
		}
		questions = append(questions, q)
	}
	return &Catalog{questions: questions}, nil
}

// Len returns the number of questions
func (c *Catalog) Len() int {
	return len(c.questions)
}

// String implements fuzzy.Source over the question text
func (c *Catalog) String(i int) string {
	return c.questions[i].Text
}

// Find ranks questions against pattern, best first. An empty pattern
// returns the catalog in order. limit <= 0 means no limit.
func (c *Catalog) Find(pattern string, limit int) []Question {
	pattern = strings.TrimSpace(pattern)

	var out []Question
	if pattern == "" {
		out = make([]Question, len(c.questions))
		copy(out, c.questions)
	} else {
		// Questions containing the pattern verbatim rank ahead of
		// subsequence matches; fuzzy score orders each group.
		lower := strings.ToLower(pattern)
		matches := fuzzy.FindFrom(pattern, c)
		out = make([]Question, 0, len(matches))
		var loose []Question
		for _, m := range matches {
			q := c.questions[m.Index]
			if strings.Contains(strings.ToLower(q.Text), lower) {
				out = append(out, q)
			} else {
				loose = append(loose, q)
			}
		}
		out = append(out, loose...)
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
