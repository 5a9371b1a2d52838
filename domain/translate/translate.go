// Package translate holds the translation request record.
package translate

import (
	"strings"

	"github.com/rafaeelricco/commit-gen/diagnostic"
)

const DefaultTargetLanguage = "pt"

// Translate asks for content to be translated into TargetLanguage.
type Translate struct {
	Content        string `json:"content"`
	TargetLanguage string `json:"target_language,omitempty"`
}

func (t *Translate) SetDefaults() {
	t.TargetLanguage = DefaultTargetLanguage
}

func (t *Translate) Validate() error {
	var vs diagnostic.Violations
	if strings.TrimSpace(t.TargetLanguage) == "" {
		vs.Add(diagnostic.CodeInvalid, "must not be blank", "target_language")
	}

	return vs.Err()
}
