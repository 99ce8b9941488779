package coverletter

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"
)

//go:embed prompt_template.txt
var defaultPromptTemplate string

// promptData represents the data passed to the prompt template
type promptData struct {
	Resume         string
	JobDescription string
}

// PromptBuilder composes the generation prompt from a text template.
// Inputs are embedded verbatim; text/template performs no escaping.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses text as a prompt template. The template may
// reference {{.Resume}} and {{.JobDescription}}.
func NewPromptBuilder(text string) (*PromptBuilder, error) {
	tmpl, err := template.New("cover_letter").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}
	return &PromptBuilder{tmpl: tmpl}, nil
}

// LoadPromptBuilder reads and parses a prompt template file.
func LoadPromptBuilder(path string) (*PromptBuilder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt template: %w", err)
	}
	return NewPromptBuilder(string(content))
}

// DefaultPromptBuilder returns a builder for the built-in template.
func DefaultPromptBuilder() *PromptBuilder {
	b, err := NewPromptBuilder(defaultPromptTemplate)
	if err != nil {
		panic(err)
	}
	return b
}

// Build renders the prompt for the given resume and job description.
func (b *PromptBuilder) Build(resume, jobDescription string) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, promptData{Resume: resume, JobDescription: jobDescription}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
