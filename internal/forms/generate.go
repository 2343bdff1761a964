package forms

import (
	"context"
	"strings"

	"github.com/jonathan/form-autofill/internal/llm"
	"github.com/jonathan/form-autofill/internal/prompts"
	"github.com/jonathan/form-autofill/internal/resume"
)

const promptFile = "fill.json"

// Generator produces field values from resume context through an LLM when
// no known-data key matches. Single-field answers are short, so every call
// uses the lite model tier.
type Generator struct {
	client llm.Client
	resume *resume.Context
}

// NewGenerator creates a Generator. The resume context may be nil when no
// resume was supplied; prompts then carry an empty resume section and the
// model answers "Not available" for personal details.
func NewGenerator(client llm.Client, resumeCtx *resume.Context) *Generator {
	return &Generator{client: client, resume: resumeCtx}
}

// ResumePath returns the path of the loaded resume document, if any.
func (g *Generator) ResumePath() string {
	if g.resume == nil {
		return ""
	}
	return g.resume.Path
}

// EnsureResume reloads the resume context when the caller points the pass
// at a different document mid-session.
func (g *Generator) EnsureResume(path string) error {
	if path == "" || (g.resume != nil && g.resume.Path == path) {
		return nil
	}
	ctx, err := resume.Load(path)
	if err != nil {
		return err
	}
	g.resume = ctx
	return nil
}

// FieldContent generates an answer for a free-text field.
func (g *Generator) FieldContent(ctx context.Context, fieldName string) (string, error) {
	template, err := prompts.Get(promptFile, "text-field")
	if err != nil {
		return "", &GenerationError{FieldName: fieldName, Cause: err}
	}
	prompt := prompts.Format(template, map[string]string{
		"FieldLabel":    fieldName,
		"ResumeContent": g.resumeText(),
	})
	return g.generate(ctx, fieldName, prompt)
}

// SelectContent picks one of the dropdown option labels.
func (g *Generator) SelectContent(ctx context.Context, fieldName string, options []string) (string, error) {
	return g.optionContent(ctx, "select-field", fieldName, options)
}

// RadioContent picks one of the radio option labels. "None" in the option
// list means "select nothing" and may be returned by the model.
func (g *Generator) RadioContent(ctx context.Context, fieldName string, options []string) (string, error) {
	return g.optionContent(ctx, "radio-field", fieldName, options)
}

func (g *Generator) optionContent(ctx context.Context, promptKey, fieldName string, options []string) (string, error) {
	labels := make([]string, 0, len(options))
	for _, opt := range options {
		if strings.TrimSpace(opt) != "" {
			labels = append(labels, opt)
		}
	}

	template, err := prompts.Get(promptFile, promptKey)
	if err != nil {
		return "", &GenerationError{FieldName: fieldName, Cause: err}
	}
	prompt := prompts.Format(template, map[string]string{
		"FieldLabel":    fieldName,
		"Options":       strings.Join(labels, ", "),
		"ResumeContent": g.resumeText(),
	})
	return g.generate(ctx, fieldName, prompt)
}

func (g *Generator) generate(ctx context.Context, fieldName, prompt string) (string, error) {
	response, err := g.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", &GenerationError{FieldName: fieldName, Cause: err}
	}
	return strings.TrimSpace(response), nil
}

func (g *Generator) resumeText() string {
	if g.resume == nil {
		return ""
	}
	return g.resume.Text
}
