package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/form-autofill/internal/llm"
	"github.com/jonathan/form-autofill/internal/resume"
)

// fakeClient implements llm.Client, recording prompts and replaying canned
// responses.
type fakeClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func testResume() *resume.Context {
	return resume.FromText("Jane Doe\njane@example.com\n8 years of Go experience")
}

func TestGenerator_FieldContent(t *testing.T) {
	client := &fakeClient{response: "  8  "}
	gen := NewGenerator(client, testResume())

	value, err := gen.FieldContent(context.Background(), "Years of experience")
	require.NoError(t, err)
	assert.Equal(t, "8", value, "response should be trimmed")
	assert.Equal(t, 1, client.calls)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Years of experience")
	assert.Contains(t, client.prompts[0], "8 years of Go experience")
}

func TestGenerator_FieldContent_ClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("model unavailable")}
	gen := NewGenerator(client, testResume())

	_, err := gen.FieldContent(context.Background(), "Years of experience")
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "Years of experience", genErr.FieldName)
}

func TestGenerator_SelectContent_IncludesOptions(t *testing.T) {
	client := &fakeClient{response: "Yes"}
	gen := NewGenerator(client, testResume())

	value, err := gen.SelectContent(context.Background(), "Authorized to work?", []string{"Yes", "No", ""})
	require.NoError(t, err)
	assert.Equal(t, "Yes", value)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Yes, No")
	assert.NotContains(t, client.prompts[0], "Yes, No, ,")
}

func TestGenerator_RadioContent(t *testing.T) {
	client := &fakeClient{response: "None"}
	gen := NewGenerator(client, testResume())

	value, err := gen.RadioContent(context.Background(), "Veteran status", []string{"Veteran", "None"})
	require.NoError(t, err)
	assert.Equal(t, "None", value)
	assert.Contains(t, client.prompts[0], "Veteran status")
}

func TestGenerator_NilResume(t *testing.T) {
	client := &fakeClient{response: "Not available"}
	gen := NewGenerator(client, nil)

	value, err := gen.FieldContent(context.Background(), "LinkedIn")
	require.NoError(t, err)
	assert.Equal(t, "Not available", value)
	assert.Equal(t, "", gen.ResumePath())
}

func TestGenerator_EnsureResume(t *testing.T) {
	client := &fakeClient{response: "x"}
	gen := NewGenerator(client, testResume())

	// Same (empty) path is a no-op.
	require.NoError(t, gen.EnsureResume(""))

	// A missing document surfaces the load error.
	err := gen.EnsureResume("/nonexistent/resume.pdf")
	require.Error(t, err)

	var notFound *resume.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
