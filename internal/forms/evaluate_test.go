package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/form-autofill/internal/resume"
)

func newTestEvaluator(client *fakeClient, data ...Pair) (*Evaluator, KnownData) {
	gen := NewGenerator(client, testResume())
	return NewEvaluator(NewMatcher(DefaultThreshold), gen), knownData(data...)
}

func TestResolve_MatchedValueWinsWithoutGeneration(t *testing.T) {
	client := &fakeClient{response: "should not be used"}
	ev, data := newTestEvaluator(client, Pair{Key: "email", Value: "a@b.com"})

	resolved, err := ev.Resolve(context.Background(), KindEmail, "Email Address", &Element{}, data)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", resolved.Value)
	assert.Equal(t, ProvenanceMatched, resolved.Provenance)
	assert.Equal(t, 0, client.calls, "matched values must not invoke the generator")
}

func TestResolve_MissInvokesGeneratorExactlyOnce(t *testing.T) {
	client := &fakeClient{response: "generated answer"}
	ev, data := newTestEvaluator(client, Pair{Key: "email", Value: "a@b.com"})

	resolved, err := ev.Resolve(context.Background(), KindText, "Why do you want this job?", &Element{}, data)
	require.NoError(t, err)
	assert.Equal(t, "generated answer", resolved.Value)
	assert.Equal(t, ProvenanceGenerated, resolved.Provenance)
	assert.Equal(t, 1, client.calls)
}

func TestResolve_GenerationFailureSurfaces(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	ev, data := newTestEvaluator(client)

	_, err := ev.Resolve(context.Background(), KindText, "Cover letter", &Element{}, data)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestResolve_SelectUsesOptionLabels(t *testing.T) {
	client := &fakeClient{response: "3-5 years"}
	ev, data := newTestEvaluator(client)

	el := &Element{
		Tag: "select",
		Options: []Option{
			{Label: "0-2 years"},
			{Label: "3-5 years"},
			{Label: "5+ years"},
		},
	}
	resolved, err := ev.Resolve(context.Background(), KindSelect, "Experience", el, data)
	require.NoError(t, err)
	assert.Equal(t, "3-5 years", resolved.Value)
	assert.Contains(t, client.prompts[0], "0-2 years, 3-5 years, 5+ years")
}

func TestResolve_LoneRadioOffersNone(t *testing.T) {
	client := &fakeClient{response: "None"}
	ev, data := newTestEvaluator(client)

	el := &Element{Tag: "input", Type: "radio", Attrs: map[string]string{"value": "Subscribe"}}
	resolved, err := ev.Resolve(context.Background(), KindRadio, "Newsletter", el, data)
	require.NoError(t, err)
	assert.Equal(t, "None", resolved.Value)
	assert.Contains(t, client.prompts[0], "Subscribe, None")
}

func TestResolve_CheckboxDefaultsToNone(t *testing.T) {
	client := &fakeClient{response: "should not be used"}
	ev, data := newTestEvaluator(client)

	for _, kind := range []Kind{KindCheckbox, KindCheckboxGroup} {
		resolved, err := ev.Resolve(context.Background(), kind, "Terms", &Element{}, data)
		require.NoError(t, err)
		assert.Equal(t, ProvenanceNone, resolved.Provenance, kind)
		assert.Empty(t, resolved.Value, kind)
	}
	assert.Equal(t, 0, client.calls, "checkboxes never generate")
}

func TestResolve_FileFallsBackToSessionResume(t *testing.T) {
	client := &fakeClient{}
	gen := NewGenerator(client, &resume.Context{Path: "/tmp/jane-resume.pdf", Text: "Jane Doe"})
	ev := NewEvaluator(NewMatcher(DefaultThreshold), gen)

	resolved, err := ev.Resolve(context.Background(), KindFile, "cv_upload", &Element{}, KnownData{})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/jane-resume.pdf", resolved.Value)
}
