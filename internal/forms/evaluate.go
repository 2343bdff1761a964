package forms

import (
	"context"
	"errors"
)

// Provenance records how a value was resolved for an element.
type Provenance string

const (
	// ProvenanceMatched means the value came from caller-supplied known data.
	ProvenanceMatched Provenance = "matched"
	// ProvenanceGenerated means the value was produced by the LLM.
	ProvenanceGenerated Provenance = "generated"
	// ProvenanceNone means no value applies (e.g. unchecked checkbox).
	ProvenanceNone Provenance = "none"
)

// ResolvedValue is the final value chosen for one element, tagged with how
// it was obtained. At most one ResolvedValue exists per element per pass.
type ResolvedValue struct {
	Value      string
	Provenance Provenance
	// Score is the fuzzy similarity for matched values, 0 otherwise.
	Score int
}

// Evaluator resolves the final value for a classified element: known-data
// matches always take precedence, generation fills the gaps.
type Evaluator struct {
	matcher *Matcher
	gen     *Generator
}

// NewEvaluator creates an Evaluator from a matcher and a generator.
func NewEvaluator(matcher *Matcher, gen *Generator) *Evaluator {
	return &Evaluator{matcher: matcher, gen: gen}
}

// Resolve returns the value for an element. A matched value is returned
// as-is for any kind. On a miss, behavior depends on the kind: text-like
// fields get generated free text, selects and radio groups get a generated
// option choice, checkboxes stay unchecked, and file inputs resolve to the
// session resume path. Generation failures surface as GenerationError.
func (ev *Evaluator) Resolve(ctx context.Context, kind Kind, fieldName string, el *Element, data KnownData) (ResolvedValue, error) {
	value, score, err := ev.matcher.Match(fieldName, data)
	if err == nil {
		return ResolvedValue{Value: value, Provenance: ProvenanceMatched, Score: score}, nil
	}
	if !errors.Is(err, ErrNoMatch) {
		return ResolvedValue{}, err
	}

	switch {
	case kind.IsTextLike():
		generated, err := ev.gen.FieldContent(ctx, fieldName)
		if err != nil {
			return ResolvedValue{}, err
		}
		return ResolvedValue{Value: generated, Provenance: ProvenanceGenerated}, nil

	case kind == KindSelect:
		generated, err := ev.gen.SelectContent(ctx, fieldName, optionLabels(el))
		if err != nil {
			return ResolvedValue{}, err
		}
		return ResolvedValue{Value: generated, Provenance: ProvenanceGenerated}, nil

	case kind == KindRadio:
		// A lone radio has two outcomes: its own label, or "None" to leave
		// it untouched.
		label := el.Attr("aria-label")
		if label == "" {
			label = el.Attr("value")
		}
		options := []string{"None"}
		if label != "" {
			options = []string{label, "None"}
		}
		generated, err := ev.gen.RadioContent(ctx, fieldName, options)
		if err != nil {
			return ResolvedValue{}, err
		}
		return ResolvedValue{Value: generated, Provenance: ProvenanceGenerated}, nil

	case kind == KindRadiogroup:
		generated, err := ev.gen.RadioContent(ctx, fieldName, optionLabels(el))
		if err != nil {
			return ResolvedValue{}, err
		}
		return ResolvedValue{Value: generated, Provenance: ProvenanceGenerated}, nil

	case kind == KindCheckbox || kind == KindCheckboxGroup:
		// Checkboxes default to unchecked unless the caller said otherwise.
		return ResolvedValue{Provenance: ProvenanceNone}, nil

	case kind == KindFile:
		path := data.ResumePath()
		if path == "" {
			path = ev.gen.ResumePath()
		}
		return ResolvedValue{Value: path, Provenance: ProvenanceMatched}, nil
	}

	// Fieldsets without options, clickables: nothing to resolve.
	return ResolvedValue{Provenance: ProvenanceNone}, nil
}

func optionLabels(el *Element) []string {
	if el == nil {
		return nil
	}
	labels := make([]string, 0, len(el.Options))
	for _, opt := range el.Options {
		if opt.Label != "" {
			labels = append(labels, opt.Label)
		}
	}
	return labels
}
