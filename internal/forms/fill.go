package forms

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Actions is the browser-side primitive set the filler drives. The
// chromedp layer implements it; tests substitute a fake.
type Actions interface {
	// SetValue sets the value of a text-like input or textarea.
	SetValue(ctx context.Context, selector, value string) error
	// SelectOption selects a dropdown option by its visible label.
	SelectOption(ctx context.Context, selector, label string) error
	// Click clicks an element (radio buttons, clickables).
	Click(ctx context.Context, selector string) error
	// SetChecked checks or unchecks a checkbox.
	SetChecked(ctx context.Context, selector string, checked bool) error
	// Upload attaches a local file to a file input.
	Upload(ctx context.Context, selector, path string) error
}

// Status is the terminal state of one element in a fill pass.
type Status string

const (
	// StatusFilled means the resolved value was applied successfully.
	StatusFilled Status = "filled"
	// StatusSkipped means no value applied to the element (by design).
	StatusSkipped Status = "skipped"
	// StatusErrored means resolution or application failed for the element.
	StatusErrored Status = "errored"
)

// Result reports the outcome for one element. Per-element failures are
// isolated; a Result with StatusErrored never aborts the rest of the pass.
type Result struct {
	PassID     string
	FieldName  string
	Kind       Kind
	Selector   string
	Value      string
	Provenance Provenance
	Status     Status
	Err        error
}

// Filler runs the fill pipeline over page elements: classify, derive a
// field name, resolve a value, and apply it through the action layer.
type Filler struct {
	actions   Actions
	eval      *Evaluator
	threshold int
}

// NewFiller creates a Filler. The threshold governs fuzzy matching of
// values against checkbox labels inside checkbox containers.
func NewFiller(actions Actions, eval *Evaluator, threshold int) *Filler {
	if threshold < 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	return &Filler{actions: actions, eval: eval, threshold: threshold}
}

// FillAll processes the elements sequentially in the order given and
// returns one Result per element. The pass is tagged with a fresh pass ID.
func (f *Filler) FillAll(ctx context.Context, elements []*Element, data KnownData) []Result {
	passID := uuid.NewString()

	// The known data may point at a different resume than the session was
	// opened with; reload before generating anything.
	if err := f.eval.gen.EnsureResume(data.ResumePath()); err != nil {
		log.Printf("resume reload failed, keeping previous context: %v", err)
	}

	results := make([]Result, 0, len(elements))
	for _, el := range elements {
		result := f.FillElement(ctx, el, data)
		result.PassID = passID
		results = append(results, result)
	}
	return results
}

// FillElement runs the pipeline for a single element.
func (f *Filler) FillElement(ctx context.Context, el *Element, data KnownData) Result {
	kind := Classify(el)
	result := Result{Kind: kind, Selector: el.Selector}

	fieldName := FieldName(el)
	if fieldName == "" {
		result.Status = StatusErrored
		result.Err = &NoFieldNameError{Selector: el.Selector}
		return result
	}
	result.FieldName = fieldName

	resolved, err := f.eval.Resolve(ctx, kind, fieldName, el, data)
	if err != nil {
		result.Status = StatusErrored
		result.Err = err
		return result
	}
	result.Value = resolved.Value
	result.Provenance = resolved.Provenance

	status, err := f.apply(ctx, el, kind, fieldName, resolved)
	result.Status = status
	result.Err = err
	return result
}

// apply dispatches to the kind-specific fill routine.
func (f *Filler) apply(ctx context.Context, el *Element, kind Kind, fieldName string, resolved ResolvedValue) (Status, error) {
	switch {
	case kind.IsTextLike():
		if err := f.actions.SetValue(ctx, el.Selector, resolved.Value); err != nil {
			return StatusErrored, &FillError{FieldName: fieldName, Kind: kind, Cause: err}
		}
		return StatusFilled, nil

	case kind == KindSelect:
		if resolved.Value == "" {
			return StatusSkipped, nil
		}
		if err := f.actions.SelectOption(ctx, el.Selector, resolved.Value); err != nil {
			return StatusErrored, &FillError{FieldName: fieldName, Kind: kind, Cause: err}
		}
		return StatusFilled, nil

	case kind == KindRadio:
		if !shouldSelectRadio(resolved.Value) {
			return StatusSkipped, nil
		}
		if err := f.actions.Click(ctx, el.Selector); err != nil {
			return StatusErrored, &FillError{FieldName: fieldName, Kind: kind, Cause: err}
		}
		return StatusFilled, nil

	case kind == KindRadiogroup:
		return f.applyRadiogroup(ctx, el, fieldName, resolved.Value)

	case kind == KindCheckbox:
		if err := f.actions.SetChecked(ctx, el.Selector, isAffirmative(resolved.Value)); err != nil {
			return StatusErrored, &FillError{FieldName: fieldName, Kind: kind, Cause: err}
		}
		return StatusFilled, nil

	case kind == KindCheckboxGroup:
		return f.applyCheckboxGroup(ctx, el, fieldName, resolved.Value)

	case kind == KindFile:
		return f.applyFile(ctx, el, fieldName, resolved.Value)
	}

	// Fieldsets without recognizable children and clickables have no fill
	// routine; report them untouched.
	return StatusSkipped, nil
}

func (f *Filler) applyRadiogroup(ctx context.Context, el *Element, fieldName, value string) (Status, error) {
	if value == "" || strings.EqualFold(value, "None") {
		return StatusSkipped, nil
	}
	for _, opt := range el.Options {
		if opt.Label == value || opt.Value == value {
			if err := f.actions.Click(ctx, opt.Selector); err != nil {
				return StatusErrored, &FillError{FieldName: fieldName, Kind: KindRadiogroup, Cause: err}
			}
			return StatusFilled, nil
		}
	}
	log.Printf("no radio option %q in group %q", value, fieldName)
	return StatusSkipped, nil
}

func (f *Filler) applyCheckboxGroup(ctx context.Context, el *Element, fieldName, value string) (Status, error) {
	if value == "" {
		return StatusSkipped, nil
	}
	lowered := strings.ToLower(value)
	for _, opt := range el.Options {
		if opt.Label == "" {
			continue
		}
		if fuzzy.PartialRatio(lowered, strings.ToLower(opt.Label)) >= f.threshold {
			if err := f.actions.SetChecked(ctx, opt.Selector, true); err != nil {
				return StatusErrored, &FillError{FieldName: fieldName, Kind: KindCheckboxGroup, Cause: err}
			}
			return StatusFilled, nil
		}
	}
	log.Printf("no checkbox matching %q in container %q", value, fieldName)
	return StatusSkipped, nil
}

func (f *Filler) applyFile(ctx context.Context, el *Element, fieldName, path string) (Status, error) {
	if path == "" {
		return StatusErrored, &FillError{
			FieldName: fieldName,
			Kind:      KindFile,
			Cause:     &FileNotFoundError{Path: path},
		}
	}
	// Validate before touching the browser; a missing file must not reach
	// the upload primitive.
	if _, err := os.Stat(path); err != nil {
		return StatusErrored, &FillError{
			FieldName: fieldName,
			Kind:      KindFile,
			Cause:     &FileNotFoundError{Path: path},
		}
	}
	if err := f.actions.Upload(ctx, el.Selector, path); err != nil {
		return StatusErrored, &FillError{FieldName: fieldName, Kind: KindFile, Cause: err}
	}
	return StatusFilled, nil
}

// shouldSelectRadio reports whether a generated radio answer means
// "select it". "None" is the model's way of leaving the button alone.
func shouldSelectRadio(value string) bool {
	return value != "" && !strings.EqualFold(value, "None")
}

// isAffirmative interprets a value as a checkbox state.
func isAffirmative(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1", "on":
		return true
	}
	return false
}
