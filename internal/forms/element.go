// Package forms implements the field-identification and value-resolution
// pipeline: classifying form controls, deriving semantic field names,
// matching them against caller-supplied known data, and falling back to
// LLM-generated content grounded in resume text.
package forms

import "strings"

// Kind is the classified category of a form control.
type Kind string

// Supported control kinds. Unknown input types degrade to KindText.
const (
	KindText          Kind = "text"
	KindEmail         Kind = "email"
	KindTel           Kind = "tel"
	KindURL           Kind = "url"
	KindSearch        Kind = "search"
	KindPassword      Kind = "password"
	KindTextarea      Kind = "textarea"
	KindSelect        Kind = "select"
	KindRadio         Kind = "radio"
	KindRadiogroup    Kind = "radiogroup"
	KindCheckbox      Kind = "checkbox"
	KindCheckboxGroup Kind = "checkbox-container"
	KindFile          Kind = "file"
	KindFieldset      Kind = "fieldset"
	KindClickable     Kind = "clickable"
)

// IsTextLike reports whether the kind is filled by setting a string value.
func (k Kind) IsTextLike() bool {
	switch k {
	case KindText, KindEmail, KindTel, KindURL, KindSearch, KindPassword, KindTextarea:
		return true
	}
	return false
}

// Option describes one selectable choice inside a select element,
// radiogroup, or checkbox container.
type Option struct {
	// Label is the visible text (option text, aria-label, or value attribute).
	Label string
	// Value is the underlying value attribute, if any.
	Value string
	// Selector targets the concrete child input for radio/checkbox options.
	// Empty for select options, which are driven through the parent element.
	Selector string
}

// Element is a read-only snapshot of one interactive control on a page.
// It is captured from the rendered DOM by the browser layer; its lifetime
// is bound to the page session and it is never mutated by this package.
type Element struct {
	// Tag is the lowercased tag name (input, textarea, select, fieldset).
	Tag string
	// Type is the lowercased input "type" attribute; empty for non-inputs.
	Type string
	// Attrs holds the raw attribute map as captured from the DOM.
	Attrs map[string]string
	// Label is the associated label text (label[for], aria-labelledby
	// reference, or wrapping label), already resolved from the page snapshot.
	Label string
	// Options lists selectable choices for select/radiogroup/checkbox groups.
	Options []Option
	// Selector is a stable CSS selector targeting this element.
	Selector string
	// HasRadioChild is set for containers wrapping input[type=radio] children.
	HasRadioChild bool
	// HasCheckboxChild is set for containers wrapping input[type=checkbox] children.
	HasCheckboxChild bool
}

// Attr returns the trimmed value of a captured attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	if e.Attrs == nil {
		return ""
	}
	return strings.TrimSpace(e.Attrs[name])
}
