package forms

import "strings"

// maxFieldNameLength caps label-derived names; anything longer is assumed
// to be surrounding prose rather than a label.
const maxFieldNameLength = 100

// nameAttributes are checked in priority order before label text.
var nameAttributes = []string{"name", "id", "aria-label", "data-testid"}

// FieldName derives the most meaningful name for an element.
// Direct attributes win over associated label text, which wins over the
// placeholder. Returns "" when nothing usable is present.
func FieldName(el *Element) string {
	for _, attr := range nameAttributes {
		if v := el.Attr(attr); v != "" {
			return v
		}
	}

	if label := CleanLabel(el.Label); label != "" && len(label) < maxFieldNameLength {
		return label
	}

	return el.Attr("placeholder")
}

// CleanLabel strips form artifacts from label text: required markers,
// trailing colons, and surrounding prose. Multi-line labels keep their
// shortest non-empty line, which is usually the label proper.
func CleanLabel(text string) string {
	text = strings.ReplaceAll(text, "*", "")
	text = strings.ReplaceAll(text, ":", "")

	var shortest string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		if shortest == "" || len(line) < len(shortest) {
			shortest = line
		}
	}
	return shortest
}
