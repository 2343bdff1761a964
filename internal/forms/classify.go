package forms

import "strings"

// inputKinds are the input type attribute values classified as-is.
var inputKinds = map[string]Kind{
	"text":     KindText,
	"email":    KindEmail,
	"tel":      KindTel,
	"url":      KindURL,
	"search":   KindSearch,
	"password": KindPassword,
	"radio":    KindRadio,
	"checkbox": KindCheckbox,
	"file":     KindFile,
}

// Classify maps an element snapshot to its control kind.
// An explicit input type attribute takes precedence; an absent or
// unrecognized type degrades to text rather than failing.
func Classify(el *Element) Kind {
	switch strings.ToLower(el.Tag) {
	case "input":
		if kind, ok := inputKinds[strings.ToLower(el.Type)]; ok {
			return kind
		}
		return KindText
	case "textarea":
		return KindTextarea
	case "select":
		return KindSelect
	case "fieldset":
		return classifyContainer(el, KindFieldset)
	case "a", "button", "label":
		return KindClickable
	}

	if el.Attr("role") == "radiogroup" {
		return KindRadiogroup
	}
	return classifyContainer(el, KindText)
}

// classifyContainer resolves container elements by their children: a group
// of radios behaves as a radiogroup, a group of checkboxes as a
// checkbox-container. Anything else keeps the fallback kind.
func classifyContainer(el *Element, fallback Kind) Kind {
	if el.HasRadioChild {
		return KindRadiogroup
	}
	if el.HasCheckboxChild {
		return KindCheckboxGroup
	}
	return fallback
}
