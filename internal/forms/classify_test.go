package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_InputTypes(t *testing.T) {
	// Every supported explicit input type classifies as itself.
	for _, inputType := range []string{"text", "email", "tel", "url", "search", "password", "radio", "checkbox", "file"} {
		t.Run(inputType, func(t *testing.T) {
			el := &Element{Tag: "input", Type: inputType}
			assert.Equal(t, Kind(inputType), Classify(el))
		})
	}
}

func TestClassify_UnknownTypeDegradesToText(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
	}{
		{"missing type", &Element{Tag: "input"}},
		{"unsupported type", &Element{Tag: "input", Type: "color"}},
		{"unknown tag", &Element{Tag: "custom-widget"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, KindText, Classify(tt.el))
		})
	}
}

func TestClassify_Tags(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want Kind
	}{
		{"textarea", &Element{Tag: "textarea"}, KindTextarea},
		{"select", &Element{Tag: "select"}, KindSelect},
		{"plain fieldset", &Element{Tag: "fieldset"}, KindFieldset},
		{"uppercase tag", &Element{Tag: "SELECT"}, KindSelect},
		{"anchor", &Element{Tag: "a"}, KindClickable},
		{"button", &Element{Tag: "button"}, KindClickable},
		{"label", &Element{Tag: "label"}, KindClickable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.el))
		})
	}
}

func TestClassify_Containers(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want Kind
	}{
		{
			"fieldset with radios",
			&Element{Tag: "fieldset", HasRadioChild: true},
			KindRadiogroup,
		},
		{
			"fieldset with checkboxes",
			&Element{Tag: "fieldset", HasCheckboxChild: true},
			KindCheckboxGroup,
		},
		{
			"div with radiogroup role",
			&Element{Tag: "div", Attrs: map[string]string{"role": "radiogroup"}},
			KindRadiogroup,
		},
		{
			"div wrapping checkboxes",
			&Element{Tag: "div", HasCheckboxChild: true},
			KindCheckboxGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.el))
		})
	}
}

func TestKind_IsTextLike(t *testing.T) {
	assert.True(t, KindText.IsTextLike())
	assert.True(t, KindEmail.IsTextLike())
	assert.True(t, KindTextarea.IsTextLike())
	assert.False(t, KindSelect.IsTextLike())
	assert.False(t, KindCheckbox.IsTextLike())
	assert.False(t, KindFile.IsTextLike())
}
