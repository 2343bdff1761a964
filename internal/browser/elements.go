package browser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/form-autofill/internal/forms"
)

// skippedInputTypes are input types that are not fillable form fields.
var skippedInputTypes = map[string]bool{
	"hidden": true,
	"submit": true,
	"button": true,
	"image":  true,
	"reset":  true,
}

// simpleID matches id values that are safe to use directly in a selector.
var simpleID = regexp.MustCompile(`^[A-Za-z][\w-]*$`)

// DiscoverElements captures the rendered page and returns snapshots of the
// interactive controls inside formSelector (or the first form on the page
// when empty). Element order follows document order.
func (s *Session) DiscoverElements(formSelector string) ([]*forms.Element, error) {
	html, err := s.HTML()
	if err != nil {
		return nil, err
	}
	return ParseElements(html, formSelector)
}

// ParseElements extracts control snapshots from rendered HTML. Split out
// from DiscoverElements so the parsing logic is testable without a browser.
func ParseElements(html, formSelector string) ([]*forms.Element, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page HTML: %w", err)
	}

	scope := doc.Find("body")
	if formSelector != "" {
		if sel := doc.Find(formSelector); sel.Length() > 0 {
			scope = sel.First()
		} else {
			return nil, fmt.Errorf("no element matches form selector %q", formSelector)
		}
	} else if form := doc.Find("form"); form.Length() > 0 {
		scope = form.First()
	}

	var elements []*forms.Element
	scope.Find("input, textarea, select, fieldset").Each(func(_ int, sel *goquery.Selection) {
		tag := goquery.NodeName(sel)

		if tag == "input" {
			inputType := strings.ToLower(attr(sel, "type"))
			if skippedInputTypes[inputType] {
				return
			}
			// Radios and checkboxes inside a fieldset are driven through
			// their container, not individually.
			if (inputType == "radio" || inputType == "checkbox") &&
				sel.ParentsFiltered("fieldset").Length() > 0 {
				return
			}
		}

		elements = append(elements, snapshotElement(doc, sel, tag))
	})

	return elements, nil
}

// snapshotElement builds a forms.Element from one DOM node.
func snapshotElement(doc *goquery.Document, sel *goquery.Selection, tag string) *forms.Element {
	el := &forms.Element{
		Tag:      tag,
		Attrs:    attrMap(sel),
		Label:    associatedLabel(doc, sel),
		Selector: cssSelector(sel),
	}
	if tag == "input" {
		el.Type = strings.ToLower(attr(sel, "type"))
	}

	switch tag {
	case "select":
		sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
			label := strings.TrimSpace(opt.Text())
			if label == "" {
				return
			}
			el.Options = append(el.Options, forms.Option{
				Label: label,
				Value: attr(opt, "value"),
			})
		})
	case "fieldset":
		snapshotGroupChildren(doc, sel, el)
	}

	return el
}

// snapshotGroupChildren captures radio/checkbox children of a container as
// options, each with its own selector for direct interaction.
func snapshotGroupChildren(doc *goquery.Document, sel *goquery.Selection, el *forms.Element) {
	sel.Find("input[type='radio']").Each(func(_ int, radio *goquery.Selection) {
		el.HasRadioChild = true
		el.Options = append(el.Options, forms.Option{
			Label:    optionLabel(doc, radio),
			Value:    attr(radio, "value"),
			Selector: cssSelector(radio),
		})
	})
	if el.HasRadioChild {
		return
	}
	sel.Find("input[type='checkbox']").Each(func(_ int, box *goquery.Selection) {
		el.HasCheckboxChild = true
		el.Options = append(el.Options, forms.Option{
			Label:    optionLabel(doc, box),
			Value:    attr(box, "value"),
			Selector: cssSelector(box),
		})
	})
}

// optionLabel names one radio/checkbox inside a group: aria-label, then
// associated label text, then value, then id.
func optionLabel(doc *goquery.Document, sel *goquery.Selection) string {
	if v := attr(sel, "aria-label"); v != "" {
		return v
	}
	if v := forms.CleanLabel(associatedLabel(doc, sel)); v != "" {
		return v
	}
	if v := attr(sel, "value"); v != "" {
		return v
	}
	return attr(sel, "id")
}

// associatedLabel resolves the label text for a control: label[for=id],
// an aria-labelledby reference, or a wrapping label element.
func associatedLabel(doc *goquery.Document, sel *goquery.Selection) string {
	if id := attr(sel, "id"); id != "" && simpleID.MatchString(id) {
		if label := doc.Find(fmt.Sprintf("label[for=%q]", id)); label.Length() > 0 {
			if text := strings.TrimSpace(label.First().Text()); text != "" {
				return text
			}
		}
	}

	if ref := attr(sel, "aria-labelledby"); ref != "" && simpleID.MatchString(ref) {
		if target := doc.Find("#" + ref); target.Length() > 0 {
			if text := strings.TrimSpace(target.First().Text()); text != "" {
				return text
			}
		}
	}

	if wrapper := sel.ParentsFiltered("label"); wrapper.Length() > 0 {
		return strings.TrimSpace(wrapper.First().Text())
	}

	// Legends label their fieldset.
	if goquery.NodeName(sel) == "fieldset" {
		if legend := sel.Find("legend"); legend.Length() > 0 {
			return strings.TrimSpace(legend.First().Text())
		}
	}

	return ""
}

// cssSelector generates a stable selector for an element. Attribute-based
// selectors are preferred; structural nth-child paths are the last resort.
func cssSelector(sel *goquery.Selection) string {
	tag := goquery.NodeName(sel)

	if v := attr(sel, "data-testid"); v != "" {
		return fmt.Sprintf("%s[data-testid=%q]", tag, v)
	}
	if id := attr(sel, "id"); id != "" && simpleID.MatchString(id) {
		return "#" + id
	}
	if name := attr(sel, "name"); name != "" {
		// Radio/checkbox siblings share a name; the value disambiguates.
		if v := attr(sel, "value"); v != "" && isToggleInput(sel) {
			return fmt.Sprintf("%s[name=%q][value=%q]", tag, name, v)
		}
		return fmt.Sprintf("%s[name=%q]", tag, name)
	}
	if v := attr(sel, "aria-label"); v != "" {
		return fmt.Sprintf("%s[aria-label=%q]", tag, v)
	}

	return nthChildPath(sel)
}

// nthChildPath builds a short structural path, anchoring at the nearest
// ancestor with a usable id.
func nthChildPath(sel *goquery.Selection) string {
	var parts []string
	cur := sel
	for depth := 0; depth < 4 && cur.Length() > 0; depth++ {
		tag := goquery.NodeName(cur)
		if tag == "body" || tag == "html" || tag == "#document" {
			break
		}
		if id := attr(cur, "id"); id != "" && simpleID.MatchString(id) {
			return strings.Join(append([]string{"#" + id}, parts...), " > ")
		}
		parts = append([]string{fmt.Sprintf("%s:nth-child(%d)", tag, cur.Index()+1)}, parts...)
		cur = cur.Parent()
	}
	return strings.Join(parts, " > ")
}

func isToggleInput(sel *goquery.Selection) bool {
	t := strings.ToLower(attr(sel, "type"))
	return t == "radio" || t == "checkbox"
}

func attr(sel *goquery.Selection, name string) string {
	v, _ := sel.Attr(name)
	return strings.TrimSpace(v)
}

func attrMap(sel *goquery.Selection) map[string]string {
	if len(sel.Nodes) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(sel.Nodes[0].Attr))
	for _, a := range sel.Nodes[0].Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}
