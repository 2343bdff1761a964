package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

// Driver applies fill actions to page elements through chromedp. It
// implements the forms.Actions contract.
type Driver struct {
	session *Session
}

// NewDriver creates a Driver bound to a session.
func NewDriver(session *Session) *Driver {
	return &Driver{session: session}
}

// SetValue sets the value of a text-like input or textarea.
func (d *Driver) SetValue(ctx context.Context, selector, value string) error {
	err := d.session.run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Clear(selector, chromedp.ByQuery),
		chromedp.SendKeys(selector, value, chromedp.ByQuery),
	)
	if err != nil {
		return &NotInteractableError{Selector: selector, Action: "set value", Cause: err}
	}
	return nil
}

// SelectOption selects a dropdown option by its visible label and fires a
// change event, which chromedp's attribute-level APIs would not.
func (d *Driver) SelectOption(ctx context.Context, selector, label string) error {
	script := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		if (!el) return "element not found";
		const opt = Array.from(el.options).find(o => o.textContent.trim() === %q);
		if (!opt) return "option not found";
		el.value = opt.value;
		el.dispatchEvent(new Event('change', {bubbles: true}));
		return "";
	})()`, selector, label)

	var failure string
	if err := d.session.run(ctx, chromedp.Evaluate(script, &failure)); err != nil {
		return &NotInteractableError{Selector: selector, Action: "select option", Cause: err}
	}
	if failure != "" {
		return &NotInteractableError{
			Selector: selector,
			Action:   "select option",
			Cause:    fmt.Errorf("%s: %q", failure, label),
		}
	}
	return nil
}

// Click clicks an element.
func (d *Driver) Click(ctx context.Context, selector string) error {
	err := d.session.run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Click(selector, chromedp.ByQuery),
	)
	if err != nil {
		return &NotInteractableError{Selector: selector, Action: "click", Cause: err}
	}
	return nil
}

// SetChecked sets a checkbox state and fires a change event.
func (d *Driver) SetChecked(ctx context.Context, selector string, checked bool) error {
	script := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		if (!el) return "element not found";
		if (el.checked !== %t) {
			el.checked = %t;
			el.dispatchEvent(new Event('change', {bubbles: true}));
		}
		return "";
	})()`, selector, checked, checked)

	var failure string
	if err := d.session.run(ctx, chromedp.Evaluate(script, &failure)); err != nil {
		return &NotInteractableError{Selector: selector, Action: "set checked", Cause: err}
	}
	if failure != "" {
		return &NotInteractableError{
			Selector: selector,
			Action:   "set checked",
			Cause:    fmt.Errorf("%s", failure),
		}
	}
	return nil
}
