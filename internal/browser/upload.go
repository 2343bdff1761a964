package browser

import (
	"context"
	"os"

	"github.com/chromedp/chromedp"
)

// Upload attaches a local file to a file input. The path is validated
// before any browser interaction; a missing file never reaches the page.
func (d *Driver) Upload(ctx context.Context, selector, path string) error {
	if _, err := os.Stat(path); err != nil {
		return &UploadError{Selector: selector, Path: path, Cause: err}
	}

	err := d.session.run(ctx,
		chromedp.SetUploadFiles(selector, []string{path}, chromedp.ByQuery),
	)
	if err != nil {
		return &UploadError{Selector: selector, Path: path, Cause: err}
	}
	return nil
}
