// Package resume loads and extracts plain text from a candidate's resume
// document. The extracted text grounds generated form answers; it is loaded
// once per session and read-only afterwards.
package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxFileSize caps resume documents at 10MB.
const MaxFileSize = 10 * 1024 * 1024

// Context holds the extracted resume text for one fill session.
type Context struct {
	// Path is the source document path; empty when text was supplied directly.
	Path string
	// Text is the extracted plain text.
	Text string
}

// FromText wraps already-extracted resume text in a Context.
func FromText(text string) *Context {
	return &Context{Text: text}
}

// Load extracts resume text from a local file. PDF files go through the PDF
// extractor; anything else is read as plain text.
func Load(path string) (*Context, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, &ExtractError{Path: path, Message: "cannot access file", Cause: err}
	}
	if info.Size() > MaxFileSize {
		return nil, &ExtractError{
			Path:    path,
			Message: fmt.Sprintf("file too large (%d bytes, max %d)", info.Size(), MaxFileSize),
		}
	}

	var text string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err = extractPDF(path)
	} else {
		text, err = readPlainText(path)
	}
	if err != nil {
		return nil, err
	}

	return &Context{Path: path, Text: text}, nil
}

// extractPDF pulls the plain text out of every page of a PDF document.
func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractError{Path: path, Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// A single damaged page should not lose the rest of the resume.
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", &ExtractError{Path: path, Message: "no extractable text in PDF"}
	}
	return text, nil
}

func readPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractError{Path: path, Message: "failed to read file", Cause: err}
	}
	return strings.TrimSpace(string(data)), nil
}
