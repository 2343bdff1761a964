package resume

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText(t *testing.T) {
	ctx := FromText("Jane Doe\nSoftware Engineer")

	assert.Empty(t, ctx.Path)
	assert.Equal(t, "Jane Doe\nSoftware Engineer", ctx.Text)
}

func TestLoad_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Jane Doe\n8 years of Go\n\n"), 0o600))

	ctx, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, ctx.Path)
	assert.Equal(t, "Jane Doe\n8 years of Go", ctx.Text, "surrounding whitespace is trimmed")
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.pdf")

	_, err := Load(path)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, path, notFound.Path)
}

func TestLoad_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(MaxFileSize+1))
	require.NoError(t, f.Close())

	_, err = Load(path)

	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, extractErr.Message, "file too large")
}

func TestLoad_CorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not really a pdf"), 0o600))

	_, err := Load(path)

	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
}

func TestExtractError_Unwrap(t *testing.T) {
	cause := os.ErrPermission
	err := &ExtractError{Path: "x.pdf", Message: "cannot access file", Cause: cause}

	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "x.pdf")
}
