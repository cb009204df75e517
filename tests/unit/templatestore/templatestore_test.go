package templatestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billforge/internal/domain"
	"billforge/internal/templatestore"
)

func TestLoad_ReadsTemplateFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "standard.html"), []byte("<html>{{INVOICE_NUMBER}}</html>"), 0o644))

	source := templatestore.New(dir)
	content, err := source.Load(context.Background(), "standard.html")

	require.NoError(t, err)
	assert.Equal(t, "<html>{{INVOICE_NUMBER}}</html>", content)
}

func TestLoad_MissingFile(t *testing.T) {
	source := templatestore.New(t.TempDir())

	_, err := source.Load(context.Background(), "missing.html")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestLoad_RejectsPathTraversal(t *testing.T) {
	source := templatestore.New(t.TempDir())

	_, err := source.Load(context.Background(), "../etc/passwd")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestShippedTemplatesLoad(t *testing.T) {
	source := templatestore.New(filepath.Join("..", "..", "..", "templates"))

	for _, file := range []string{"standard.html", "professional.html", "composition.html", "interstate.html"} {
		content, err := source.Load(context.Background(), file)
		require.NoError(t, err, file)
		assert.Contains(t, content, "{{ITEMS_ROWS}}", file)
	}
}
