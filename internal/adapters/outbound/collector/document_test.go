package collector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/designqa/designqa/internal/adapters/outbound/collector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument_BareJSONList(t *testing.T) {
	doc, err := collector.ParseDocument([]byte(`[{"id":"a","type":"text","fontSize":10}]`))
	require.NoError(t, err)
	require.Len(t, doc.Elements, 1)
	assert.Equal(t, "a", doc.Elements[0]["id"])
	assert.Nil(t, doc.Options)
}

func TestParseDocument_MappingWithOptions(t *testing.T) {
	doc, err := collector.ParseDocument([]byte(`
elements:
  - id: a
    type: text
    properties:
      fontSize: 10
analysisOptions:
  checkSpacing: false
`))
	require.NoError(t, err)
	require.Len(t, doc.Elements, 1)
	require.NotNil(t, doc.Options)
	require.NotNil(t, doc.Options.CheckSpacing)
	assert.False(t, *doc.Options.CheckSpacing)
	assert.Nil(t, doc.Options.CheckContrast)

	elements, skipped := collector.NormalizeAll(doc.Elements, collector.Options{})
	assert.Empty(t, skipped)
	assert.Equal(t, 10.0, elements[0].FontSize)
}

func TestParseDocument_EmptyElementsList(t *testing.T) {
	doc, err := collector.ParseDocument([]byte(`{"elements": []}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Elements)
}

func TestParseDocument_Errors(t *testing.T) {
	_, err := collector.ParseDocument([]byte(``))
	assert.ErrorIs(t, err, collector.ErrNoElements)

	_, err = collector.ParseDocument([]byte(`{"name": "poster"}`))
	assert.ErrorIs(t, err, collector.ErrNoElements)

	_, err = collector.ParseDocument([]byte(`"just a string"`))
	assert.Error(t, err)

	_, err = collector.ParseDocument([]byte(`{{{`))
	assert.Error(t, err)
}

func TestFileLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"type":"image"}]`), 0644))

	doc, err := collector.NewFileLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	assert.Len(t, doc.Elements, 1)
}

func TestFileLoader_MissingFile(t *testing.T) {
	_, err := collector.NewFileLoader().Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
