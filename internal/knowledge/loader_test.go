package knowledge

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmai/assistant/internal/model"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestLoadBuiltin(t *testing.T) {
	docs := Load("", quietLogger())
	require.Len(t, docs, 6)

	ids := make(map[string]bool)
	for _, d := range docs {
		assert.True(t, Valid(d), "document %s should be valid", d.ID)
		assert.NotEmpty(t, d.Source)
		assert.NotEmpty(t, d.Category)
		assert.NotEmpty(t, d.Crop)
		assert.False(t, ids[d.ID], "duplicate id %s", d.ID)
		ids[d.ID] = true
	}
	assert.True(t, ids["rice-cultivation-practices"])
}

func TestLoadFromDataDir(t *testing.T) {
	dir := t.TempDir()

	single := `{"title":"Maize Guide","content":"Maize needs full sun."}`
	list := `[{"title":"A","content":"a"},{"title":"B","content":"b"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.json"), []byte(single), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "list.json"), []byte(list), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{nope"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	docs := Load(dir, quietLogger())
	assert.Len(t, docs, 6+3)

	var maize *model.Document
	for i := range docs {
		if docs[i].Title == "Maize Guide" {
			maize = &docs[i]
		}
	}
	require.NotNil(t, maize)
	assert.Equal(t, "maize-guide", maize.ID)
	assert.Equal(t, "Agricultural Knowledge Base", maize.Source)
	assert.Equal(t, "general", maize.Category)
}

func TestLoadFileRejectsIncomplete(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"),
		[]byte(`{"title":"No Content"}`), 0o644))

	docs := Load(dir, quietLogger())
	assert.Len(t, docs, 6)
}

func TestEnrichDefaults(t *testing.T) {
	d := model.Document{Title: "Some Guide!", Content: "text"}
	Enrich(&d)
	assert.Equal(t, "some-guide", d.ID)
	assert.Equal(t, "Agricultural Knowledge Base", d.Source)
	assert.Equal(t, "general", d.Category)
	assert.Equal(t, "general", d.Crop)

	d2 := model.Document{ID: "x", Title: "T", Content: "c", Source: "S", Category: "cat", Crop: "rice"}
	Enrich(&d2)
	assert.Equal(t, "x", d2.ID)
	assert.Equal(t, "S", d2.Source)
}
