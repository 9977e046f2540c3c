// Package knowledge loads the static agricultural document set: built-in
// guides, plus any JSON files dropped into the data directory.
package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/farmai/assistant/internal/model"
)

// Load returns the full document set. Built-in documents come first,
// then any documents found under dataDir. Malformed files are skipped
// with a warning. If nothing loads at all, a single fallback document
// is returned.
func Load(dataDir string, log *logrus.Logger) []model.Document {
	docs := builtinDocuments()
	docs = append(docs, loadFromDir(dataDir, log)...)

	if len(docs) == 0 {
		docs = []model.Document{fallbackDocument()}
	}

	for i := range docs {
		Enrich(&docs[i])
	}
	log.WithField("documents", len(docs)).Info("knowledge base loaded")
	return docs
}

func loadFromDir(dataDir string, log *logrus.Logger) []model.Document {
	if dataDir == "" {
		return nil
	}
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil
	}
	var docs []model.Document
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dataDir, e.Name())
		loaded, err := loadFile(path)
		if err != nil {
			log.WithError(err).WithField("file", e.Name()).Warn("skipping document file")
			continue
		}
		docs = append(docs, loaded...)
	}
	return docs
}

// loadFile accepts either a single document object or an array of them.
func loadFile(path string) ([]model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var many []model.Document
	if err := json.Unmarshal(data, &many); err == nil {
		return validateAll(many)
	}
	var one model.Document
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("not a document or document list: %w", err)
	}
	return validateAll([]model.Document{one})
}

func validateAll(docs []model.Document) ([]model.Document, error) {
	for i, d := range docs {
		if !Valid(d) {
			return nil, fmt.Errorf("document %d missing title or content", i)
		}
	}
	return docs, nil
}

// Valid reports whether a document carries the required fields.
func Valid(d model.Document) bool {
	return strings.TrimSpace(d.Title) != "" && strings.TrimSpace(d.Content) != ""
}

// Enrich fills default metadata on documents loaded from external files.
func Enrich(d *model.Document) {
	if d.ID == "" {
		d.ID = slug(d.Title)
	}
	if d.Source == "" {
		d.Source = "Agricultural Knowledge Base"
	}
	if d.Category == "" {
		d.Category = "general"
	}
	if d.Crop == "" {
		d.Crop = "general"
	}
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
