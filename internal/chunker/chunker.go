// Package chunker splits documents into overlapping word windows
// sized for embedding.
package chunker

import (
	"fmt"
	"strings"

	"github.com/farmai/assistant/internal/model"
)

const (
	DefaultSize    = 220
	DefaultOverlap = 40
)

type WordChunker struct {
	size    int
	overlap int
}

func New(size, overlap int) *WordChunker {
	if size <= 0 {
		size = DefaultSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}
	return &WordChunker{size: size, overlap: overlap}
}

// Chunk splits a document into word windows with overlap. The chunk ID
// encodes the document ID and the window index.
func (c *WordChunker) Chunk(doc model.Document) []model.Chunk {
	words := strings.Fields(Sanitize(doc.Content))
	if len(words) == 0 {
		return nil
	}
	var out []model.Chunk
	step := c.size - c.overlap
	idx := 0
	for i := 0; i < len(words); i += step {
		end := i + c.size
		if end > len(words) {
			end = len(words)
		}
		out = append(out, model.Chunk{
			ID:         fmt.Sprintf("%s_chunk_%d", doc.ID, idx),
			DocumentID: doc.ID,
			Index:      idx,
			Text:       strings.Join(words[i:end], " "),
			Title:      doc.Title,
			Source:     doc.Source,
		})
		if end == len(words) {
			break
		}
		idx++
	}
	return out
}

// Sanitize collapses all whitespace runs into single spaces.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.Join(strings.Fields(s), " ")
}
