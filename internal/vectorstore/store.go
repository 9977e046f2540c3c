// Package vectorstore defines the similarity search contract shared by
// the memory, pgvector, and qdrant drivers.
package vectorstore

import (
	"context"

	"github.com/farmai/assistant/internal/model"
)

// SearchResult is a retrieved chunk with its similarity score
// (higher is more similar).
type SearchResult struct {
	Chunk model.Chunk
	Score float32
}

// Store is built once from all document embeddings and is read-only
// afterwards, except for explicit ingestion which is serialized by the
// caller. Search returns at most topK results ordered by
// non-increasing score.
type Store interface {
	Init(ctx context.Context, dimension int) error
	Upsert(ctx context.Context, chunks []model.Chunk, vectors [][]float32) error
	Search(ctx context.Context, vector []float32, topK int) ([]SearchResult, error)
	Close() error
}
