// Package memory is a brute-force cosine similarity store. It is the
// default driver: the corpus is small enough that exact search over
// every vector is cheap.
package memory

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/farmai/assistant/internal/model"
	"github.com/farmai/assistant/internal/vectorstore"
)

type Store struct {
	mu        sync.RWMutex
	dimension int
	chunks    []model.Chunk
	vectors   [][]float32
}

func New() *Store { return &Store{} }

func (s *Store) Init(_ context.Context, dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.chunks = nil
	s.vectors = nil
	return nil
}

// Upsert appends chunks with their vectors. Vectors are normalized on
// the way in so Search reduces to a dot product.
func (s *Store) Upsert(_ context.Context, chunks []model.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return errors.New("chunks and vectors length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vectors {
		if len(v) != s.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	for i := range chunks {
		s.chunks = append(s.chunks, chunks[i])
		s.vectors = append(s.vectors, normalize(vectors[i]))
	}
	return nil
}

// Search scores every stored vector against the query. Ties keep
// insertion order, so identical queries always return identical
// orderings.
func (s *Store) Search(_ context.Context, vector []float32, topK int) ([]vectorstore.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(vector) != s.dimension {
		return nil, errors.New("query vector dimension mismatch")
	}
	if topK <= 0 {
		topK = 5
	}

	q := normalize(vector)
	idxs := make([]int, len(s.vectors))
	scores := make([]float32, len(s.vectors))
	for i, v := range s.vectors {
		idxs[i] = i
		scores[i] = dot(v, q)
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return scores[idxs[a]] > scores[idxs[b]]
	})

	if topK > len(idxs) {
		topK = len(idxs)
	}
	out := make([]vectorstore.SearchResult, 0, topK)
	for _, i := range idxs[:topK] {
		out = append(out, vectorstore.SearchResult{Chunk: s.chunks[i], Score: scores[i]})
	}
	return out, nil
}

func (s *Store) Close() error { return nil }

// Len reports the number of stored chunks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	n := math.Sqrt(sum)
	if n == 0 {
		return v
	}
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / n)
	}
	return out
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
