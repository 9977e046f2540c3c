package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmai/assistant/internal/model"
)

func buildStore(t *testing.T, vectors [][]float32) *Store {
	t.Helper()
	s := New()
	require.NoError(t, s.Init(context.Background(), len(vectors[0])))
	chunks := make([]model.Chunk, len(vectors))
	for i := range vectors {
		chunks[i] = model.Chunk{ID: fmt.Sprintf("c%d", i), DocumentID: fmt.Sprintf("d%d", i)}
	}
	require.NoError(t, s.Upsert(context.Background(), chunks, vectors))
	return s
}

func TestSearchOrdering(t *testing.T) {
	s := buildStore(t, [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0.9, 0.1, 0},
	})

	res, err := s.Search(context.Background(), []float32{1, 0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.Equal(t, "c0", res[0].Chunk.ID)
	assert.Equal(t, "c2", res[1].Chunk.ID)
	assert.Equal(t, "c1", res[2].Chunk.ID)
	for i := 1; i < len(res); i++ {
		assert.LessOrEqual(t, res[i].Score, res[i-1].Score)
	}
}

func TestSearchReturnsAtMostK(t *testing.T) {
	s := buildStore(t, [][]float32{{1, 0}, {0, 1}, {1, 1}})
	assert.Equal(t, 3, s.Len())

	res, err := s.Search(context.Background(), []float32{1, 0}, 2)
	require.NoError(t, err)
	assert.Len(t, res, 2)

	// k larger than the corpus returns everything
	res, err = s.Search(context.Background(), []float32{1, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, res, 3)
}

func TestUnrelatedQueryStillReturnsK(t *testing.T) {
	// no relevance threshold: an orthogonal query still fills topK
	s := buildStore(t, [][]float32{{1, 0, 0}, {0.5, 0.5, 0}})

	res, err := s.Search(context.Background(), []float32{0, 0, 1}, 2)
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestSearchDeterministic(t *testing.T) {
	// equal scores keep insertion order, so repeated identical queries
	// return identical orderings
	s := buildStore(t, [][]float32{{1, 0}, {1, 0}, {0, 1}, {1, 0}})

	first, err := s.Search(context.Background(), []float32{1, 0}, 4)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := s.Search(context.Background(), []float32{1, 0}, 4)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	assert.Equal(t, "c0", first[0].Chunk.ID)
	assert.Equal(t, "c1", first[1].Chunk.ID)
	assert.Equal(t, "c3", first[2].Chunk.ID)
}

func TestDimensionChecks(t *testing.T) {
	s := New()
	assert.Error(t, s.Init(context.Background(), 0))

	require.NoError(t, s.Init(context.Background(), 3))
	err := s.Upsert(context.Background(), []model.Chunk{{ID: "c0"}}, [][]float32{{1, 0}})
	assert.Error(t, err)

	_, err = s.Search(context.Background(), []float32{1, 0}, 1)
	assert.Error(t, err)
}

func TestUpsertLengthMismatch(t *testing.T) {
	s := New()
	require.NoError(t, s.Init(context.Background(), 2))
	err := s.Upsert(context.Background(), []model.Chunk{{ID: "c0"}}, nil)
	assert.Error(t, err)
}
