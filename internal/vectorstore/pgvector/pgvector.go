// Package pgvector stores embeddings in Postgres with the pgvector
// extension, searched by cosine distance over an ivfflat index.
package pgvector

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/farmai/assistant/internal/model"
	"github.com/farmai/assistant/internal/vectorstore"
)

type Store struct {
	db *sql.DB
}

func New(conn string) (*Store, error) {
	db, err := sql.Open("postgres", conn)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Init creates the extension, table, and index for the given embedding
// dimension. Any previously stored chunks are dropped so the index is
// rebuilt from scratch at startup.
func (s *Store) Init(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid dimension %d", dimension)
	}
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS farm_chunks (
			id SERIAL PRIMARY KEY,
			chunk_id TEXT,
			doc_id TEXT,
			idx INT,
			title TEXT,
			source TEXT,
			content TEXT,
			embedding vector(%d)
		)`, dimension),
		`TRUNCATE farm_chunks`,
		`CREATE INDEX IF NOT EXISTS farm_chunks_embedding_idx
			ON farm_chunks USING ivfflat (embedding vector_cosine_ops) WITH (lists=100)`,
	}
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("pgvector init: %w", err)
		}
	}
	// ivfflat needs statistics to pick probes
	_, _ = s.db.ExecContext(ctx, `ANALYZE farm_chunks`)
	return nil
}

func (s *Store) Upsert(ctx context.Context, chunks []model.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunks and vectors length mismatch")
	}
	for i, c := range chunks {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO farm_chunks (chunk_id, doc_id, idx, title, source, content, embedding)
			VALUES ($1, $2, $3, $4, $5, $6, $7::vector)
		`, c.ID, c.DocumentID, c.Index, c.Title, c.Source, c.Text, VectorLiteral(vectors[i]))
		if err != nil {
			return fmt.Errorf("pgvector insert %s: %w", c.ID, err)
		}
	}
	return nil
}

func (s *Store) Search(ctx context.Context, vector []float32, topK int) ([]vectorstore.SearchResult, error) {
	if topK <= 0 {
		topK = 5
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT chunk_id, doc_id, idx, title, source, content, 1 - (embedding <=> $1::vector) AS score
		FROM farm_chunks
		ORDER BY embedding <=> $1::vector, id
		LIMIT $2
	`, VectorLiteral(vector), topK)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []vectorstore.SearchResult
	for rows.Next() {
		var r vectorstore.SearchResult
		if err := rows.Scan(&r.Chunk.ID, &r.Chunk.DocumentID, &r.Chunk.Index,
			&r.Chunk.Title, &r.Chunk.Source, &r.Chunk.Text, &r.Score); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Close() error { return s.db.Close() }

// VectorLiteral renders a float slice in pgvector's input syntax.
func VectorLiteral(v []float32) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, f := range v {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(fmt.Sprintf("%.6f", f))
	}
	sb.WriteString("]")
	return sb.String()
}
