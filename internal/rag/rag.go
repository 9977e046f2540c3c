// Package rag composes the retrieval-then-synthesis call sequence:
// embed the question, search the vector store, and hand the retrieved
// passages to the completion model.
package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/farmai/assistant/internal/chunker"
	"github.com/farmai/assistant/internal/model"
	"github.com/farmai/assistant/internal/vectorstore"
)

// Embedder converts text into fixed-dimension vectors via a remote call.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer synthesizes an answer from a question and retrieved context.
type Completer interface {
	Complete(ctx context.Context, question, contextText string, history []model.Message) (string, error)
}

// Answer is the synthesized response plus its source attributions,
// ordered by descending retrieval score.
type Answer struct {
	Text    string
	Sources []model.SourceRef
}

type Service struct {
	embedder  Embedder
	completer Completer
	store     vectorstore.Store
	chunker   *chunker.WordChunker
	topK      int
	dimension int
	log       *logrus.Logger
}

func New(embedder Embedder, completer Completer, store vectorstore.Store, ch *chunker.WordChunker, topK int, log *logrus.Logger) *Service {
	if topK <= 0 {
		topK = 4
	}
	return &Service{
		embedder:  embedder,
		completer: completer,
		store:     store,
		chunker:   ch,
		topK:      topK,
		log:       log,
	}
}

// BuildKnowledgeBase chunks and embeds the document set and builds the
// vector index. Called once at startup; any failure here is fatal.
func (s *Service) BuildKnowledgeBase(ctx context.Context, docs []model.Document) error {
	var chunks []model.Chunk
	for _, d := range docs {
		chunks = append(chunks, s.chunker.Chunk(d)...)
	}
	if len(chunks) == 0 {
		return fmt.Errorf("knowledge base is empty")
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed knowledge base: %w", err)
	}

	s.dimension = len(vectors[0])
	if err := s.store.Init(ctx, s.dimension); err != nil {
		return fmt.Errorf("init vector store: %w", err)
	}
	if err := s.store.Upsert(ctx, chunks, vectors); err != nil {
		return fmt.Errorf("index knowledge base: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"documents": len(docs),
		"chunks":    len(chunks),
		"dimension": s.dimension,
	}).Info("knowledge base indexed")
	return nil
}

// IngestDocument chunks, embeds, and indexes one additional document.
// Returns the number of chunks added. The caller serializes ingestion
// against queries.
func (s *Service) IngestDocument(ctx context.Context, doc model.Document) (int, error) {
	chunks := s.chunker.Chunk(doc)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("document %q produced no chunks", doc.ID)
	}
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed document: %w", err)
	}
	if err := s.store.Upsert(ctx, chunks, vectors); err != nil {
		return 0, fmt.Errorf("index document: %w", err)
	}
	return len(chunks), nil
}

// Ask runs one full turn: embed the question, retrieve topK passages,
// and synthesize the answer. topK <= 0 uses the configured default.
func (s *Service) Ask(ctx context.Context, question string, topK int, history []model.Message) (*Answer, error) {
	if topK <= 0 {
		topK = s.topK
	}
	qVec, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	results, err := s.store.Search(ctx, qVec, topK)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	answer, err := s.completer.Complete(ctx, question, contextText(results), history)
	if err != nil {
		return nil, err
	}
	return &Answer{Text: answer, Sources: sources(results)}, nil
}

// contextText concatenates retrieved passages, best match first.
func contextText(results []vectorstore.SearchResult) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "[%s, %s]\n%s\n\n", r.Chunk.Title, r.Chunk.Source, r.Chunk.Text)
	}
	return b.String()
}

// sources deduplicates attributions by document, keeping retrieval order.
func sources(results []vectorstore.SearchResult) []model.SourceRef {
	seen := make(map[string]bool, len(results))
	out := make([]model.SourceRef, 0, len(results))
	for _, r := range results {
		if seen[r.Chunk.DocumentID] {
			continue
		}
		seen[r.Chunk.DocumentID] = true
		out = append(out, model.SourceRef{
			Title:  r.Chunk.Title,
			Source: r.Chunk.Source,
			Score:  r.Score,
		})
	}
	return out
}
