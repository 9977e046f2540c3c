// Package qdrantstore backs the vector store with a Qdrant collection
// using cosine distance.
package qdrantstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"github.com/farmai/assistant/internal/model"
	"github.com/farmai/assistant/internal/vectorstore"
)

type Config struct {
	URL        string
	APIKey     string
	Collection string
}

type Store struct {
	client     *qdrant.Client
	collection string
}

func New(cfg Config) (*Store, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("qdrant url is required")
	}
	raw := cfg.URL
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse qdrant url: %w", err)
	}
	port := 6334
	if u.Port() != "" {
		if port, err = strconv.Atoi(u.Port()); err != nil {
			return nil, fmt.Errorf("invalid qdrant port: %w", err)
		}
	}
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   u.Hostname(),
		Port:   port,
		APIKey: cfg.APIKey,
		UseTLS: u.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("create qdrant client: %w", err)
	}
	collection := cfg.Collection
	if collection == "" {
		collection = "farmai"
	}
	return &Store{client: client, collection: collection}, nil
}

// Init recreates the collection so the index is rebuilt from scratch.
func (s *Store) Init(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid dimension %d", dimension)
	}
	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("qdrant collection check: %w", err)
	}
	if exists {
		if err := s.client.DeleteCollection(ctx, s.collection); err != nil {
			return fmt.Errorf("qdrant collection drop: %w", err)
		}
	}
	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(dimension),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("qdrant collection create: %w", err)
	}
	return nil
}

func (s *Store) Upsert(ctx context.Context, chunks []model.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunks and vectors length mismatch")
	}
	points := make([]*qdrant.PointStruct, len(chunks))
	for i, c := range chunks {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(uuidFor(c.ID)),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				"chunk_id": c.ID,
				"doc_id":   c.DocumentID,
				"index":    int64(c.Index),
				"title":    c.Title,
				"source":   c.Source,
				"content":  c.Text,
			}),
		}
	}
	wait := true
	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Wait:           &wait,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("qdrant upsert: %w", err)
	}
	return nil
}

func (s *Store) Search(ctx context.Context, vector []float32, topK int) ([]vectorstore.SearchResult, error) {
	if topK <= 0 {
		topK = 5
	}
	limit := uint64(topK)
	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant search: %w", err)
	}
	out := make([]vectorstore.SearchResult, 0, len(points))
	for _, p := range points {
		r := vectorstore.SearchResult{Score: p.Score}
		for k, v := range p.Payload {
			switch k {
			case "chunk_id":
				r.Chunk.ID = v.GetStringValue()
			case "doc_id":
				r.Chunk.DocumentID = v.GetStringValue()
			case "index":
				r.Chunk.Index = int(v.GetIntegerValue())
			case "title":
				r.Chunk.Title = v.GetStringValue()
			case "source":
				r.Chunk.Source = v.GetStringValue()
			case "content":
				r.Chunk.Text = v.GetStringValue()
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Store) Close() error { return s.client.Close() }

// uuidFor derives a stable point UUID from the chunk ID, so repeated
// ingestion of the same chunk overwrites rather than duplicates.
func uuidFor(chunkID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(chunkID)).String()
}
