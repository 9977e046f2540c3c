package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/farmai/assistant/internal/api"
	"github.com/farmai/assistant/internal/chunker"
	"github.com/farmai/assistant/internal/config"
	"github.com/farmai/assistant/internal/knowledge"
	"github.com/farmai/assistant/internal/llm"
	"github.com/farmai/assistant/internal/rag"
	"github.com/farmai/assistant/internal/session"
	"github.com/farmai/assistant/internal/vectorstore"
	"github.com/farmai/assistant/internal/vectorstore/memory"
	"github.com/farmai/assistant/internal/vectorstore/pgvector"
	"github.com/farmai/assistant/internal/vectorstore/qdrantstore"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.WithError(err).Fatal("configuration error")
	}

	store, err := newStore(cfg)
	if err != nil {
		log.WithError(err).Fatal("vector store init failed")
	}
	defer store.Close()

	client := llm.NewClient(cfg)
	docs := knowledge.Load(cfg.DataDir, log)
	ch := chunker.New(cfg.Chunk.Size, cfg.Chunk.Overlap)
	svc := rag.New(client, client, store, ch, cfg.TopK, log)

	ctx := context.Background()
	if err := svc.BuildKnowledgeBase(ctx, docs); err != nil {
		log.WithError(err).Fatal("knowledge base build failed")
	}

	sessions := session.NewStore(cfg.History.MaxMessages, cfg.History.MaxTokens)
	h := api.NewHandler(svc, client, sessions, cfg.DataDir, log)

	app := fiber.New()
	api.RegisterRoutes(app, h)

	log.WithField("addr", cfg.ServerAddr).Info("server started")
	log.Fatal(app.Listen(cfg.ServerAddr))
}

func newStore(cfg *config.Config) (vectorstore.Store, error) {
	switch cfg.Store.Type {
	case "pgvector":
		return pgvector.New(cfg.Store.Pg.Conn)
	case "qdrant":
		return qdrantstore.New(qdrantstore.Config{
			URL:        cfg.Store.Qdrant.URL,
			APIKey:     cfg.Store.Qdrant.APIKey,
			Collection: cfg.Store.Qdrant.Collection,
		})
	default:
		return memory.New(), nil
	}
}
