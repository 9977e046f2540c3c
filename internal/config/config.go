package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned when no provider credential is configured.
// It is fatal at startup.
var ErrMissingAPIKey = errors.New("missing API key (set OPENAI_API_KEY)")

// PgConfig holds connection settings for the pgvector-backed store.
type PgConfig struct {
	Conn string `yaml:"conn"`
}

// QdrantConfig holds connection settings for the Qdrant-backed store.
type QdrantConfig struct {
	URL        string `yaml:"url"`
	APIKey     string `yaml:"api_key"`
	Collection string `yaml:"collection"`
}

// StoreConfig selects the vector store driver.
type StoreConfig struct {
	Type   string       `yaml:"type"` // memory | pgvector | qdrant
	Pg     PgConfig     `yaml:"pg"`
	Qdrant QdrantConfig `yaml:"qdrant"`
}

// ChunkConfig controls how documents are split before embedding.
type ChunkConfig struct {
	Size    int `yaml:"size"`
	Overlap int `yaml:"overlap"`
}

// HistoryConfig bounds how much transcript is fed back into prompts.
type HistoryConfig struct {
	MaxMessages int `yaml:"max_messages"`
	MaxTokens   int `yaml:"max_tokens"`
}

type Config struct {
	ServerAddr  string        `yaml:"server_addr"`
	BaseURL     string        `yaml:"base_url"`
	EmbedModel  string        `yaml:"embed_model"`
	ChatModel   string        `yaml:"chat_model"`
	Temperature float32       `yaml:"temperature"`
	TopK        int           `yaml:"top_k"`
	DataDir     string        `yaml:"data_dir"`
	Store       StoreConfig   `yaml:"store"`
	Chunk       ChunkConfig   `yaml:"chunk"`
	History     HistoryConfig `yaml:"history"`

	// APIKey comes from the environment only, never from the config file.
	APIKey string `yaml:"-"`
}

// Load builds the configuration from defaults, an optional YAML file,
// and environment variable overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.ServerAddr = getenv("SERVER_ADDR", cfg.ServerAddr)
	cfg.BaseURL = getenv("OPENAI_BASE_URL", cfg.BaseURL)
	cfg.EmbedModel = getenv("EMBED_MODEL", cfg.EmbedModel)
	cfg.ChatModel = getenv("LLM_MODEL", cfg.ChatModel)
	cfg.TopK = getenvInt("TOP_K", cfg.TopK)
	cfg.DataDir = getenv("DATA_DIR", cfg.DataDir)
	cfg.Store.Type = getenv("VECTOR_STORE", cfg.Store.Type)
	cfg.Store.Pg.Conn = getenv("PG_CONN", cfg.Store.Pg.Conn)
	cfg.Store.Qdrant.URL = getenv("QDRANT_URL", cfg.Store.Qdrant.URL)
	cfg.Store.Qdrant.APIKey = getenv("QDRANT_API_KEY", cfg.Store.Qdrant.APIKey)
	cfg.Store.Qdrant.Collection = getenv("QDRANT_COLLECTION", cfg.Store.Qdrant.Collection)
	cfg.APIKey = os.Getenv("OPENAI_API_KEY")

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	switch cfg.Store.Type {
	case "memory", "pgvector", "qdrant":
	default:
		return nil, fmt.Errorf("unknown vector store type %q", cfg.Store.Type)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		ServerAddr:  ":8080",
		BaseURL:     "https://api.openai.com/v1",
		EmbedModel:  "text-embedding-3-small",
		ChatModel:   "gpt-3.5-turbo",
		Temperature: 0.1,
		TopK:        4,
		DataDir:     "data",
		Store:       StoreConfig{Type: "memory", Qdrant: QdrantConfig{Collection: "farmai"}},
		Chunk:       ChunkConfig{Size: 220, Overlap: 40},
		History:     HistoryConfig{MaxMessages: 12, MaxTokens: 2000},
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
