package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "memory", cfg.Store.Type)
	assert.Equal(t, 4, cfg.TopK)
	assert.Equal(t, 220, cfg.Chunk.Size)
	assert.Equal(t, "sk-test", cfg.APIKey)
}

func TestLoadMissingAPIKeyIsFatal(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("VECTOR_STORE", "pgvector")
	t.Setenv("PG_CONN", "host=db dbname=farmai")
	t.Setenv("TOP_K", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "pgvector", cfg.Store.Type)
	assert.Equal(t, "host=db dbname=farmai", cfg.Store.Pg.Conn)
	assert.Equal(t, 7, cfg.TopK)
}

func TestYamlFileThenEnvPrecedence(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_MODEL", "env-model")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_addr: ":7070"
chat_model: file-model
store:
  type: qdrant
  qdrant:
    url: https://q.example.com
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddr)
	// env wins over the file
	assert.Equal(t, "env-model", cfg.ChatModel)
	assert.Equal(t, "qdrant", cfg.Store.Type)
	assert.Equal(t, "https://q.example.com", cfg.Store.Qdrant.URL)
}

func TestUnknownStoreType(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("VECTOR_STORE", "faiss")

	_, err := Load("")
	assert.Error(t, err)
}

func TestMissingConfigFileIsFine(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Type)
}
