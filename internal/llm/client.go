// Package llm wraps an OpenAI-compatible endpoint for embeddings and
// answer synthesis.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/farmai/assistant/internal/config"
	"github.com/farmai/assistant/internal/model"
)

const systemPrompt = "You are FarmAI, an agricultural assistant. Answer strictly from the provided context about crop diseases, pests, and cultivation practices. If the context does not contain the answer, say so honestly."

type Client struct {
	client      *openai.Client
	embedModel  string
	chatModel   string
	temperature float32
}

func NewClient(cfg *config.Config) *Client {
	oaiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oaiCfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		client:      openai.NewClientWithConfig(oaiCfg),
		embedModel:  cfg.EmbedModel,
		chatModel:   cfg.ChatModel,
		temperature: cfg.Temperature,
	}
}

// Embed returns the embedding vector for a single text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch embeds several texts in one request, preserving order.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(c.embedModel),
		Input: texts,
	})
	if err != nil {
		return nil, wrap("embeddings", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, wrap("embeddings", fmt.Errorf("got %d embeddings for %d inputs", len(resp.Data), len(texts)))
	}
	out := make([][]float32, len(resp.Data))
	for _, d := range resp.Data {
		out[d.Index] = d.Embedding
	}
	return out, nil
}

// Complete synthesizes an answer from the question and retrieved
// context. History, already truncated by the caller, is replayed as
// prior chat turns.
func (c *Client) Complete(ctx context.Context, question, contextText string, history []model.Message) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: fmt.Sprintf("Context:\n%s\nQuestion: %s", contextText, question),
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Messages:    messages,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", wrap("chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", wrap("chat completion", errors.New("empty response"))
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// ListModels proxies the provider's model list.
func (c *Client) ListModels(ctx context.Context) ([]openai.Model, error) {
	resp, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, wrap("list models", err)
	}
	return resp.Models, nil
}
