package api

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/farmai/assistant/internal/chunker"
	"github.com/farmai/assistant/internal/knowledge"
	"github.com/farmai/assistant/internal/model"
	"github.com/farmai/assistant/internal/pdf"
	"github.com/farmai/assistant/internal/rag"
	"github.com/farmai/assistant/internal/session"
	"github.com/farmai/assistant/internal/util"
)

const apology = "I apologize, I could not answer that right now. Please try again."

// Assistant is the answering side consumed by the chat handler.
type Assistant interface {
	Ask(ctx context.Context, question string, topK int, history []model.Message) (*rag.Answer, error)
	IngestDocument(ctx context.Context, doc model.Document) (int, error)
}

// ModelLister proxies the provider's model list.
type ModelLister interface {
	ListModels(ctx context.Context) ([]openai.Model, error)
}

// Handler holds the dependencies shared by all routes.
type Handler struct {
	assistant Assistant
	models    ModelLister
	sessions  *session.Store
	dataDir   string
	log       *logrus.Logger
}

func NewHandler(assistant Assistant, models ModelLister, sessions *session.Store, dataDir string, log *logrus.Logger) *Handler {
	return &Handler{
		assistant: assistant,
		models:    models,
		sessions:  sessions,
		dataDir:   dataDir,
		log:       log,
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func (h *Handler) ListModels(c *fiber.Ctx) error {
	models, err := h.models.ListModels(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models)
}

// Chat runs one conversation turn. The session handles a single
// question at a time; a second question while one is in flight gets a
// 429. A synthesis failure becomes an apology message and the session
// returns to idle.
func (h *Handler) Chat(c *fiber.Ctx) error {
	var req model.ChatRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": `invalid request, expected JSON: {"question":"..."}`,
		})
	}

	sess := h.sessions.GetOrCreate(req.SessionID)
	if err := sess.Begin(); err != nil {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":     err.Error(),
			"sessionId": sess.ID,
		})
	}

	history := h.sessions.History(sess)
	answer, err := h.assistant.Ask(c.Context(), req.Question, req.TopK, history)
	if err != nil {
		h.log.WithError(err).WithField("session", sess.ID).Error("chat turn failed")
		sess.Fail(req.Question, apology)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":     apology,
			"sessionId": sess.ID,
		})
	}
	sess.Finish(req.Question, answer.Text)

	h.log.WithFields(logrus.Fields{
		"session":  sess.ID,
		"question": util.TruncateRunes(req.Question, 80),
		"sources":  len(answer.Sources),
	}).Info("chat turn answered")

	return c.JSON(model.ChatResponse{
		Answer:    answer.Text,
		Sources:   answer.Sources,
		SessionID: sess.ID,
	})
}

// Transcript returns the full display transcript of a session.
func (h *Handler) Transcript(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"sessionId": sess.ID, "messages": sess.Transcript()})
}

// IngestPDF uploads a PDF, extracts its text, and indexes it as an
// additional knowledge document.
func (h *Handler) IngestPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required (form field: file)"})
	}

	saveDir := filepath.Join(h.dataDir, "pdfs")
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		h.log.WithError(err).Error("prepare upload dir")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to prepare storage"})
	}
	savePath := filepath.Join(saveDir, util.Timestamped(file.Filename))
	if err := c.SaveFile(file, savePath); err != nil {
		h.log.WithError(err).Error("save upload")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save file"})
	}

	text, err := pdf.ExtractText(savePath)
	if err != nil {
		h.log.WithError(err).Error("extract pdf text")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to extract text from pdf"})
	}
	text = chunker.Sanitize(text)
	if text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no text extracted from PDF"})
	}

	doc := model.Document{
		ID:      filepath.Base(savePath),
		Title:   file.Filename,
		Content: text,
	}
	knowledge.Enrich(&doc)

	added, err := h.assistant.IngestDocument(c.Context(), doc)
	if err != nil {
		h.log.WithError(err).Error("ingest pdf")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok", "doc": doc.ID, "chunks": added})
}
