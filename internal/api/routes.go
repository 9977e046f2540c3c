package api

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/", ChatPage)
	app.Get("/health", h.Health)
	app.Get("/api/models", h.ListModels)
	app.Post("/api/chat", h.Chat)
	app.Get("/api/sessions/:id", h.Transcript)
	app.Post("/api/ingest", h.IngestPDF)
}
