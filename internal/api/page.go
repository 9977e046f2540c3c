package api

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed page.html
var chatPageHTML string

// ChatPage serves the single-page chat UI.
func ChatPage(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(chatPageHTML)
}
