package httpapi

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/debatewise/arbiter/internal/events"
)

// registerWebsocket mounts the websocket subscribe endpoint
func (h *Handler) registerWebsocket(app *fiber.App) {
	app.Get("/ws/:id", websocketUpgrade, websocket.New(h.handleWebsocket))
}

// websocketUpgrade rejects plain HTTP requests to the websocket route
func websocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// handleWebsocket subscribes a connection to its session's event
// stream. On connect the session gets a joined notice with the live
// subscriber count; text frames from the client are rebroadcast as
// generic messages; disconnect broadcasts a leave notice.
func (h *Handler) handleWebsocket(c *websocket.Conn) {
	defer func() {
		_ = c.Close()
	}()

	sessionID := c.Params("id")
	if sessionID == "" {
		return
	}

	ctx := context.Background()

	sub := h.registry.Subscribe(sessionID, c)
	h.registry.Publish(ctx, sessionID, events.NewMessageEvent(
		fmt.Sprintf("A participant joined. %d watching.", h.registry.Count(sessionID)),
	))

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}

		if messageType != websocket.TextMessage {
			continue
		}

		h.registry.Publish(ctx, sessionID, events.NewMessageEvent(string(message)))
	}

	h.registry.Unsubscribe(sub)
	h.registry.Publish(ctx, sessionID, events.NewMessageEvent(
		fmt.Sprintf("A participant left. %d watching.", h.registry.Count(sessionID)),
	))
}
