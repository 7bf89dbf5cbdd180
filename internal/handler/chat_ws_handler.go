package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/internal/pkg/serverutils"
	"yolcu-backend/internal/service"
	internalWS "yolcu-backend/internal/websocket"
)

// ChatWsHandler upgrades hackathon and team chat websockets. Each inbound
// text frame is persisted through the hackathon service; delivery back to
// the room happens over the event bus, so senders see their own message the
// same way everyone else does.
type ChatWsHandler struct {
	service service.IHackathonService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewChatWsHandler(service service.IHackathonService, hub *internalWS.Hub, log logger.ILogger) *ChatWsHandler {
	return &ChatWsHandler{
		service: service,
		hub:     hub,
		logger:  log,
	}
}

func (h *ChatWsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/hackathons/:id", h.ServeHackathonRoom)
	router.Get("/ws/teams/:id", h.ServeTeamRoom)
}

func (h *ChatWsHandler) ServeHackathonRoom(c *fiber.Ctx) error {
	return h.serveRoom(c, "hackathon")
}

func (h *ChatWsHandler) ServeTeamRoom(c *fiber.Ctx) error {
	return h.serveRoom(c, "team")
}

func (h *ChatWsHandler) serveRoom(c *fiber.Ctx, kind string) error {
	userID, err := h.authenticate(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	roomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid room id"})
	}

	// Team rooms require membership before the upgrade.
	if kind == "team" {
		if _, err := h.service.TeamMessages(c.Context(), userID, roomID); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
	}

	room := kind + ":" + roomID.String()

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("ChatWsHandler", "websocket session started", map[string]interface{}{
			"user_id": userID.String(),
			"room":    room,
		})

		onMessage := func(content string) {
			ctx := context.Background()
			var sendErr error
			if kind == "hackathon" {
				_, sendErr = h.service.SendHackathonMessage(ctx, userID, roomID, content)
			} else {
				_, sendErr = h.service.SendTeamMessage(ctx, userID, roomID, content)
			}
			if sendErr != nil {
				h.logger.Error("ChatWsHandler", "message send failed", map[string]interface{}{
					"user_id": userID.String(),
					"room":    room,
					"error":   sendErr.Error(),
				})
			}
		}

		internalWS.ServeWs(h.hub, conn, userID, room, onMessage)

		h.logger.Info("ChatWsHandler", "websocket session ended", map[string]interface{}{
			"user_id": userID.String(),
			"room":    room,
		})
	})(c)
}

// authenticate resolves the JWT from the query string (browser clients) or
// the Authorization header.
func (h *ChatWsHandler) authenticate(c *fiber.Ctx) (uuid.UUID, error) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := serverutils.ParseUserID(tokenStr)
	if err != nil {
		h.logger.Warn("ChatWsHandler", "invalid token in handshake", map[string]interface{}{
			"error": err.Error(),
		})
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return userID, nil
}
