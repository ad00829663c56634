package handler

import (
	"chatlog-admin-be/internal/pkg/logger"
	"chatlog-admin-be/internal/pkg/serverutils"
	internalWS "chatlog-admin-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// FeedHandler upgrades admin panel connections onto the live chat feed.
type FeedHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewFeedHandler(hub *internalWS.Hub, log logger.ILogger) *FeedHandler {
	return &FeedHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *FeedHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/feed", h.ServeWs)
}

// ServeWs authenticates via a token query parameter because browsers cannot
// set an Authorization header on a websocket handshake.
func (h *FeedHandler) ServeWs(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return serverutils.NewUnauthorizedError("missing token")
	}
	claims, err := serverutils.ParseToken(token)
	if err != nil {
		h.logger.Warn("FeedHandler", "Rejected websocket upgrade", map[string]interface{}{"error": err.Error()})
		return serverutils.NewUnauthorizedError("invalid token")
	}
	adminID, _ := claims["admin_id"].(string)

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("FeedHandler", "Admin connected to live feed", map[string]interface{}{"admin_id": adminID})
			internalWS.ServeWs(h.hub, conn)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
