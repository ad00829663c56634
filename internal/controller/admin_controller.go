package controller

import (
	"chatlog-admin-be/internal/pkg/logger"
	"chatlog-admin-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type AdminController struct {
	logger logger.ILogger
}

func NewAdminController(log logger.ILogger) *AdminController {
	return &AdminController{logger: log}
}

func (c *AdminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/logs", c.Logs)
}

// Logs exposes recent application log entries to the admin panel.
func (c *AdminController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 50)
	if limit < 1 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	offset := ctx.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	entries, err := c.logger.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("logs retrieved", entries))
}
