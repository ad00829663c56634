package controller

import (
	"chatlog-admin-be/internal/dto"
	"chatlog-admin-be/internal/pkg/serverutils"
	"chatlog-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// RegisterRoutes keeps the widget save endpoint public behind the rate
// limiter; the admin reads carry auth per route. The stats route must be
// registered before the :id route or "stats" gets parsed as a chat id.
func (c *ChatController) RegisterRoutes(r fiber.Router, rateLimit fiber.Handler) {
	h := r.Group("/chats")
	h.Post("", rateLimit, c.Save)
	h.Get("", serverutils.JwtMiddleware, c.List)
	h.Get("/stats", serverutils.JwtMiddleware, c.Stats)
	h.Get("/:id", serverutils.JwtMiddleware, c.Show)
	h.Patch("/:id", serverutils.JwtMiddleware, c.Update)
}

// Save is the only public write endpoint. The widget posts here without
// authentication, so the response shape stays flat for its convenience.
func (c *ChatController) Save(ctx *fiber.Ctx) error {
	req := new(dto.SaveChatRequest)
	if err := ctx.BodyParser(req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	meta := serverutils.ExtractClientMeta(ctx)

	result, err := c.chatService.Save(ctx.UserContext(), req, meta)
	if err != nil {
		return err
	}

	message := "chat recorded"
	if result.Updated {
		message = "chat updated"
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.SaveChatResponse{
		Success: true,
		ChatId:  result.ChatId,
		Updated: result.Updated,
		Message: message,
	})
}

func (c *ChatController) List(ctx *fiber.Ctx) error {
	query := new(dto.ListChatsQuery)
	if err := ctx.QueryParser(query); err != nil {
		return serverutils.NewValidationError("invalid query parameters")
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	result, err := c.chatService.List(ctx.UserContext(), query)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("chats retrieved", result))
}

func (c *ChatController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid chat id")
	}

	result, err := c.chatService.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("chat retrieved", result))
}

func (c *ChatController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid chat id")
	}

	req := new(dto.UpdateChatRequest)
	if err := ctx.BodyParser(req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.chatService.Update(ctx.UserContext(), id, req); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse[any]("chat updated", nil))
}

func (c *ChatController) Stats(ctx *fiber.Ctx) error {
	result, err := c.chatService.Stats(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("stats retrieved", result))
}
