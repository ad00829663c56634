package controller

import (
	"chatlog-admin-be/internal/dto"
	"chatlog-admin-be/internal/pkg/serverutils"
	"chatlog-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BlogController struct {
	blogService service.IBlogService
}

func NewBlogController(blogService service.IBlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// RegisterRoutes keeps reads public for the site and puts mutations and
// draft generation behind admin auth.
func (c *BlogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/blog")
	h.Post("/generate", serverutils.JwtMiddleware, c.Generate)
	h.Get("", c.List)
	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Get("/:slug", c.ShowBySlug)
	h.Patch("/:id", serverutils.JwtMiddleware, c.Update)
	h.Delete("/:id", serverutils.JwtMiddleware, c.Delete)
}

// List serves both the site and the admin panel. Anonymous callers only
// ever see published posts; a valid admin token unlocks the published
// filter so drafts are listable.
func (c *BlogController) List(ctx *fiber.Ctx) error {
	query := new(dto.ListBlogPostsQuery)
	if err := ctx.QueryParser(query); err != nil {
		return serverutils.NewValidationError("invalid query parameters")
	}
	if !isAdminRequest(ctx) {
		published := true
		query.Published = &published
	}

	result, err := c.blogService.List(ctx.UserContext(), query)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("posts retrieved", result))
}

func isAdminRequest(ctx *fiber.Ctx) bool {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return false
	}
	_, err := serverutils.ParseToken(authHeader[7:])
	return err == nil
}

func (c *BlogController) ShowBySlug(ctx *fiber.Ctx) error {
	result, err := c.blogService.ShowBySlug(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("post retrieved", result))
}

func (c *BlogController) Create(ctx *fiber.Ctx) error {
	req := new(dto.CreateBlogPostRequest)
	if err := ctx.BodyParser(req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.blogService.Create(ctx.UserContext(), req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("post created", result))
}

func (c *BlogController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid post id")
	}

	req := new(dto.UpdateBlogPostRequest)
	if err := ctx.BodyParser(req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.blogService.Update(ctx.UserContext(), id, req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("post updated", result))
}

func (c *BlogController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid post id")
	}

	if err := c.blogService.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse[any]("post deleted", nil))
}

func (c *BlogController) Generate(ctx *fiber.Ctx) error {
	req := new(dto.GenerateBlogPostRequest)
	if err := ctx.BodyParser(req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.blogService.Generate(ctx.UserContext(), req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("draft generated", result))
}
