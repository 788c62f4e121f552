package controller

import (
	"strconv"

	"notes-taking-be/internal/dto"
	"notes-taking-be/internal/pkg/serverutils"
	"notes-taking-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	SoftDelete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	r.Post("/notes", c.Create)
	r.Get("/note/:id", c.Show)
	r.Get("/notes", c.List)
	r.Put("/notes/:id", c.Update)
	r.Delete("/notes/:id", c.Delete)
	r.Delete("/notes/:id/soft", c.SoftDelete)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.noteService.CreateNote(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(serverutils.StatusFor(res.Success)).JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	// An unparseable id falls through as the nil uuid and misses.
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.noteService.FetchNoteById(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.Status(serverutils.StatusFor(res.Success)).JSON(res)
}

// List serves both shapes of GET /notes: a non-empty title query selects
// substring search, otherwise the paginated listing.
func (c *noteController) List(ctx *fiber.Ctx) error {
	if title := ctx.Query("title"); title != "" {
		res, err := c.noteService.QueryNotesByTitle(ctx.Context(), title)
		if err != nil {
			return err
		}
		return ctx.Status(serverutils.StatusFor(res.Success)).JSON(res)
	}

	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))

	res, err := c.noteService.GetNotes(ctx.Context(), page, limit)
	if err != nil {
		return err
	}

	return ctx.Status(serverutils.StatusFor(res.Success)).JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.noteService.UpdateNote(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.Status(serverutils.StatusFor(res.Success)).JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.noteService.DeleteNote(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.Status(serverutils.StatusFor(res.Success)).JSON(res)
}

func (c *noteController) SoftDelete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.noteService.SoftDeleteNote(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.Status(serverutils.StatusFor(res.Success)).JSON(res)
}
