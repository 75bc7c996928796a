package controller

import (
	"marketing-agent-be/internal/dto"
	"marketing-agent-be/internal/pkg/serverutils"
	"marketing-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpsertAnswers(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	SaveDraft(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	ExportWord(ctx *fiber.Ctx) error
	ExportMarkdown(ctx *fiber.Ctx) error
	ExportPdf(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
	exportService  service.IExportService
}

func NewSessionController(
	sessionService service.ISessionService,
	exportService service.IExportService,
) ISessionController {
	return &sessionController{
		sessionService: sessionService,
		exportService:  exportService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id/answers", c.UpsertAnswers)
	h.Post(":id/generate", c.Generate)
	h.Put(":id/draft", c.SaveDraft)
	h.Post(":id/reset", c.Reset)
	h.Get(":id/export/word", c.ExportWord)
	h.Get(":id/export/markdown", c.ExportMarkdown)
	h.Get(":id/export/pdf", c.ExportPdf)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	res, err := c.sessionService.Create(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.sessionService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *sessionController) UpsertAnswers(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var req dto.UpsertAnswersRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.UpsertAnswers(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save answers", res))
}

func (c *sessionController) Generate(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var req dto.GenerateDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Generate(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate draft", res))
}

func (c *sessionController) SaveDraft(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var req dto.SaveDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.sessionService.SaveDraft(ctx.Context(), id, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success save draft", nil))
}

func (c *sessionController) Reset(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.sessionService.Reset(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success reset session", nil))
}

func (c *sessionController) ExportWord(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.exportService.ExportWord(ctx.Context(), id)
	if err != nil {
		return err
	}

	return sendFile(ctx, res)
}

func (c *sessionController) ExportMarkdown(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.exportService.ExportMarkdown(ctx.Context(), id)
	if err != nil {
		return err
	}

	return sendFile(ctx, res)
}

// ExportPdf is a placeholder until a PDF renderer is wired in.
func (c *sessionController) ExportPdf(ctx *fiber.Ctx) error {
	return serverutils.NewHttpError(fiber.StatusNotImplemented, "pdf export is not available yet")
}

func sendFile(ctx *fiber.Ctx, file *dto.ExportFileResponse) error {
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.FileName+`"`)
	return ctx.Send(file.Data)
}
