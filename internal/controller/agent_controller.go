package controller

import (
	"marketing-agent-be/internal/pkg/serverutils"
	"marketing-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Questions(ctx *fiber.Ctx) error
}

type agentController struct {
	agentService service.IAgentService
}

func NewAgentController(agentService service.IAgentService) IAgentController {
	return &agentController{
		agentService: agentService,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1")
	h.Get("", c.List)
	h.Get(":agent/questions", c.Questions)
}

func (c *agentController) List(ctx *fiber.Ctx) error {
	res := c.agentService.ListAgents()
	return ctx.JSON(serverutils.SuccessResponse("Success list agents", res))
}

func (c *agentController) Questions(ctx *fiber.Ctx) error {
	agent := ctx.Params("agent")

	res, err := c.agentService.GetQuestions(agent)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show questions", res))
}
