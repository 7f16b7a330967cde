package controller

import (
	"portfolio-pulse-be/internal/dto"
	"portfolio-pulse-be/internal/pkg/apperror"
	"portfolio-pulse-be/internal/pkg/serverutils"
	"portfolio-pulse-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITelemetryController interface {
	RegisterRoutes(r fiber.Router)
	RecordEvent(ctx *fiber.Ctx) error
	ListEvents(ctx *fiber.Ctx) error
	RecordMessage(ctx *fiber.Ctx) error
	ListMessages(ctx *fiber.Ctx) error
}

type telemetryController struct {
	telemetryService service.ITelemetryService
}

func NewTelemetryController(telemetryService service.ITelemetryService) ITelemetryController {
	return &telemetryController{
		telemetryService: telemetryService,
	}
}

func (c *telemetryController) RegisterRoutes(r fiber.Router) {
	ev := r.Group("/events")
	ev.Post("", c.RecordEvent)
	ev.Get("", c.ListEvents)

	msg := r.Group("/messages")
	msg.Post("", c.RecordMessage)
	msg.Get("", c.ListMessages)
}

func (c *telemetryController) RecordEvent(ctx *fiber.Ctx) error {
	var req dto.RecordEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid JSON body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.telemetryService.RecordEvent(ctx.Context(), &req, serverutils.ClientIP(ctx))
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"id":        res.Id,
		"createdAt": res.CreatedAt,
	})
}

func (c *telemetryController) ListEvents(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 0)
	offset := ctx.QueryInt("offset", 0)
	filterName := ctx.Query("event")

	res, err := c.telemetryService.ListEvents(ctx.Context(), filterName, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *telemetryController) RecordMessage(ctx *fiber.Ctx) error {
	var req dto.RecordMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid JSON body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.telemetryService.RecordMessage(ctx.Context(), &req, serverutils.ClientIP(ctx))
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"id":        res.Id,
		"sessionId": res.SessionId,
	})
}

func (c *telemetryController) ListMessages(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 0)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.telemetryService.ListMessages(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
