package controller

import (
	"portfolio-pulse-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Dashboard(ctx *fiber.Ctx) error
	Notifications(ctx *fiber.Ctx) error
}

type adminController struct {
	dashboardService    service.IDashboardService
	notificationService service.INotificationService
}

func NewAdminController(
	dashboardService service.IDashboardService,
	notificationService service.INotificationService,
) IAdminController {
	return &adminController{
		dashboardService:    dashboardService,
		notificationService: notificationService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	r.Get("/dashboard", guard, c.Dashboard)
	r.Get("/notifications", guard, c.Notifications)
}

func (c *adminController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.GetSummary(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) Notifications(ctx *fiber.Ctx) error {
	res, err := c.notificationService.GetUrgentNotifications(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
