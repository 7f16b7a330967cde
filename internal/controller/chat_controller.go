package controller

import (
	"bufio"
	"context"

	"portfolio-pulse-be/internal/dto"
	"portfolio-pulse-be/internal/pkg/apperror"
	"portfolio-pulse-be/internal/pkg/serverutils"
	"portfolio-pulse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
}

// Chat validates the conversation payload and relays backend tokens to the
// caller as they arrive. Errors before the first byte become a single JSON
// error response; once streaming has begun, sent tokens are not retracted.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid JSON body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// The stream outlives this handler, so it gets its own context. A write
	// failure means the caller disconnected; cancel propagates to the
	// backend call.
	streamCtx, cancel := context.WithCancel(context.Background())
	stream, err := c.chatService.StreamReply(streamCtx, &req)
	if err != nil {
		cancel()
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	ctx.Set("X-Accel-Buffering", "no")

	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for chunk := range stream {
			if chunk.Err != nil {
				// Mid-stream backend failure: stop relaying, keep what was sent.
				return
			}
			if _, err := w.WriteString(chunk.Text); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))

	return nil
}
