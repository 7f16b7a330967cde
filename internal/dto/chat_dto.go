package dto

type ChatTurn struct {
	Role string `json:"role" validate:"required,oneof=user assistant"`
	Text string `json:"text" validate:"required"`
}

type ChatRequest struct {
	Messages []ChatTurn `json:"messages" validate:"required,min=1,dive"`
}
