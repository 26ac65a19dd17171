package dto

// ChatRequest represents the request body for a chat message.
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// ChatResponse represents the guide's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// TipResponse represents the daily tip.
type TipResponse struct {
	Theme string `json:"theme"`
	Tip   string `json:"tip"`
}
