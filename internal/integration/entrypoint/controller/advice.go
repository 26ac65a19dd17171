package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowup-wallet/backend/internal/application/usecase/advice"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/dto"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/middleware"
)

// AdviceController handles the GlowUp Guide endpoints.
type AdviceController struct {
	chatUseCase *advice.ChatUseCase
	tipUseCase  *advice.GetTipUseCase
}

// NewAdviceController creates a new advice controller instance.
func NewAdviceController(chatUseCase *advice.ChatUseCase, tipUseCase *advice.GetTipUseCase) *AdviceController {
	return &AdviceController{
		chatUseCase: chatUseCase,
		tipUseCase:  tipUseCase,
	}
}

// Chat handles POST /advice/chat requests.
func (c *AdviceController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, string(domainerror.ErrCodeEmptyMessage))
		return
	}

	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		sessionID = ctx.ClientIP()
	}

	output, err := c.chatUseCase.Execute(ctx.Request.Context(), advice.ChatInput{
		SessionID: sessionID,
		Message:   req.Message,
		Theme:     ctx.Query("theme"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{Reply: output.Reply})
}

// Tip handles GET /advice/tip requests.
func (c *AdviceController) Tip(ctx *gin.Context) {
	output, err := c.tipUseCase.Execute(ctx.Request.Context(), advice.GetTipInput{
		Theme: ctx.Query("theme"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TipResponse{Theme: output.Theme, Tip: output.Tip})
}
