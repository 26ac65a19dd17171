package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowup-wallet/backend/internal/application/usecase/ledger"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/dto"
)

// ChallengeController handles challenge endpoints.
type ChallengeController struct {
	listUseCase *ledger.ListChallengesUseCase
}

// NewChallengeController creates a new challenge controller instance.
func NewChallengeController(listUseCase *ledger.ListChallengesUseCase) *ChallengeController {
	return &ChallengeController{
		listUseCase: listUseCase,
	}
}

// List handles GET /challenges requests.
func (c *ChallengeController) List(ctx *gin.Context) {
	challenges := c.listUseCase.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToChallengeListResponse(challenges))
}
