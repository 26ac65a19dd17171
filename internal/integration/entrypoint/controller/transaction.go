// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowup-wallet/backend/internal/application/usecase/ledger"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase *ledger.ListTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(listUseCase *ledger.ListTransactionsUseCase) *TransactionController {
	return &TransactionController{
		listUseCase: listUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	transactions := c.listUseCase.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions))
}
