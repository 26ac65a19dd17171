// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowup-wallet/backend/internal/application/usecase/ledger"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase     *ledger.ListGoalsUseCase
	createUseCase   *ledger.CreateGoalUseCase
	getUseCase      *ledger.GetGoalUseCase
	addFundsUseCase *ledger.AddFundsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *ledger.ListGoalsUseCase,
	createUseCase *ledger.CreateGoalUseCase,
	getUseCase *ledger.GetGoalUseCase,
	addFundsUseCase *ledger.AddFundsUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		getUseCase:      getUseCase,
		addFundsUseCase: addFundsUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, string(domainerror.ErrCodeMissingFields))
		return
	}

	deadline, err := req.ParseDeadline()
	if err != nil {
		bindError(ctx, err, string(domainerror.ErrCodeMissingFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), ledger.CreateGoalInput{
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		Emoji:        req.Emoji,
		Deadline:     deadline,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal, 0))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal, output.ProgressPercent))
}

// AddFunds handles POST /goals/:id/funds requests.
// The celebration line follows the ?theme= query parameter.
func (c *GoalController) AddFunds(ctx *gin.Context) {
	var req dto.AddFundsRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			bindError(ctx, err, string(domainerror.ErrCodeInvalidAmount))
			return
		}
	}

	theme, err := ledger.ResolveTheme(ctx.Query("theme"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	amount := ledger.DefaultFundsIncrement
	if req.Amount != nil {
		amount = *req.Amount
	}

	output, err := c.addFundsUseCase.Execute(ctx.Request.Context(), ledger.AddFundsInput{
		GoalID: ctx.Param("id"),
		Amount: amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAddFundsResponse(output, theme))
}
