// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowup-wallet/backend/internal/application/usecase/ledger"
	"github.com/glowup-wallet/backend/internal/domain/entity"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard and theme endpoints.
type DashboardController struct {
	dashboardUseCase *ledger.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(dashboardUseCase *ledger.GetDashboardUseCase) *DashboardController {
	return &DashboardController{
		dashboardUseCase: dashboardUseCase,
	}
}

// Get handles GET /dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), ledger.GetDashboardInput{
		Theme: ctx.Query("theme"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// Themes handles GET /themes requests.
func (c *DashboardController) Themes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToThemeListResponse(entity.Themes()))
}
