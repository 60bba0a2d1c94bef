// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/dashboard"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// Aggregation failures are deliberately absent and surface as 500.
var dashboardStatus = map[domainerror.DashboardErrorCode]int{
	domainerror.ErrCodeInvalidPeriod: http.StatusBadRequest,
	domainerror.ErrCodeInvalidYear:   http.StatusBadRequest,
}

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetSummaryUseCase
	annualUseCase  *dashboard.GetAnnualBalanceUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	annualUseCase *dashboard.GetAnnualBalanceUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
		annualUseCase:  annualUseCase,
	}
}

// Summary handles GET /dashboard/summary requests.
// Without a period the current month is summarised.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	period, ok := periodOrCurrent(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		UserID: userID,
		Period: period,
	})
	if err != nil {
		respondCoded(ctx, dashboardStatus, "Failed to build dashboard", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// Annual handles GET /dashboard/annual requests.
// Without a year the current year is used.
func (c *DashboardController) Annual(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	year := time.Now().UTC().Year()
	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: domainerror.ErrInvalidYear.Error(),
				Code:  string(domainerror.ErrCodeInvalidYear),
			})
			return
		}
		year = parsed
	}

	output, err := c.annualUseCase.Execute(ctx.Request.Context(), dashboard.GetAnnualBalanceInput{
		UserID: userID,
		Year:   year,
	})
	if err != nil {
		respondCoded(ctx, dashboardStatus, "Failed to build dashboard", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnnualBalanceResponse(output))
}
