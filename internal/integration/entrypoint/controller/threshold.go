// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/alert"
	"github.com/finance-dashboard/backend/internal/application/usecase/threshold"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

var thresholdStatus = map[domainerror.ThresholdErrorCode]int{
	domainerror.ErrCodeInvalidThresholdValue:  http.StatusBadRequest,
	domainerror.ErrCodeEmptyThresholdCategory: http.StatusBadRequest,
	domainerror.ErrCodeMissingThresholds:      http.StatusBadRequest,
	domainerror.ErrCodeDuplicateThreshold:     http.StatusBadRequest,
}

// ThresholdController handles spending threshold and alert endpoints.
type ThresholdController struct {
	getUseCase        *threshold.GetThresholdsUseCase
	replaceUseCase    *threshold.ReplaceThresholdsUseCase
	listAlertsUseCase *alert.ListAlertsUseCase
}

// NewThresholdController creates a new threshold controller instance.
func NewThresholdController(
	getUseCase *threshold.GetThresholdsUseCase,
	replaceUseCase *threshold.ReplaceThresholdsUseCase,
	listAlertsUseCase *alert.ListAlertsUseCase,
) *ThresholdController {
	return &ThresholdController{
		getUseCase:        getUseCase,
		replaceUseCase:    replaceUseCase,
		listAlertsUseCase: listAlertsUseCase,
	}
}

// Get handles GET /thresholds requests.
func (c *ThresholdController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), threshold.GetThresholdsInput{
		UserID: userID,
	})
	if err != nil {
		respondCoded(ctx, thresholdStatus, "Threshold request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToThresholdsBody(output.Thresholds))
}

// Replace handles PUT /thresholds requests.
func (c *ThresholdController) Replace(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var body dto.ThresholdsBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Thresholds must be an object of category to non-negative number",
			Code:    string(domainerror.ErrCodeInvalidThresholdValue),
			Details: err.Error(),
		})
		return
	}

	output, err := c.replaceUseCase.Execute(ctx.Request.Context(), threshold.ReplaceThresholdsInput{
		UserID:     userID,
		Thresholds: body,
	})
	if err != nil {
		respondCoded(ctx, thresholdStatus, "Threshold request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToThresholdsBody(output.Thresholds))
}

// Alerts handles GET /alerts requests. The period defaults to the current month.
func (c *ThresholdController) Alerts(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	period, ok := periodOrCurrent(ctx)
	if !ok {
		return
	}

	output, err := c.listAlertsUseCase.Execute(ctx.Request.Context(), alert.ListAlertsInput{
		UserID: userID,
		Period: period,
	})
	if err != nil {
		respondInternalError(ctx, "Failed to evaluate alerts", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAlertListResponse(output))
}
