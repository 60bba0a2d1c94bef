// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/income"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

var incomeStatus = map[domainerror.IncomeErrorCode]int{
	domainerror.ErrCodeIncomeNotFound:         http.StatusNotFound,
	domainerror.ErrCodeInvalidIncomeAmount:    http.StatusBadRequest,
	domainerror.ErrCodeIncomeCategoryRequired: http.StatusBadRequest,
	domainerror.ErrCodeMissingIncomeFields:    http.StatusBadRequest,
	domainerror.ErrCodeInvalidIncomeDate:      http.StatusBadRequest,
}

// IncomeController handles income endpoints.
type IncomeController struct {
	listUseCase   *income.ListIncomesUseCase
	createUseCase *income.CreateIncomeUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomesUseCase,
	createUseCase *income.CreateIncomeUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	period, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), income.ListIncomesInput{
		UserID: userID,
		Period: period,
	})
	if err != nil {
		respondCoded(ctx, incomeStatus, "Income request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Incomes, output.Total))
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input, ok := c.bindIncome(ctx)
	if !ok {
		return
	}
	input.UserID = userID

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondCoded(ctx, incomeStatus, "Income request failed", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}

// Update handles PUT /incomes/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	incomeID, ok := parseIDParam(ctx, "income")
	if !ok {
		return
	}

	fields, ok := c.bindIncome(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), income.UpdateIncomeInput{
		ID:       incomeID,
		UserID:   userID,
		Category: fields.Category,
		Amount:   fields.Amount,
		Date:     fields.Date,
		Source:   fields.Source,
		Note:     fields.Note,
	})
	if err != nil {
		respondCoded(ctx, incomeStatus, "Income request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	incomeID, ok := parseIDParam(ctx, "income")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), income.DeleteIncomeInput{
		ID:     incomeID,
		UserID: userID,
	})
	if err != nil {
		respondCoded(ctx, incomeStatus, "Income request failed", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindIncome parses the request body into a create input without a user.
func (c *IncomeController) bindIncome(ctx *gin.Context) (income.CreateIncomeInput, bool) {
	var req dto.IncomeRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingIncomeFields) {
		return income.CreateIncomeInput{}, false
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidIncomeDate),
		})
		return income.CreateIncomeInput{}, false
	}

	return income.CreateIncomeInput{
		Category: req.Category,
		Amount:   decimal.NewFromFloat(req.Amount),
		Date:     date,
		Source:   req.Source,
		Note:     req.Note,
	}, true
}
