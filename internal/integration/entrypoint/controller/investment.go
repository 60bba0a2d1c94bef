// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/investment"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

var investmentStatus = map[domainerror.InvestmentErrorCode]int{
	domainerror.ErrCodeInvestmentNotFound:       http.StatusNotFound,
	domainerror.ErrCodeInvalidInvestmentAmount:  http.StatusBadRequest,
	domainerror.ErrCodeMissingInvestmentFields:  http.StatusBadRequest,
	domainerror.ErrCodeInvalidInvestmentDate:    http.StatusBadRequest,
	domainerror.ErrCodeInvalidCoinIDs:           http.StatusBadRequest,
	domainerror.ErrCodeInvalidSimulation:        http.StatusBadRequest,
	domainerror.ErrCodeQuoteProviderUnavailable: http.StatusBadGateway,
	domainerror.ErrCodeRateProviderUnavailable:  http.StatusBadGateway,
}

// InvestmentController handles investment and crypto quote endpoints.
type InvestmentController struct {
	listUseCase     *investment.ListInvestmentsUseCase
	createUseCase   *investment.CreateInvestmentUseCase
	updateUseCase   *investment.UpdateInvestmentUseCase
	deleteUseCase   *investment.DeleteInvestmentUseCase
	quotesUseCase   *investment.GetQuotesUseCase
	simulateUseCase *investment.SimulateUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	listUseCase *investment.ListInvestmentsUseCase,
	createUseCase *investment.CreateInvestmentUseCase,
	updateUseCase *investment.UpdateInvestmentUseCase,
	deleteUseCase *investment.DeleteInvestmentUseCase,
	quotesUseCase *investment.GetQuotesUseCase,
	simulateUseCase *investment.SimulateUseCase,
) *InvestmentController {
	return &InvestmentController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		quotesUseCase:   quotesUseCase,
		simulateUseCase: simulateUseCase,
	}
}

// List handles GET /investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), investment.ListInvestmentsInput{
		UserID: userID,
	})
	if err != nil {
		respondCoded(ctx, investmentStatus, "Investment request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentListResponse(output.Investments, output.Total, output.CryptoTotal))
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), investment.CreateInvestmentInput{
		UserID: userID,
		Fields: fields,
	})
	if err != nil {
		respondCoded(ctx, investmentStatus, "Investment request failed", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(output.Investment))
}

// Update handles PUT /investments/:id requests.
func (c *InvestmentController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	investmentID, ok := parseIDParam(ctx, "investment")
	if !ok {
		return
	}

	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), investment.UpdateInvestmentInput{
		ID:     investmentID,
		UserID: userID,
		Fields: fields,
	})
	if err != nil {
		respondCoded(ctx, investmentStatus, "Investment request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Delete handles DELETE /investments/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	investmentID, ok := parseIDParam(ctx, "investment")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), investment.DeleteInvestmentInput{
		ID:     investmentID,
		UserID: userID,
	})
	if err != nil {
		respondCoded(ctx, investmentStatus, "Investment request failed", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Quotes handles GET /investments/quotes?ids=bitcoin,ethereum requests.
func (c *InvestmentController) Quotes(ctx *gin.Context) {
	if _, ok := requireUser(ctx); !ok {
		return
	}

	var ids []string
	for _, raw := range ctx.QueryArray("ids") {
		ids = append(ids, strings.Split(raw, ",")...)
	}

	output, err := c.quotesUseCase.Execute(ctx.Request.Context(), investment.GetQuotesInput{
		CoinIDs: ids,
	})
	if err != nil {
		respondCoded(ctx, investmentStatus, "Investment request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToQuoteListResponse(output.Quotes))
}

// Simulate handles GET /investments/simulate?amount=1000&months=12&index=selic.
// An explicit rate query parameter replaces the index.
func (c *InvestmentController) Simulate(ctx *gin.Context) {
	if _, ok := requireUser(ctx); !ok {
		return
	}

	input := investment.SimulateInput{Index: ctx.Query("index")}
	var err error
	if input.Amount, err = decimal.NewFromString(ctx.Query("amount")); err != nil {
		invalidSimulationQuery(ctx, "amount must be a number")
		return
	}
	if input.Months, err = strconv.Atoi(ctx.DefaultQuery("months", "12")); err != nil {
		invalidSimulationQuery(ctx, "months must be a whole number")
		return
	}
	if raw := ctx.Query("rate"); raw != "" {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			invalidSimulationQuery(ctx, "rate must be a number")
			return
		}
		input.Rate = &rate
	}

	output, err := c.simulateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondCoded(ctx, investmentStatus, "Investment simulation failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimulationResponse(output.Index, output.Projection))
}

func invalidSimulationQuery(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeInvalidSimulation),
	})
}

func (c *InvestmentController) bindFields(ctx *gin.Context) (investment.Fields, bool) {
	var req dto.InvestmentRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingInvestmentFields) {
		return investment.Fields{}, false
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidInvestmentDate),
		})
		return investment.Fields{}, false
	}

	return investment.Fields{
		Type:        req.Type,
		Name:        req.Name,
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        date,
		IsCrypto:    req.IsCrypto,
		Description: req.Description,
	}, true
}
