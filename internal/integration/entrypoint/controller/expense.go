// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/expense"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

var expenseStatus = map[domainerror.ExpenseErrorCode]int{
	domainerror.ErrCodeExpenseNotFound:         http.StatusNotFound,
	domainerror.ErrCodeInvalidExpenseAmount:    http.StatusBadRequest,
	domainerror.ErrCodeInvalidPaymentMethod:    http.StatusBadRequest,
	domainerror.ErrCodeInvalidInstallments:     http.StatusBadRequest,
	domainerror.ErrCodeInvalidDayOfMonth:       http.StatusBadRequest,
	domainerror.ErrCodeExpenseCategoryRequired: http.StatusBadRequest,
	domainerror.ErrCodeExpenseCardNotFound:     http.StatusBadRequest,
	domainerror.ErrCodeExpenseNoteTooLong:      http.StatusBadRequest,
	domainerror.ErrCodeMissingExpenseFields:    http.StatusBadRequest,
	domainerror.ErrCodeInvalidExpenseDate:      http.StatusBadRequest,
}

// ExpenseController handles expense and recurring expense endpoints.
type ExpenseController struct {
	listUseCase            *expense.ListExpensesUseCase
	createUseCase          *expense.CreateExpenseUseCase
	updateUseCase          *expense.UpdateExpenseUseCase
	deleteUseCase          *expense.DeleteExpenseUseCase
	listRecurringUseCase   *expense.ListRecurringExpensesUseCase
	createRecurringUseCase *expense.CreateRecurringExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	listRecurringUseCase *expense.ListRecurringExpensesUseCase,
	createRecurringUseCase *expense.CreateRecurringExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:            listUseCase,
		createUseCase:          createUseCase,
		updateUseCase:          updateUseCase,
		deleteUseCase:          deleteUseCase,
		listRecurringUseCase:   listRecurringUseCase,
		createRecurringUseCase: createRecurringUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	period, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		UserID:   userID,
		Period:   period,
		Category: ctx.Query("category"),
	})
	if err != nil {
		respondCoded(ctx, expenseStatus, "Expense request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses: dto.ToExpenseResponses(output.Expenses),
		Total:    output.Total.StringFixed(2),
	})
}

// Create handles POST /expenses requests.
// Credit purchases in installments and fixed expenses create several records.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.ExpenseRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingExpenseFields) {
		return
	}

	fields, ok := c.parseFields(ctx, req.Date, req.CreditCardID)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		UserID:        userID,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Amount:        decimal.NewFromFloat(req.Amount),
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Installments:  req.Installments,
		CreditCardID:  fields.creditCardID,
		Note:          req.Note,
		Date:          fields.date,
		Fixed:         req.Fixed,
	})
	if err != nil {
		respondCoded(ctx, expenseStatus, "Expense request failed", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreateExpenseResponse(output.Expenses, output.Template))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	expenseID, ok := parseIDParam(ctx, "expense")
	if !ok {
		return
	}

	var req dto.ExpenseRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingExpenseFields) {
		return
	}

	fields, ok := c.parseFields(ctx, req.Date, req.CreditCardID)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		ID:            expenseID,
		UserID:        userID,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Amount:        decimal.NewFromFloat(req.Amount),
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Installments:  req.Installments,
		CreditCardID:  fields.creditCardID,
		Note:          req.Note,
		Date:          fields.date,
	})
	if err != nil {
		respondCoded(ctx, expenseStatus, "Expense request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	expenseID, ok := parseIDParam(ctx, "expense")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ID:     expenseID,
		UserID: userID,
	})
	if err != nil {
		respondCoded(ctx, expenseStatus, "Expense request failed", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListRecurring handles GET /recurring-expenses requests.
func (c *ExpenseController) ListRecurring(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listRecurringUseCase.Execute(ctx.Request.Context(), expense.ListRecurringExpensesInput{
		UserID: userID,
	})
	if err != nil {
		respondCoded(ctx, expenseStatus, "Expense request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringExpenseListResponse(output.Templates))
}

// CreateRecurring handles POST /recurring-expenses requests.
// The template is materialized from its start month through December.
func (c *ExpenseController) CreateRecurring(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.RecurringExpenseRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingExpenseFields) {
		return
	}

	fields, ok := c.parseFields(ctx, req.StartDate, req.CreditCardID)
	if !ok {
		return
	}

	output, err := c.createRecurringUseCase.Execute(ctx.Request.Context(), expense.CreateRecurringExpenseInput{
		UserID:        userID,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Amount:        decimal.NewFromFloat(req.Amount),
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Installments:  req.Installments,
		CreditCardID:  fields.creditCardID,
		Note:          req.Note,
		StartDate:     fields.date,
		DayOfMonth:    req.DayOfMonth,
	})
	if err != nil {
		respondCoded(ctx, expenseStatus, "Expense request failed", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreateExpenseResponse(output.Expenses, output.Template))
}

type expenseFields struct {
	date         time.Time
	creditCardID *uuid.UUID
}

// parseFields converts the textual date and card id of a request.
func (c *ExpenseController) parseFields(ctx *gin.Context, date string, creditCardID *string) (expenseFields, bool) {
	parsedDate, err := dto.ParseDate(date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return expenseFields{}, false
	}

	cardID, err := dto.ParseOptionalUUID(creditCardID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit card ID format",
			Code:  string(domainerror.ErrCodeExpenseCardNotFound),
		})
		return expenseFields{}, false
	}

	return expenseFields{date: parsedDate, creditCardID: cardID}, true
}
