// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	creditcard "github.com/finance-dashboard/backend/internal/application/usecase/credit_card"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

var creditCardStatus = map[domainerror.CreditCardErrorCode]int{
	domainerror.ErrCodeCreditCardNotFound:     http.StatusNotFound,
	domainerror.ErrCodeCreditCardExists:       http.StatusConflict,
	domainerror.ErrCodeInvalidLastDigits:      http.StatusBadRequest,
	domainerror.ErrCodeMissingCreditCardField: http.StatusBadRequest,
}

// CreditCardController handles credit card endpoints.
type CreditCardController struct {
	listUseCase   *creditcard.ListCreditCardsUseCase
	createUseCase *creditcard.CreateCreditCardUseCase
	deleteUseCase *creditcard.DeleteCreditCardUseCase
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(
	listUseCase *creditcard.ListCreditCardsUseCase,
	createUseCase *creditcard.CreateCreditCardUseCase,
	deleteUseCase *creditcard.DeleteCreditCardUseCase,
) *CreditCardController {
	return &CreditCardController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /credit-cards requests.
func (c *CreditCardController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), creditcard.ListCreditCardsInput{
		UserID: userID,
	})
	if err != nil {
		respondCoded(ctx, creditCardStatus, "Credit card request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardListResponse(output.CreditCards))
}

// Create handles POST /credit-cards requests.
func (c *CreditCardController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateCreditCardRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingCreditCardField) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), creditcard.CreateCreditCardInput{
		UserID:     userID,
		Name:       req.Name,
		LastDigits: req.LastDigits,
	})
	if err != nil {
		respondCoded(ctx, creditCardStatus, "Credit card request failed", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(output.CreditCard))
}

// Delete handles DELETE /credit-cards/:id requests.
func (c *CreditCardController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	cardID, ok := parseIDParam(ctx, "credit card")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), creditcard.DeleteCreditCardInput{
		ID:     cardID,
		UserID: userID,
	})
	if err != nil {
		respondCoded(ctx, creditCardStatus, "Credit card request failed", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
