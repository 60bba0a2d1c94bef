// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// requireUser returns the authenticated user id or writes a 401.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses the :id path parameter or writes a 400.
func parseIDParam(ctx *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + resource + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parsePeriodQuery reads ?period=YYYY-MM. A missing value yields nil.
func parsePeriodQuery(ctx *gin.Context) (*valueobject.Period, bool) {
	value := ctx.Query("period")
	if value == "" {
		return nil, true
	}

	period, err := valueobject.ParsePeriod(value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: domainerror.ErrInvalidPeriod.Error(),
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return nil, false
	}
	return &period, true
}

// periodOrCurrent is parsePeriodQuery defaulting to the current month.
func periodOrCurrent(ctx *gin.Context) (valueobject.Period, bool) {
	period, ok := parsePeriodQuery(ctx)
	if !ok {
		return valueobject.Period{}, false
	}
	if period == nil {
		return valueobject.PeriodOf(time.Now().UTC()), true
	}
	return *period, true
}

// logRequestError logs err together with the request id.
func logRequestError(ctx *gin.Context, message string, err error) {
	slog.Error(message,
		"error", err,
		"request_id", requestid.Get(ctx),
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
	)
}

// respondInternalError logs err and writes a generic 500.
func respondInternalError(ctx *gin.Context, message string, err error) {
	logRequestError(ctx, message, err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// respondCoded writes a domain error with the status its code maps to in
// statuses. Unknown codes and foreign errors become a logged 500.
func respondCoded[C ~string](ctx *gin.Context, statuses map[C]int, message string, err error) {
	var coded *domainerror.Coded[C]
	if !errors.As(err, &coded) {
		respondInternalError(ctx, message, err)
		return
	}
	status, ok := statuses[coded.Code]
	if !ok {
		status = http.StatusInternalServerError
		logRequestError(ctx, message, err)
	}
	ctx.JSON(status, dto.ErrorResponse{Error: coded.Message, Code: string(coded.Code)})
}

// bindBody decodes the JSON body into dest or writes a 400 carrying code.
func bindBody[C ~string](ctx *gin.Context, dest any, code C) bool {
	if err := ctx.ShouldBindJSON(dest); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(code),
			Details: err.Error(),
		})
		return false
	}
	return true
}
