package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

func newTestContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	return ctx, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRespondCoded(t *testing.T) {
	statuses := map[domainerror.CategoryErrorCode]int{
		domainerror.ErrCodeCategoryNotFound:   http.StatusNotFound,
		domainerror.ErrCodeCategoryNameExists: http.StatusConflict,
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name:       "mapped code",
			err:        domainerror.NewCategoryError(domainerror.ErrCodeCategoryNotFound, "category not found", domainerror.ErrCategoryNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "CAT-010004",
			wantError:  "category not found",
		},
		{
			name:       "wrapped coded error",
			err:        fmt.Errorf("create: %w", domainerror.NewCategoryError(domainerror.ErrCodeCategoryNameExists, "name taken", nil)),
			wantStatus: http.StatusConflict,
			wantCode:   "CAT-010005",
			wantError:  "name taken",
		},
		{
			name:       "code missing from table",
			err:        domainerror.NewCategoryError(domainerror.ErrCodeInvalidSubcategory, "bad subcategory", nil),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "CAT-010007",
			wantError:  "bad subcategory",
		},
		{
			name:       "error of another domain",
			err:        domainerror.NewExpenseError(domainerror.ErrCodeExpenseNotFound, "expense not found", nil),
			wantStatus: http.StatusInternalServerError,
			wantError:  "An internal error occurred",
		},
		{
			name:       "plain error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext("")
			respondCoded(ctx, statuses, "Failed to handle category", tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestBindBody(t *testing.T) {
	type payload struct {
		Name string `json:"name" binding:"required"`
	}

	t.Run("valid body", func(t *testing.T) {
		ctx, rec := newTestContext(`{"name":"mercado"}`)
		var p payload
		require.True(t, bindBody(ctx, &p, domainerror.ErrCodeMissingCategoryFields))
		assert.Equal(t, "mercado", p.Name)
		assert.Equal(t, 0, rec.Body.Len())
	})

	t.Run("missing field", func(t *testing.T) {
		ctx, rec := newTestContext(`{}`)
		var p payload
		assert.False(t, bindBody(ctx, &p, domainerror.ErrCodeMissingCategoryFields))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, "CAT-010008", resp.Code)
		assert.NotEmpty(t, resp.Details)
	})

	t.Run("malformed json", func(t *testing.T) {
		ctx, rec := newTestContext(`{"name":`)
		var p payload
		assert.False(t, bindBody(ctx, &p, domainerror.ErrCodeMissingCategoryFields))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
