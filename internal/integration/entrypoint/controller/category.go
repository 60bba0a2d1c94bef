package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/category"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

var categoryStatus = map[domainerror.CategoryErrorCode]int{
	domainerror.ErrCodeCategoryNotFound:      http.StatusNotFound,
	domainerror.ErrCodeCategoryNameExists:    http.StatusConflict,
	domainerror.ErrCodeNotAuthorizedCategory: http.StatusForbidden,
	domainerror.ErrCodeCategoryNameTooLong:   http.StatusBadRequest,
	domainerror.ErrCodeCategoryNameRequired:  http.StatusBadRequest,
	domainerror.ErrCodeInvalidColorFormat:    http.StatusBadRequest,
	domainerror.ErrCodeInvalidCategoryKind:   http.StatusBadRequest,
	domainerror.ErrCodeInvalidSubcategory:    http.StatusBadRequest,
	domainerror.ErrCodeMissingCategoryFields: http.StatusBadRequest,
}

// CategoryController serves /categories.
type CategoryController struct {
	list   *category.ListCategoriesUseCase
	create *category.CreateCategoryUseCase
	update *category.UpdateCategoryUseCase
	delete *category.DeleteCategoryUseCase
}

func NewCategoryController(
	list *category.ListCategoriesUseCase,
	create *category.CreateCategoryUseCase,
	update *category.UpdateCategoryUseCase,
	del *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{list: list, create: create, update: update, delete: del}
}

// List handles GET /categories, optionally filtered by ?kind=expense|income.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.list.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		UserID: userID,
		Kind:   entity.CategoryKind(ctx.Query("kind")),
	})
	if err != nil {
		respondCoded(ctx, categoryStatus, "Failed to list categories", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingCategoryFields) {
		return
	}

	output, err := c.create.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		UserID:        userID,
		Name:          req.Name,
		Subcategories: req.Subcategories,
		Color:         req.Color,
		Kind:          entity.CategoryKind(req.Kind),
	})
	if err != nil {
		respondCoded(ctx, categoryStatus, "Failed to create category", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PUT /categories/:id. Omitted fields keep their value.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "category")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingCategoryFields) {
		return
	}

	output, err := c.update.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		CategoryID:    id,
		UserID:        userID,
		Name:          req.Name,
		Color:         req.Color,
		Subcategories: req.Subcategories,
	})
	if err != nil {
		respondCoded(ctx, categoryStatus, "Failed to update category", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "category")
	if !ok {
		return
	}

	err := c.delete.Execute(ctx.Request.Context(), category.DeleteCategoryInput{CategoryID: id, UserID: userID})
	if err != nil {
		respondCoded(ctx, categoryStatus, "Failed to delete category", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
