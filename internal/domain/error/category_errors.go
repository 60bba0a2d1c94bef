package error

import "errors"

var (
	ErrCategoryNotFound              = errors.New("category not found")
	ErrCategoryNameExists            = errors.New("category name already exists")
	ErrCategoryNameRequired          = errors.New("category name is required")
	ErrCategoryNameTooLong           = errors.New("category name too long")
	ErrInvalidColorFormat            = errors.New("color must be #RRGGBB")
	ErrInvalidCategoryKind           = errors.New("kind must be expense or income")
	ErrInvalidSubcategory            = errors.New("subcategories must be unique and non-blank")
	ErrNotAuthorizedToModifyCategory = errors.New("category belongs to another user")
)

// CategoryErrorCode identifies a category failure. Format: CAT-XXYYYY.
type CategoryErrorCode string

const (
	ErrCodeCategoryNameTooLong   CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidColorFormat    CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidCategoryKind   CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNameExists    CategoryErrorCode = "CAT-010005"
	ErrCodeNotAuthorizedCategory CategoryErrorCode = "CAT-010006"
	ErrCodeInvalidSubcategory    CategoryErrorCode = "CAT-010007"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010008"
	ErrCodeCategoryNameRequired  CategoryErrorCode = "CAT-010009"
)

type CategoryError = Coded[CategoryErrorCode]

func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{Code: code, Message: message, Err: err}
}
