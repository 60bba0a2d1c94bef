package error

import "errors"

// Period and year parsing failures shared by the dashboard and list filters.
var (
	ErrInvalidPeriod = errors.New("invalid period, expected YYYY-MM")
	ErrInvalidYear   = errors.New("invalid year")
)

// DashboardErrorCode identifies a dashboard failure. Format: DSH-XXYYYY,
// 99 marks failures of the aggregation itself.
type DashboardErrorCode string

const (
	ErrCodeInvalidPeriod          DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidYear            DashboardErrorCode = "DSH-010002"
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

type DashboardError = Coded[DashboardErrorCode]

func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{Code: code, Message: message, Err: err}
}
