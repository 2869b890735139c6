package core

import "errors"

// Sentinel errors for the payroll path. Handlers map them onto 4xx
// responses with errors.Is; anything else is a 500.
var (
	ErrValidation       = errors.New("invalid input")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrSalaryNotFound   = errors.New("salary record not found")
	ErrDuplicatePeriod  = errors.New("salary already calculated for this week")
)
