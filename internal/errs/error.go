package errs

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access forbidden")
	ErrBadRequest   = errors.New("bad request")

	ErrBookLoaned       = errors.New("book already has an active loan")
	ErrInactiveCustomer = errors.New("customer is inactive")
	ErrInactiveBook     = errors.New("book is inactive")
	ErrUnknownLoanType  = errors.New("unknown loan type")
)
