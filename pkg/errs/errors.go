package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrNotLoggedIn        = errors.New("Please log in to continue.")
	ErrInvalidCredentials = errors.New("Invalid credentials.")
	ErrForbidden          = errors.New("Forbidden access")
	ErrNotFound           = errors.New("Resource not found")
	ErrEmailAlreadyUsed   = errors.New("Email already registered.")
	ErrInvalidPrice       = errors.New("Price must be a non-negative number.")
	ErrEmptyCart          = errors.New("Your cart is empty.")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrNotLoggedIn:        ErrStatusNotLoggedIn,
	ErrInvalidCredentials: ErrStatusUnauthorized,
	ErrForbidden:          ErrStatusNoPermission,
	ErrNotFound:           ErrStatusNotFound,
	ErrEmailAlreadyUsed:   ErrStatusClient,
	ErrInvalidPrice:       ErrStatusClient,
	ErrEmptyCart:          ErrStatusClient,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
