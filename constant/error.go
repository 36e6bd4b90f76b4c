package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrImageReferenced
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "error internal",
	ErrNotFound:         "data not found",
	ErrInvalidRequest:   "invalid request",
	ErrUnauthorize:      "unauthorize request",
	ErrForbidden:        "forbidden",
	ErrCredentialExists: "email already exists",
	ErrInvalidPassword:  "password invalid",
	ErrImageReferenced:  "image still referenced",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusNotFound,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnauthorize:      http.StatusUnauthorized,
	ErrForbidden:        http.StatusForbidden,
	ErrCredentialExists: http.StatusConflict,
	ErrInvalidPassword:  http.StatusForbidden,
	ErrImageReferenced:  http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrUnauthorize:      "0004",
	ErrForbidden:        "0005",
	ErrCredentialExists: "0006",
	ErrInvalidPassword:  "0007",
	ErrImageReferenced:  "0008",
}
