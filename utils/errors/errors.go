package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/classifieds/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// Is reports whether err carries the given error type.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}

// HTTPCode maps any error to a status code; unknown errors are internal.
func HTTPCode(err error) int {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce.ErrorHTTPCode()
	}
	return constant.ErrorTypeHTTPCode[constant.ErrInternal]
}
