package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/ai-stylist/internal/domain/flow"
	apperrors "github.com/yanqian/ai-stylist/pkg/errors"
)

// HTTPError is a failure ready to be rendered as {"error":{"code","message"}}.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *HTTPError) response() errorResponse {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.Status)
	}
	return errorResponse{Error: errorDetail{Code: e.Code, Message: message}}
}

// flowError maps flow failure kinds onto HTTP errors. Provider and output
// failures share one generic message; details stay in the logs.
func flowError(err error) *HTTPError {
	switch kind := flow.KindOf(err); kind {
	case flow.KindInvalidInput:
		return NewHTTPError(http.StatusBadRequest, kind, apperrors.MessageOf(err), err)
	case flow.KindProvider, flow.KindOutputMismatch:
		return NewHTTPError(http.StatusBadGateway, kind, failureMessage, err)
	default:
		return internalError(err)
	}
}

func internalError(err error) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return internalError(err)
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
