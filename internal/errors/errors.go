package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AppError is a request failure with a fixed user-facing message and the HTTP
// status it maps to. Handlers return it and the centralized HTTPErrorHandler
// writes the failure envelope.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// New creates an AppError.
func New(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

// failedResponse is the uniform failure envelope.
type failedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HTTPErrorHandler writes every error as the {"status":"failed"} envelope.
// Unknown errors are logged and surfaced as a generic 500 so collaborator
// internals never leak to clients.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "伺服器錯誤"

	switch e := err.(type) {
	case *AppError:
		status = e.Status
		message = e.Message
	case *echo.HTTPError:
		status = e.Code
		if msg, ok := e.Message.(string); ok {
			message = msg
		}
	default:
		log.Printf("unhandled error: %v", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, failedResponse{Status: "failed", Message: message})
}
