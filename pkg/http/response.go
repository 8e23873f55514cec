package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DataResponse writes API response with status and data.
func DataResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(http.StatusOK, APIResponse{
		Status:  statusCode,
		Message: http.StatusText(statusCode),
		Data:    data,
	})
}

// SuccessResponse writes success response.
func SuccessResponse(c echo.Context, data interface{}) error {
	return DataResponse(c, http.StatusOK, data)
}

// NoContentResponse writes no content response.
func NoContentResponse(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// BadRequestResponse writes bad request error.
func BadRequestResponse(c echo.Context, data interface{}) error {
	return DataResponse(c, http.StatusBadRequest, data)
}

// FailureResponse writes data with a real (non-200) HTTP status code.
// Used for degraded payloads that must signal transport-level failure.
func FailureResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, APIResponse{
		Status:  statusCode,
		Message: http.StatusText(statusCode),
		Data:    data,
	})
}

// InternalServerErrorResponse writes internal server error.
func InternalServerErrorResponse(c echo.Context) error {
	return DataResponse(c, http.StatusInternalServerError, "Something went wrong")
}

// AppErrorResponse writes application error response.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return DataResponse(c, appErr.Status, []*AppError{appErr})
	}
	return InternalServerErrorResponse(c)
}
