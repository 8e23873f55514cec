package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// Recover converts a handler panic into a 500 response instead of killing
// the connection.
func Recover() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					log.Printf("panic on %s %s: %v\n%s",
						c.Request().Method, c.Request().RequestURI, err, debug.Stack())
					_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"status":  http.StatusInternalServerError,
						"message": http.StatusText(http.StatusInternalServerError),
					})
				}
			}()
			return next(c)
		}
	}
}
