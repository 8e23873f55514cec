package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CORSConfig holds the allow-lists applied to cross-origin requests.
type CORSConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
}

// CORS returns middleware applying the configured allow-lists. Requests from
// an origin outside AllowOrigins pass through without CORS headers.
func CORS(cfg CORSConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get("Origin")

			if !originAllowed(cfg.AllowOrigins, origin) {
				return next(c)
			}

			h := c.Response().Header()
			switch {
			case origin != "":
				h.Set("Access-Control-Allow-Origin", origin)
			case len(cfg.AllowOrigins) > 0 && cfg.AllowOrigins[0] == "*":
				h.Set("Access-Control-Allow-Origin", "*")
			}
			if len(cfg.AllowMethods) > 0 {
				h.Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowMethods, ", "))
			}
			if len(cfg.AllowHeaders) > 0 {
				h.Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowHeaders, ", "))
			}

			// Preflight ends here
			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}

func originAllowed(allowed []string, origin string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, o := range allowed {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}
