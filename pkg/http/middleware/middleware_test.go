package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRecover_ConvertsPanicToServerError(t *testing.T) {
	e := echo.New()
	e.Use(Recover())
	e.GET("/boom", func(echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Internal Server Error")
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	e := echo.New()
	e.Use(CORS(CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://dashboard.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, http.MethodGet, rec.Header().Get("Access-Control-Allow-Methods"))
	require.Equal(t, echo.HeaderContentType, rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORS_WildcardWithoutOrigin(t *testing.T) {
	e := echo.New()
	e.Use(CORS(CORSConfig{AllowOrigins: []string{"*"}}))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisallowedOriginPassesThroughBare(t *testing.T) {
	e := echo.New()
	e.Use(CORS(CORSConfig{AllowOrigins: []string{"https://trusted.example.com"}}))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogging_PassesResponseThrough(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogging())
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusTeapot, "tea") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "tea", rec.Body.String())
}
