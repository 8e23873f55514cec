package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	models "MarketPulse/internal/domain/models"
	"MarketPulse/internal/journal"
	"MarketPulse/internal/usecase"
	xhttp "MarketPulse/pkg/http"
	xlogger "MarketPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketHandler exposes the orchestration endpoints: quotes with failover,
// weighted sentiment, and the anomaly journal.
type MarketHandler struct {
	logger         *xlogger.Logger
	orchestrator   *usecase.Orchestrator
	sentiment      *usecase.SentimentService
	journal        *journal.Journal
	defaultSymbols []string
	requestTimeout time.Duration
}

func NewMarketHandler(
	logger *xlogger.Logger,
	orchestrator *usecase.Orchestrator,
	sentiment *usecase.SentimentService,
	jrnl *journal.Journal,
	defaultSymbols []string,
	requestTimeout time.Duration,
) *MarketHandler {
	if len(defaultSymbols) == 0 {
		defaultSymbols = []string{"SPY", "QQQ", "DIA"}
	}
	if requestTimeout <= 0 {
		requestTimeout = 5 * time.Second
	}
	return &MarketHandler{
		logger:         logger,
		orchestrator:   orchestrator,
		sentiment:      sentiment,
		journal:        jrnl,
		defaultSymbols: defaultSymbols,
		requestTimeout: requestTimeout,
	}
}

func (h *MarketHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/quotes", h.Quotes)
	g.POST("/quotes", h.Quotes)
	g.GET("/sentiment", h.Sentiment)
	g.POST("/sentiment", h.Sentiment)
	g.GET("/anomalies", h.Anomalies)
	g.DELETE("/anomalies", h.ClearAnomalies)
	e.GET("/healthz", h.Healthz)
}

// Quotes runs a full orchestration cycle. It degrades rather than fails: a
// panic anywhere in the chain yields a 500 with a RED/FALLBACK health stub so
// consumers still have a status to render.
func (h *MarketHandler) Quotes(c echo.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("orchestration panicked", xlogger.Any("panic", r))
			err = xhttp.FailureResponse(c, http.StatusInternalServerError, models.DegradedResponse{
				Error: fmt.Sprintf("orchestration failed: %v", r),
				Health: models.DataHealthStatus{
					Status:      models.StatusRed,
					Source:      models.SourceFallback,
					Anomalies:   []models.DataAnomaly{},
					LastUpdated: time.Now().UTC().Format(time.RFC3339),
				},
			})
		}
	}()

	req := &models.QuotesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	symbols := h.resolveSymbols(req.Symbols)

	// Timeout expiry inside a tier counts as that tier's failure, so the
	// chain still degrades instead of hanging the request.
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.requestTimeout)
	defer cancel()

	quotes, health := h.orchestrator.Orchestrate(ctx, symbols)
	return xhttp.SuccessResponse(c, models.QuotesResponse{Quotes: quotes, Health: health})
}

// Sentiment aggregates reliability-weighted news sentiment per symbol.
func (h *MarketHandler) Sentiment(c echo.Context) error {
	req := &models.SentimentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	symbols := h.resolveSymbols(req.Symbols)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.requestTimeout)
	defer cancel()

	res := h.sentiment.Analyze(ctx, symbols)
	return xhttp.SuccessResponse(c, res)
}

// Anomalies returns the retained anomaly journal, newest first.
func (h *MarketHandler) Anomalies(c echo.Context) error {
	snap := h.journal.Snapshot()
	return xhttp.SuccessResponse(c, models.AnomaliesResponse{Anomalies: snap, Total: len(snap)})
}

// ClearAnomalies drops the journal.
func (h *MarketHandler) ClearAnomalies(c echo.Context) error {
	h.journal.Clear()
	return xhttp.NoContentResponse(c)
}

func (h *MarketHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// resolveSymbols falls back to the configured watchlist and normalizes case.
func (h *MarketHandler) resolveSymbols(symbols []string) []string {
	if len(symbols) == 0 {
		symbols = h.defaultSymbols
	}
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
