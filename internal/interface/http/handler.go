package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/ai-stylist/internal/domain/bodyanalysis"
	"github.com/yanqian/ai-stylist/internal/domain/flow"
	"github.com/yanqian/ai-stylist/internal/domain/outfit"
	"github.com/yanqian/ai-stylist/internal/domain/trending"
	"github.com/yanqian/ai-stylist/internal/domain/wardrobe"
)

const (
	invocationHeader = "X-Invocation-Id"
	failureMessage   = "operation failed, please try again"
)

// Handler wires the HTTP transport to the stylist flows.
type Handler struct {
	bodySvc     bodyanalysis.Service
	trendSvc    trending.Service
	outfitSvc   outfit.Service
	wardrobeSvc wardrobe.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(bodySvc bodyanalysis.Service, trendSvc trending.Service, outfitSvc outfit.Service, wardrobeSvc wardrobe.Service, logger *slog.Logger) *Handler {
	return &Handler{
		bodySvc:     bodySvc,
		trendSvc:    trendSvc,
		outfitSvc:   outfitSvc,
		wardrobeSvc: wardrobeSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// AnalyzeBody runs the body type and undertone flow.
func (h *Handler) AnalyzeBody(c *gin.Context) {
	var req bodyanalysis.Request
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.bodySvc.Analyze(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, flowError(err))
		return
	}
	writeResult(c, res)
}

// IdentifyTrends runs the trending clothes flow.
func (h *Handler) IdentifyTrends(c *gin.Context) {
	var req trending.Request
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.trendSvc.Identify(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, flowError(err))
		return
	}
	writeResult(c, res)
}

// SuggestPairings runs the clothing pairing flow.
func (h *Handler) SuggestPairings(c *gin.Context) {
	var req outfit.Request
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.outfitSvc.Suggest(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, flowError(err))
		return
	}
	writeResult(c, res)
}

// PairWardrobe runs the wardrobe pairing flow. Wardrobes smaller than
// wardrobe.MinItems are turned away before the flow runs.
func (h *Handler) PairWardrobe(c *gin.Context) {
	var req wardrobe.Request
	if !bindJSON(c, &req) {
		return
	}
	if len(req.ClothingItems) < wardrobe.MinItems {
		msg := fmt.Sprintf("add at least %d clothing items to get pairing suggestions", wardrobe.MinItems)
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "insufficient_items", msg, nil))
		return
	}
	res, err := h.wardrobeSvc.Pair(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, flowError(err))
		return
	}
	writeResult(c, res)
}

// TopTrends returns the most frequently identified trending pieces.
func (h *Handler) TopTrends(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer", err))
			return
		}
		limit = parsed
	}
	items, err := h.trendSvc.Top(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusServiceUnavailable, "trend_store_error", "trending items are unavailable", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Catalog returns the option lists used by the pairing form.
func (h *Handler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, outfit.Options())
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, NewHTTPError(http.StatusRequestEntityTooLarge, "request_too_large", "request body is too large", err))
			return false
		}
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return false
	}
	return true
}

func writeResult[Out any](c *gin.Context, res flow.Result[Out]) {
	c.Header(invocationHeader, res.Meta.InvocationID)
	c.JSON(http.StatusOK, res.Output)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
