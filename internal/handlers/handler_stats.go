package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type statsHandler struct {
	financeService portssvc.FinanceSvc
}

func newStatsHandler(financeService portssvc.FinanceSvc) *statsHandler {
	return &statsHandler{financeService: financeService}
}

func registerStatsRoutes(rg *gin.RouterGroup, access portssvc.AccessPolicySvc, financeService portssvc.FinanceSvc) {
	h := newStatsHandler(financeService)

	rg.GET("/transactions", h.listTransactions)
	rg.GET("/statistics", requireFeature(access, domain.FeatureStatistics), h.getStatistics)
}

// listTransactions godoc
// @Summary List recent ledger entries
// @Tags statistics
// @Produce json
// @Param direction query string false "income or expense"
// @Param from query string false "Period start (YYYY-MM-DD)"
// @Param to query string false "Period end (YYYY-MM-DD)"
// @Param limit query int false "Maximum entries"
// @Success 200 {array} domain.LedgerEntry
// @Security BearerAuth
// @Router /transactions [get]
func (h *statsHandler) listTransactions(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	var filter domain.LedgerFilter
	if raw := c.Query("direction"); raw != "" {
		direction := domain.EntryDirection(raw)
		if !direction.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be income or expense"})
			return
		}
		filter.Direction = &direction
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be formatted YYYY-MM-DD"})
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be formatted YYYY-MM-DD"})
			return
		}
		filter.To = &to
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		filter.Limit = limit
	}

	entries, err := h.financeService.RecentEntries(c.Request.Context(), accountID, filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// getStatistics godoc
// @Summary Aggregate the account's ledger
// @Description Defaults to the current calendar month when no period is given
// @Tags statistics
// @Produce json
// @Param from query string false "Period start (YYYY-MM-DD)"
// @Param to query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.StatisticsResponse
// @Failure 403 {object} map[string]string "Feature not granted"
// @Security BearerAuth
// @Router /statistics [get]
func (h *statsHandler) getStatistics(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	var from, to time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be formatted YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be formatted YYYY-MM-DD"})
			return
		}
		to = parsed
	}

	stats, err := h.financeService.Statistics(c.Request.Context(), accountID, from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
