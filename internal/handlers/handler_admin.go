package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/dto"
	"github.com/gin-gonic/gin"
)

type adminHandler struct {
	accountService portssvc.AccountSvc
	reportService  portssvc.ReportSvc
}

func newAdminHandler(accountService portssvc.AccountSvc, reportService portssvc.ReportSvc) *adminHandler {
	return &adminHandler{accountService: accountService, reportService: reportService}
}

func registerAdminRoutes(rg *gin.RouterGroup, access portssvc.AccessPolicySvc, accountService portssvc.AccountSvc, reportService portssvc.ReportSvc) {
	h := newAdminHandler(accountService, reportService)

	admin := rg.Group("/admin", requireAdmin(access))
	{
		admin.GET("/statistics", h.statistics)
		admin.GET("/accounts", h.listAccounts)
		admin.PUT("/accounts/:id/tier", h.setTier)
	}
}

// requireAdmin aborts with 403 for accounts outside the allow-list.
func requireAdmin(access portssvc.AccessPolicySvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, ok := accountFromContext(c)
		if !ok {
			return
		}
		if !access.IsAdmin(accountID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// statistics godoc
// @Summary Service-wide usage aggregates
// @Tags admin
// @Produce json
// @Success 200 {object} domain.AdminStatistics
// @Failure 403 {object} map[string]string "Admin access required"
// @Security BearerAuth
// @Router /admin/statistics [get]
func (h *adminHandler) statistics(c *gin.Context) {
	stats, err := h.reportService.AdminStatistics(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// listAccounts godoc
// @Summary List registered accounts
// @Tags admin
// @Produce json
// @Param limit query int false "Maximum accounts (default 50)"
// @Success 200 {array} domain.Account
// @Failure 403 {object} map[string]string "Admin access required"
// @Security BearerAuth
// @Router /admin/accounts [get]
func (h *adminHandler) listAccounts(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// setTier godoc
// @Summary Assign a subscription tier to an account
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param tier body dto.TierUpdateRequest true "New tier"
// @Success 204 "Updated"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /admin/accounts/{id}/tier [put]
func (h *adminHandler) setTier(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account id must be an integer"})
		return
	}

	var req dto.TierUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.accountService.SetTier(c.Request.Context(), targetID, req.Tier); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
