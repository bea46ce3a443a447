package handlers

import (
	"fmt"
	"net/http"
	"strings"

	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/dto"
	"github.com/finflowhq/finflow_bot/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const usageBarLength = 10

type settingsHandler struct {
	accountService portssvc.AccountSvc
	access         portssvc.AccessPolicySvc
}

func newSettingsHandler(accountService portssvc.AccountSvc, access portssvc.AccessPolicySvc) *settingsHandler {
	return &settingsHandler{accountService: accountService, access: access}
}

func registerSettingsRoutes(rg *gin.RouterGroup, access portssvc.AccessPolicySvc, accountService portssvc.AccountSvc) {
	h := newSettingsHandler(accountService, access)

	rg.GET("/subscription", h.getSubscription)
	rg.PATCH("/settings", h.updateSettings)
}

// getSubscription godoc
// @Summary Current tier, quota usage and granted features
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SubscriptionResponse
// @Security BearerAuth
// @Router /subscription [get]
func (h *settingsHandler) getSubscription(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	info := h.access.SubscriptionInfo(c.Request.Context(), accountID)
	c.JSON(http.StatusOK, dto.SubscriptionResponse{
		SubscriptionInfo: info,
		StatusText:       subscriptionStatusText(info.TierName, info.TokensUsed, info.TokensLimit),
	})
}

// updateSettings godoc
// @Summary Edit account preferences
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.SettingsRequest true "Fields to change"
// @Success 204 "Updated"
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /settings [patch]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.accountService.UpdateSettings(c.Request.Context(), accountID, req); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func subscriptionStatusText(tierName string, used, limit int64) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Obuna: %s\n", tierName))
	b.WriteString(fmt.Sprintf("\n🔋 Token: %s / %s", formatTokens(used), formatTokens(limit)))
	b.WriteString(fmt.Sprintf("\n%s", utils.ProgressBar(decimal.NewFromInt(used), decimal.NewFromInt(limit), usageBarLength)))
	return b.String()
}

func formatTokens(n int64) string {
	return utils.GroupDigits(decimal.NewFromInt(n))
}
