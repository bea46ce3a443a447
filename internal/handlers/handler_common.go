package handlers

import (
	"errors"
	"net/http"

	"github.com/finflowhq/finflow_bot/internal/apperrors"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountFromContext pulls the authenticated account id or aborts with 401.
func accountFromContext(c *gin.Context) (int64, bool) {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return accountID, true
}

// handleServiceError maps service errors onto HTTP statuses.
func handleServiceError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrQuotaExceeded):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Oylik limit tugadi. Keyingi oyda qayta urinib ko'ring."})
	default:
		logger.Error("Unhandled service error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// requireFeature aborts with 403 when the account's tier does not grant the
// feature. Used as a per-group middleware.
func requireFeature(access portssvc.AccessPolicySvc, feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, ok := accountFromContext(c)
		if !ok {
			return
		}
		if !access.HasFeature(c.Request.Context(), accountID, feature) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Bu funksiya sizning obunangizda mavjud emas. Premium obunaga o'ting.",
			})
			return
		}
		c.Next()
	}
}
