package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const accountIDCtxKey = contextKey("accountID")

// WithAccountID returns a context carrying the authenticated account id.
func WithAccountID(ctx context.Context, accountID int64) context.Context {
	return context.WithValue(ctx, accountIDCtxKey, accountID)
}

// GetAccountIDFromContext retrieves the authenticated account id set by the
// auth middleware.
func GetAccountIDFromContext(c *gin.Context) (int64, bool) {
	accountID, ok := c.Request.Context().Value(accountIDCtxKey).(int64)
	return accountID, ok
}
