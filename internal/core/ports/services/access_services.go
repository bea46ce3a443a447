package services

import (
	"context"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
)

// AccessPolicySvc evaluates tier, feature and quota entitlements.
// All operations are pure reads; storage failures on the quota path read as
// zero usage (fail open), which is a recorded product decision.
type AccessPolicySvc interface {
	// IsAdmin reports allow-list membership.
	IsAdmin(accountID int64) bool

	// ResolveTier returns premium for allow-listed accounts regardless of
	// the stored tier, the stored tier otherwise, and standard when no
	// account row exists.
	ResolveTier(ctx context.Context, accountID int64) domain.Tier

	// HasFeature reports whether the account's tier grants the feature.
	// Unknown features and unknown tiers read as false.
	HasFeature(ctx context.Context, accountID int64, feature string) bool

	// CheckQuota returns whether the account may spend more tokens this
	// calendar month, along with the used amount and the tier limit. When
	// enforcement is globally off it always allows.
	CheckQuota(ctx context.Context, accountID int64) (allowed bool, used, limit int64)

	// SubscriptionInfo assembles the full entitlement snapshot.
	SubscriptionInfo(ctx context.Context, accountID int64) domain.SubscriptionInfo
}
