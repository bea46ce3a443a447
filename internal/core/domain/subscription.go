package domain

// Feature names gated by subscription tier.
const (
	FeatureVoiceAnalysis   = "voice_analysis"
	FeatureStatistics      = "statistics"
	FeatureGoals           = "goals"
	FeatureDiary           = "diary"
	FeatureDiaryAIAnalysis = "diary_ai_analysis"
	FeatureWeeklyReport    = "weekly_report"
	FeatureMonthlyReport   = "monthly_report"
	FeatureExcelExport     = "excel_export"
	FeaturePDFExport       = "pdf_export"
)

// KnownFeatures lists every feature name the handlers may gate on. The
// feature table is validated against this list at startup so a typo fails
// config load instead of silently denying access at runtime.
func KnownFeatures() []string {
	return []string{
		FeatureVoiceAnalysis,
		FeatureStatistics,
		FeatureGoals,
		FeatureDiary,
		FeatureDiaryAIAnalysis,
		FeatureWeeklyReport,
		FeatureMonthlyReport,
		FeatureExcelExport,
		FeaturePDFExport,
	}
}

// FeatureSet maps feature name to whether a tier grants it.
type FeatureSet map[string]bool

// SubscriptionInfo is the resolved entitlement snapshot for one account.
type SubscriptionInfo struct {
	Tier            Tier       `json:"tier"`
	TierName        string     `json:"tierName"`
	IsAdmin         bool       `json:"isAdmin"`
	TokensUsed      int64      `json:"tokensUsed"`
	TokensLimit     int64      `json:"tokensLimit"`
	TokensRemaining int64      `json:"tokensRemaining"`
	Features        FeatureSet `json:"features"`
}
