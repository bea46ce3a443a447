package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// BotToken is the shared secret with the chat transport gateway. It is
	// mandatory: the gateway signs per-user JWTs with it.
	BotToken string

	// Provider credentials. Any of them may be absent; startup only fails
	// when all three are.
	GroqAPIKey1  string
	GroqAPIKey2  string
	GeminiAPIKey string

	GroqModel        string
	GroqWhisperModel string
	GeminiModel      string

	// Quota enforcement. When EnableLimits is false every quota check
	// passes regardless of usage history.
	EnableLimits bool
	TierLimits   map[domain.Tier]int64

	// AdminAccountIDs is the static allow-list of privileged accounts.
	// Members always resolve to the premium tier.
	AdminAccountIDs map[int64]bool

	// Features maps tier to its granted feature set. Validated at load
	// time against domain.KnownFeatures.
	Features map[domain.Tier]domain.FeatureSet

	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BOT_TOKEN", "")
	viper.SetDefault("GROQ_API_KEY_1", "")
	viper.SetDefault("GROQ_API_KEY_2", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	viper.SetDefault("GROQ_WHISPER_MODEL", "whisper-large-v3")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash-exp")
	viper.SetDefault("ENABLE_LIMITS", false)
	viper.SetDefault("STANDARD_LIMIT", int64(1890000))
	viper.SetDefault("PREMIUM_LIMIT", int64(2400000))
	viper.SetDefault("ADMIN_ACCOUNT_IDS", "")
	viper.SetDefault("RATE_LIMIT", "30-M")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		BotToken:         viper.GetString("BOT_TOKEN"),
		GroqAPIKey1:      viper.GetString("GROQ_API_KEY_1"),
		GroqAPIKey2:      viper.GetString("GROQ_API_KEY_2"),
		GeminiAPIKey:     viper.GetString("GEMINI_API_KEY"),
		GroqModel:        viper.GetString("GROQ_MODEL"),
		GroqWhisperModel: viper.GetString("GROQ_WHISPER_MODEL"),
		GeminiModel:      viper.GetString("GEMINI_MODEL"),
		EnableLimits:     viper.GetBool("ENABLE_LIMITS"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}
	if cfg.GroqAPIKey1 == "" && cfg.GroqAPIKey2 == "" && cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("no AI provider credentials configured: set at least one of GROQ_API_KEY_1, GROQ_API_KEY_2, GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.TierLimits = map[domain.Tier]int64{
		domain.TierStandard: viper.GetInt64("STANDARD_LIMIT"),
		domain.TierPremium:  viper.GetInt64("PREMIUM_LIMIT"),
	}

	admins, err := parseAdminIDs(viper.GetString("ADMIN_ACCOUNT_IDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_ACCOUNT_IDS: %w", err)
	}
	cfg.AdminAccountIDs = admins

	cfg.Features = defaultFeatureTable()
	if err := validateFeatureTable(cfg.Features); err != nil {
		return nil, fmt.Errorf("invalid feature table: %w", err)
	}

	return cfg, nil
}

// defaultFeatureTable is the static tier entitlement matrix. Standard covers
// everything except the premium-only diary AI reflection and monthly report.
func defaultFeatureTable() map[domain.Tier]domain.FeatureSet {
	return map[domain.Tier]domain.FeatureSet{
		domain.TierStandard: {
			domain.FeatureVoiceAnalysis: true,
			domain.FeatureStatistics:    true,
			domain.FeatureGoals:         true,
			domain.FeatureDiary:         true,
			domain.FeatureWeeklyReport:  true,
			domain.FeatureMonthlyReport: false,
			domain.FeatureExcelExport:   true,
			domain.FeaturePDFExport:     true,
		},
		domain.TierPremium: {
			domain.FeatureVoiceAnalysis:   true,
			domain.FeatureStatistics:      true,
			domain.FeatureGoals:           true,
			domain.FeatureDiary:           true,
			domain.FeatureDiaryAIAnalysis: true,
			domain.FeatureWeeklyReport:    true,
			domain.FeatureMonthlyReport:   true,
			domain.FeatureExcelExport:     true,
			domain.FeaturePDFExport:       true,
		},
	}
}

// validateFeatureTable rejects feature names nothing in the codebase gates
// on, so a typo in the table fails startup instead of silently denying the
// real feature at runtime.
func validateFeatureTable(table map[domain.Tier]domain.FeatureSet) error {
	known := map[string]bool{}
	for _, f := range domain.KnownFeatures() {
		known[f] = true
	}
	for tier, features := range table {
		for name := range features {
			if !known[name] {
				return fmt.Errorf("tier %q grants unknown feature %q", tier, name)
			}
		}
	}
	return nil
}

func parseAdminIDs(raw string) (map[int64]bool, error) {
	ids := map[int64]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an account id", part)
		}
		ids[id] = true
	}
	return ids, nil
}
