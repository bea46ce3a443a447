package config

import (
	"testing"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-gateway-secret")
	t.Setenv("GROQ_API_KEY_1", "gsk_test")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/finflow_test")
}

func TestLoadConfig_RequiresBotToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOT_TOKEN", "")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoadConfig_RequiresSomeAIProvider(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GROQ_API_KEY_1", "")
	t.Setenv("GROQ_API_KEY_2", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := LoadConfig()

	require.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.EnableLimits)
	assert.Equal(t, int64(1890000), cfg.TierLimits[domain.TierStandard])
	assert.Equal(t, int64(2400000), cfg.TierLimits[domain.TierPremium])
	assert.Equal(t, "30-M", cfg.RateLimit)
	assert.Empty(t, cfg.AdminAccountIDs)
}

func TestLoadConfig_ParsesAdminIDs(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_ACCOUNT_IDS", "111, 222,333")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.True(t, cfg.AdminAccountIDs[111])
	assert.True(t, cfg.AdminAccountIDs[222])
	assert.True(t, cfg.AdminAccountIDs[333])
	assert.False(t, cfg.AdminAccountIDs[444])
}

func TestLoadConfig_RejectsGarbageAdminIDs(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_ACCOUNT_IDS", "111,abc")

	_, err := LoadConfig()

	require.Error(t, err)
}

func TestFeatureTable_StandardVsPremium(t *testing.T) {
	table := defaultFeatureTable()

	assert.True(t, table[domain.TierStandard][domain.FeatureGoals])
	assert.False(t, table[domain.TierStandard][domain.FeatureDiaryAIAnalysis])
	assert.False(t, table[domain.TierStandard][domain.FeatureMonthlyReport])
	assert.True(t, table[domain.TierPremium][domain.FeatureDiaryAIAnalysis])
	assert.True(t, table[domain.TierPremium][domain.FeatureMonthlyReport])
}

func TestValidateFeatureTable_RejectsUnknownFeature(t *testing.T) {
	table := defaultFeatureTable()
	require.NoError(t, validateFeatureTable(table))

	table[domain.TierPremium]["time_travel"] = true
	err := validateFeatureTable(table)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "time_travel")
}
