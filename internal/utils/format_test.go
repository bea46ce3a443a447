package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "0", GroupDigits(decimal.Zero))
	assert.Equal(t, "950", GroupDigits(decimal.NewFromInt(950)))
	assert.Equal(t, "50,000", GroupDigits(decimal.NewFromInt(50000)))
	assert.Equal(t, "1,890,000", GroupDigits(decimal.NewFromInt(1890000)))
	assert.Equal(t, "-12,500", GroupDigits(decimal.NewFromInt(-12500)))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "50,000 so'm", FormatCurrency(decimal.NewFromInt(50000), "UZS"))
	assert.Equal(t, "$1,234.50", FormatCurrency(decimal.NewFromFloat(1234.5), "USD"))
	assert.Equal(t, "₽990.00", FormatCurrency(decimal.NewFromInt(990), "RUB"))
	// Unknown currencies fall back to the so'm rendering.
	assert.Equal(t, "5,000 so'm", FormatCurrency(decimal.NewFromInt(5000), "XYZ"))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "07.03.2026", FormatDate(d))
	assert.Equal(t, "7 Mart 2026", FormatDateLong(d))
}

func TestFormatRelativeDate(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Bugun", FormatRelativeDate(now, now))
	assert.Equal(t, "Ertaga", FormatRelativeDate(now.AddDate(0, 0, 1), now))
	assert.Equal(t, "Kecha", FormatRelativeDate(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "5 kundan keyin", FormatRelativeDate(now.AddDate(0, 0, 5), now))
	assert.Equal(t, "3 kun oldin", FormatRelativeDate(now.AddDate(0, 0, -3), now))
}

func TestFormatDeadline(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "⏳ Muddatsiz", FormatDeadline(nil, now))

	overdue := now.AddDate(0, 0, -2)
	assert.Equal(t, "🔴 Muddati o'tgan (08.03.2026)", FormatDeadline(&overdue, now))

	today := now
	assert.Equal(t, "🟡 Bugun (10.03.2026)", FormatDeadline(&today, now))

	soon := now.AddDate(0, 0, 3)
	assert.Equal(t, "🟠 3 kun (13.03.2026)", FormatDeadline(&soon, now))

	thisMonth := now.AddDate(0, 0, 20)
	assert.Equal(t, "🟢 20 kun (30.03.2026)", FormatDeadline(&thisMonth, now))

	far := now.AddDate(1, 0, 0)
	assert.Equal(t, "🟢 10.03.2027", FormatDeadline(&far, now))
}

func TestFormatPercentage(t *testing.T) {
	target := decimal.NewFromInt(1000)

	assert.Equal(t, "0%", FormatPercentage(decimal.NewFromInt(10), decimal.Zero))
	assert.Equal(t, "🔴 10.0%", FormatPercentage(decimal.NewFromInt(100), target))
	assert.Equal(t, "🟠 30.0%", FormatPercentage(decimal.NewFromInt(300), target))
	assert.Equal(t, "🟡 55.0%", FormatPercentage(decimal.NewFromInt(550), target))
	assert.Equal(t, "🟢 80.0%", FormatPercentage(decimal.NewFromInt(800), target))
	assert.Equal(t, "✅ 100%", FormatPercentage(decimal.NewFromInt(1000), target))
	// Over-funded goals report above 100.
	assert.Equal(t, "✅ 120%", FormatPercentage(decimal.NewFromInt(1200), target))
}

func TestProgressBar(t *testing.T) {
	target := decimal.NewFromInt(5000000)

	assert.Equal(t, "░░░░░░░░░░", ProgressBar(decimal.Zero, target, 10))
	// 2,000,000 of 5,000,000 fills four of ten blocks.
	assert.Equal(t, "████░░░░░░", ProgressBar(decimal.NewFromInt(2000000), target, 10))
	assert.Equal(t, "██████████", ProgressBar(target, target, 10))
	// Over-funding never overflows the bar.
	assert.Equal(t, "██████████", ProgressBar(decimal.NewFromInt(9000000), target, 10))
	// A goal without a positive target renders empty.
	assert.Equal(t, "░░░░░", ProgressBar(decimal.NewFromInt(100), decimal.Zero, 5))
	assert.Equal(t, "", ProgressBar(decimal.NewFromInt(1), target, 0))
}
