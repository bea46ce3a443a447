package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// uzbekMonths are the month names used by the long date format.
var uzbekMonths = [...]string{
	"Yanvar", "Fevral", "Mart", "Aprel", "May", "Iyun",
	"Iyul", "Avgust", "Sentyabr", "Oktyabr", "Noyabr", "Dekabr",
}

// GroupDigits renders d with thousands separators and no decimal places.
func GroupDigits(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().Round(0).String()
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatCurrency renders an amount per currency convention: UZS uses grouped
// whole numbers with a "so'm" suffix, other currencies use a symbol prefix
// and two decimals.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	switch currency {
	case "USD":
		return "$" + groupedFixed(amount, 2)
	case "RUB":
		return "₽" + groupedFixed(amount, 2)
	default:
		return GroupDigits(amount) + " so'm"
	}
}

func groupedFixed(d decimal.Decimal, places int32) string {
	whole := d.Truncate(0)
	frac := d.Sub(whole).Abs().StringFixed(places)
	// StringFixed yields "0.xx"; keep only the fractional part.
	return GroupDigits(whole) + frac[1:]
}

// FormatDate renders a date in the short numeric style (dd.mm.yyyy).
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDateLong renders a date with the month spelled out.
func FormatDateLong(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), uzbekMonths[t.Month()-1], t.Year())
}

// FormatRelativeDate renders a date relative to now: today, tomorrow,
// yesterday, or a day count.
func FormatRelativeDate(t time.Time, now time.Time) string {
	days := daysBetween(now, t)
	switch {
	case days == 0:
		return "Bugun"
	case days == 1:
		return "Ertaga"
	case days == -1:
		return "Kecha"
	case days > 0:
		return fmt.Sprintf("%d kundan keyin", days)
	default:
		return fmt.Sprintf("%d kun oldin", -days)
	}
}

// FormatDeadline renders a goal deadline with an urgency marker: overdue,
// due today, within a week, within a month, or far in the future. A nil
// deadline reads as open-ended.
func FormatDeadline(deadline *time.Time, now time.Time) string {
	if deadline == nil {
		return "⏳ Muddatsiz"
	}
	days := daysBetween(now, *deadline)
	switch {
	case days < 0:
		return fmt.Sprintf("🔴 Muddati o'tgan (%s)", FormatDate(*deadline))
	case days == 0:
		return fmt.Sprintf("🟡 Bugun (%s)", FormatDate(*deadline))
	case days <= 7:
		return fmt.Sprintf("🟠 %d kun (%s)", days, FormatDate(*deadline))
	case days <= 30:
		return fmt.Sprintf("🟢 %d kun (%s)", days, FormatDate(*deadline))
	default:
		return fmt.Sprintf("🟢 %s", FormatDate(*deadline))
	}
}

// FormatPercentage renders current/target completion with a banded marker.
func FormatPercentage(current, target decimal.Decimal) string {
	if !target.IsPositive() {
		return "0%"
	}
	pct, _ := current.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	switch {
	case pct >= 100:
		return fmt.Sprintf("✅ %.0f%%", pct)
	case pct >= 75:
		return fmt.Sprintf("🟢 %.1f%%", pct)
	case pct >= 50:
		return fmt.Sprintf("🟡 %.1f%%", pct)
	case pct >= 25:
		return fmt.Sprintf("🟠 %.1f%%", pct)
	default:
		return fmt.Sprintf("🔴 %.1f%%", pct)
	}
}

// ProgressBar renders a fixed-width bar: floor(min(current/target,1)×length)
// filled blocks, the rest empty. A non-positive target yields an empty bar.
func ProgressBar(current, target decimal.Decimal, length int) string {
	if length <= 0 {
		return ""
	}
	if !target.IsPositive() {
		return strings.Repeat("░", length)
	}
	ratio, _ := current.Div(target).Float64()
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	filled := int(ratio * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// daysBetween counts whole calendar days from a to b, ignoring clock time.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad) / (24 * time.Hour))
}
