package utils

import (
	"fmt"
	"strings"
	"time"
)

// FormatCurrency formats an amount as rupees with thousands separators,
// e.g. 1500.5 -> "₹1,500.50".
func FormatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)

	intPart := parts[0]
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := "₹" + b.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercentage formats a value as a percentage with one decimal place.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// OccupancyStatus maps an occupancy percentage to a status label and emoji.
func OccupancyStatus(occupancy float64) (string, string) {
	switch {
	case occupancy >= 90:
		return "Excellent", "🟢"
	case occupancy >= 80:
		return "Good", "🟢"
	case occupancy >= 60:
		return "Moderate", "🟡"
	case occupancy >= 40:
		return "Low", "🟠"
	default:
		return "Critical", "🔴"
	}
}

// PaymentStatusEmoji returns the emoji for a payment status label.
func PaymentStatusEmoji(status string) string {
	emojis := map[string]string{
		"PAID":     "✅",
		"PARTIAL":  "⚠️",
		"PENDING":  "❌",
		"REFUNDED": "↩️",
	}
	if e, ok := emojis[status]; ok {
		return e
	}
	return "❓"
}

// RoomStatusEmoji returns the emoji for a room status label.
func RoomStatusEmoji(status string) string {
	emojis := map[string]string{
		"AVAILABLE":   "✅",
		"OCCUPIED":    "🔴",
		"CLEANING":    "🧹",
		"MAINTENANCE": "🔧",
		"RESERVED":    "📅",
	}
	if e, ok := emojis[status]; ok {
		return e
	}
	return "❓"
}

// BulletList joins items into a bulleted multi-line string.
func BulletList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(item)
	}
	return b.String()
}

// Truncate shortens text to at most max characters, appending "..." when cut.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	if max <= 3 {
		return text[:max]
	}
	return text[:max-3] + "..."
}

// Greeting returns a time-of-day appropriate greeting.
func Greeting() string {
	hour := time.Now().Hour()
	switch {
	case hour >= 5 && hour < 12:
		return "Good Morning"
	case hour >= 12 && hour < 17:
		return "Good Afternoon"
	case hour >= 17 && hour < 21:
		return "Good Evening"
	default:
		return "Good Night"
	}
}
