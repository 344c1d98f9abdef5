package notification

import (
	"fmt"
	"strings"

	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// Message rendering lives here at the boundary: the aggregator hands over
// plain structured data and this layer turns it into chat text.

// RenderDailyReport formats a daily report for the hotel's chat channel.
func RenderDailyReport(hotelName string, report *models.DailyReport) string {
	status, emoji := utils.OccupancyStatus(report.OccupancyPercentage)

	var b strings.Builder
	fmt.Fprintf(&b, "🏨 *%s — Daily Report*\n", hotelName)
	fmt.Fprintf(&b, "📅 %s\n\n", utils.FormatDate(report.ReportDate))

	fmt.Fprintf(&b, "%s Occupancy: *%s* (%s)\n", emoji,
		utils.FormatPercentage(report.OccupancyPercentage), status)
	fmt.Fprintf(&b, "🛏 Rooms: %d occupied / %d total (%d available)\n",
		report.OccupiedRooms, report.TotalRooms, report.AvailableRooms)
	if report.CheckIns > 0 || report.CheckOuts > 0 {
		fmt.Fprintf(&b, "🔑 Check-ins: %d | Check-outs: %d\n", report.CheckIns, report.CheckOuts)
	}

	fmt.Fprintf(&b, "\n💰 Revenue: *%s*\n", utils.FormatCurrency(report.TotalRevenue))
	fmt.Fprintf(&b, "💵 Advance collected: %s\n", utils.FormatCurrency(report.AdvanceCollected))
	fmt.Fprintf(&b, "💳 Balance pending: %s\n", utils.FormatCurrency(report.BalancePending))
	fmt.Fprintf(&b, "🧾 Expenses: %s\n", utils.FormatCurrency(report.TotalExpenses))
	fmt.Fprintf(&b, "📈 Net profit: *%s*\n", utils.FormatCurrency(report.NetProfit))

	if report.OccupiedRooms > 0 {
		fmt.Fprintf(&b, "🏷 Average rate: %s\n", utils.FormatCurrency(report.AverageRoomRate))
	}
	if report.FeedbackCount > 0 {
		fmt.Fprintf(&b, "⭐ Rating: %.1f/5 from %d reviews\n",
			report.AverageRating, report.FeedbackCount)
	}

	return b.String()
}

// RenderPeriodSummary formats a weekly or monthly summary.
func RenderPeriodSummary(title string, summary *models.PeriodSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 *%s*\n", title)
	fmt.Fprintf(&b, "📅 %s — %s (%d days)\n\n",
		utils.FormatDate(summary.StartDate), utils.FormatDate(summary.EndDate), summary.Days)
	fmt.Fprintf(&b, "💰 Revenue: *%s*\n", utils.FormatCurrency(summary.TotalRevenue))
	fmt.Fprintf(&b, "🧾 Expenses: %s\n", utils.FormatCurrency(summary.TotalExpenses))
	fmt.Fprintf(&b, "📈 Net profit: *%s*\n", utils.FormatCurrency(summary.NetProfit))
	fmt.Fprintf(&b, "🛏 Average occupancy: %s\n", utils.FormatPercentage(summary.AverageOccupancy))
	return b.String()
}

// RenderPricingSuggestion formats the pricing rule outcome.
func RenderPricingSuggestion(suggestion models.PricingSuggestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💡 *Pricing Suggestion*\n")
	fmt.Fprintf(&b, "Current occupancy: %s\n\n", utils.FormatPercentage(suggestion.Occupancy))
	fmt.Fprintf(&b, "*%s*\n", suggestion.Strategy)
	fmt.Fprintf(&b, "%s\n", suggestion.Action)
	fmt.Fprintf(&b, "_%s_\n", suggestion.Reason)
	return b.String()
}

// RenderInsights formats the performance observations as a bulleted message.
func RenderInsights(insights []string) string {
	if len(insights) == 0 {
		return "No insights available yet — the register is empty."
	}
	return "🔍 *Performance Insights*\n" + utils.BulletList(insights)
}

// RenderPendingPayments formats the outstanding-balance summary.
func RenderPendingPayments(summary *models.PendingPaymentsSummary) string {
	if summary.Count == 0 {
		return "✅ No pending payments."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💳 *Pending Payments* (%d bookings, %s)\n",
		summary.Count, utils.FormatCurrency(summary.TotalAmount))
	for _, p := range summary.Bookings {
		fmt.Fprintf(&b, "• %s — %s: %s\n", p.BookingID, p.GuestName, utils.FormatCurrency(p.Balance))
	}
	return b.String()
}
