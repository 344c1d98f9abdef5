package models

import "time"

// DailyReport is a snapshot of the hotel's performance on one calendar date.
// It is recomputed on demand and never cached or mutated after construction.
type DailyReport struct {
	ReportDate          time.Time `json:"report_date"`
	TotalRooms          int       `json:"total_rooms"`
	OccupiedRooms       int       `json:"occupied_rooms"`
	AvailableRooms      int       `json:"available_rooms"` // negative when overbooked
	OccupancyPercentage float64   `json:"occupancy_percentage"`
	CheckIns            int       `json:"check_ins"`
	CheckOuts           int       `json:"check_outs"`
	TotalRevenue        float64   `json:"total_revenue"`
	TotalExpenses       float64   `json:"total_expenses"`
	NetProfit           float64   `json:"net_profit"`
	AdvanceCollected    float64   `json:"advance_collected"`
	BalancePending      float64   `json:"balance_pending"`
	AverageRoomRate     float64   `json:"average_room_rate"`
	FeedbackCount       int       `json:"feedback_count"`
	AverageRating       float64   `json:"average_rating"`
}

// TrendMetric selects which metric a trend tracks.
type TrendMetric string

const (
	TrendOccupancy TrendMetric = "occupancy"
	TrendRevenue   TrendMetric = "revenue"
)

// TrendPoint is one (date, value) sample in a trend window.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// PeriodSummary aggregates performance over a closed date interval.
type PeriodSummary struct {
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	TotalRevenue     float64   `json:"total_revenue"`
	TotalExpenses    float64   `json:"total_expenses"`
	NetProfit        float64   `json:"net_profit"`
	AverageOccupancy float64   `json:"average_occupancy"`
	Days             int       `json:"days"`
}

// PricingSuggestion is the outcome of the occupancy-driven pricing rule table.
type PricingSuggestion struct {
	Strategy  string  `json:"strategy"`
	Action    string  `json:"action"`
	Reason    string  `json:"reason"`
	Occupancy float64 `json:"occupancy"`
}

// OccupancyAlert fires when occupancy drops below the configured threshold.
type OccupancyAlert struct {
	Occupancy      float64 `json:"occupancy"`
	Threshold      float64 `json:"threshold"`
	AvailableRooms int     `json:"available_rooms"`
	Message        string  `json:"message"`
}

// ExpenseAlert fires when a day's expenses exceed the configured threshold.
type ExpenseAlert struct {
	TotalExpenses float64 `json:"total_expenses"`
	Threshold     float64 `json:"threshold"`
	Message       string  `json:"message"`
}

// DistributionTally counts bookings per classification label. Order records
// labels in first-encountered order so callers can break ties
// deterministically.
type DistributionTally struct {
	Counts map[string]int `json:"counts"`
	Order  []string       `json:"order"`
}

// Add increments the count for a label, registering it on first sight.
func (t *DistributionTally) Add(label string) {
	if t.Counts == nil {
		t.Counts = make(map[string]int)
	}
	if _, seen := t.Counts[label]; !seen {
		t.Order = append(t.Order, label)
	}
	t.Counts[label]++
}

// Top returns the label with the highest count. Ties go to the label
// encountered first. ok is false for an empty tally.
func (t *DistributionTally) Top() (label string, count int, ok bool) {
	for _, l := range t.Order {
		if t.Counts[l] > count {
			label, count, ok = l, t.Counts[l], true
		}
	}
	return label, count, ok
}

// PendingPayment identifies one booking with an outstanding balance.
type PendingPayment struct {
	BookingID string  `json:"booking_id"`
	GuestName string  `json:"guest_name"`
	Balance   float64 `json:"balance"`
}

// PendingPaymentsSummary totals the outstanding balances across active
// bookings. Bookings keep the order the store returned them in.
type PendingPaymentsSummary struct {
	Count       int              `json:"count"`
	TotalAmount float64          `json:"total_amount"`
	Bookings    []PendingPayment `json:"bookings"`
}
