package analytics

import (
	"fmt"

	"github.com/Dramaboy123/dramabot9531/models"
)

// SuggestPricing maps the current occupancy onto a pricing strategy. The rule
// table is evaluated top-down, first match wins, thresholds are exclusive
// upper bounds. Pure function of its inputs.
func (s *DefaultAnalyticsService) SuggestPricing(occupancy float64) models.PricingSuggestion {
	local := s.Settings.LocalRate
	standard := s.Settings.StandardRate

	var suggestion models.PricingSuggestion
	switch {
	case occupancy < 50:
		suggestion = models.PricingSuggestion{
			Strategy: "Aggressive Discount",
			Action:   fmt.Sprintf("Offer ₹%.0f for locals, ₹%.0f for tourists", local-100, standard-300),
			Reason:   "Very low occupancy - need to fill rooms quickly",
		}
	case occupancy < 70:
		suggestion = models.PricingSuggestion{
			Strategy: "Moderate Discount",
			Action:   fmt.Sprintf("Maintain ₹%.0f for locals, offer ₹%.0f for tourists", local, standard-200),
			Reason:   "Below target occupancy - attract more guests",
		}
	case occupancy < 90:
		suggestion = models.PricingSuggestion{
			Strategy: "Standard Pricing",
			Action:   fmt.Sprintf("Maintain current rates: ₹%.0f locals, ₹%.0f tourists", local, standard),
			Reason:   "Good occupancy - maintain current strategy",
		}
	default:
		suggestion = models.PricingSuggestion{
			Strategy: "Premium Pricing",
			Action:   "Consider increasing rates by 10-15% for new bookings",
			Reason:   "High demand - maximize revenue",
		}
	}

	suggestion.Occupancy = occupancy
	return suggestion
}
