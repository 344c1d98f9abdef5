package models

import "time"

// Expense represents a single operational expense.
type Expense struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Category      string    `json:"category"` // Utilities, Supplies, Maintenance, Staff, Food, Other
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	PaidTo        string    `json:"paid_to"`
	PaymentMethod string    `json:"payment_method"` // Cash, UPI, Bank Transfer
	ReceiptNumber string    `json:"receipt_number,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
