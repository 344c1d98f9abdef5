package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// RecordExpense validates and appends an expense entry to the register.
func (s *DefaultBookingService) RecordExpense(ctx context.Context, input RecordExpenseInput) (*models.Expense, error) {
	if input.Amount < 0 {
		return nil, fmt.Errorf("expense amount must not be negative")
	}
	if input.Category == "" {
		return nil, fmt.Errorf("expense category is required")
	}

	date := utils.Midnight(input.Date)
	if input.Date.IsZero() {
		date = utils.Today()
	}

	expense := models.Expense{
		ID:            utils.GenerateExpenseID(),
		Date:          date,
		Category:      input.Category,
		Description:   input.Description,
		Amount:        input.Amount,
		PaidTo:        input.PaidTo,
		PaymentMethod: input.PaymentMethod,
		ReceiptNumber: input.ReceiptNumber,
		Notes:         input.Notes,
		CreatedAt:     time.Now(),
	}

	if err := s.Expenses.Add(ctx, expense); err != nil {
		return nil, fmt.Errorf("recording expense: %w", err)
	}

	utils.GetLogger().Info("expense recorded",
		zap.String("expense_id", expense.ID), zap.Float64("amount", expense.Amount))
	return &expense, nil
}

// RecordFeedback validates and appends a guest review to the register.
func (s *DefaultBookingService) RecordFeedback(ctx context.Context, input RecordFeedbackInput) (*models.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", input.Rating)
	}

	date := utils.Midnight(input.Date)
	if input.Date.IsZero() {
		date = utils.Today()
	}

	feedback := models.Feedback{
		ID:        utils.GenerateFeedbackID(),
		BookingID: input.BookingID,
		GuestName: input.GuestName,
		Rating:    input.Rating,
		Review:    input.Review,
		Source:    input.Source,
		Date:      date,
		Public:    input.Public,
	}

	if err := s.Feedback.Add(ctx, feedback); err != nil {
		return nil, fmt.Errorf("recording feedback: %w", err)
	}

	utils.GetLogger().Info("feedback recorded",
		zap.String("feedback_id", feedback.ID), zap.Int("rating", feedback.Rating))
	return &feedback, nil
}
