package expenseRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Dramaboy123/dramabot9531/database"
	"github.com/Dramaboy123/dramabot9531/models"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// Expenses worksheet column order.
const (
	colID = iota
	colDate
	colCategory
	colDescription
	colAmount
	colPaidTo
	colPaymentMethod
	colReceiptNumber
	colNotes
	colCreatedAt
)

// Repository manages expense records in the register spreadsheet.
type Repository interface {
	Add(ctx context.Context, expense models.Expense) error
	GetAll(ctx context.Context) ([]models.Expense, error)
	GetByDate(ctx context.Context, date time.Time) ([]models.Expense, error)
}

type sheetsExpenseRepo struct{}

// NewSheetsExpenseRepo returns a Repository backed by the Expenses worksheet.
func NewSheetsExpenseRepo() Repository {
	return &sheetsExpenseRepo{}
}

// Add appends a new expense row.
func (r *sheetsExpenseRepo) Add(ctx context.Context, expense models.Expense) error {
	row := []interface{}{
		expense.ID,
		expense.Date.Format(utils.DateLayout),
		expense.Category,
		expense.Description,
		expense.Amount,
		expense.PaidTo,
		expense.PaymentMethod,
		expense.ReceiptNumber,
		expense.Notes,
		expense.CreatedAt.Format(time.RFC3339),
	}
	if err := database.AppendRow(ctx, database.ExpensesSheet, row); err != nil {
		return utils.NewSourceError("expenses.add", err)
	}
	return nil
}

// GetAll returns every recorded expense, in sheet order.
func (r *sheetsExpenseRepo) GetAll(ctx context.Context) ([]models.Expense, error) {
	rows, err := database.ReadRows(ctx, database.ExpensesSheet)
	if err != nil {
		return nil, utils.NewSourceError("expenses.all", err)
	}

	expenses := make([]models.Expense, 0, len(rows))
	for _, row := range rows {
		e, err := rowToExpense(row)
		if err != nil {
			return nil, utils.NewSourceError("expenses.all", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// GetByDate returns the expenses recorded for one calendar date.
func (r *sheetsExpenseRepo) GetByDate(ctx context.Context, date time.Time) ([]models.Expense, error) {
	expenses, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var matched []models.Expense
	for _, e := range expenses {
		if utils.SameDate(e.Date, date) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func rowToExpense(row []interface{}) (models.Expense, error) {
	id := database.CellString(row, colID)
	if id == "" {
		return models.Expense{}, fmt.Errorf("row has no expense ID")
	}

	date, err := utils.ParseDate(database.CellString(row, colDate))
	if err != nil {
		return models.Expense{}, fmt.Errorf("expense %s: bad date: %w", id, err)
	}
	amount, err := database.CellFloat(row, colAmount)
	if err != nil {
		return models.Expense{}, fmt.Errorf("expense %s: %w", id, err)
	}

	createdAt, _ := time.Parse(time.RFC3339, database.CellString(row, colCreatedAt))

	return models.Expense{
		ID:            id,
		Date:          date,
		Category:      database.CellString(row, colCategory),
		Description:   database.CellString(row, colDescription),
		Amount:        amount,
		PaidTo:        database.CellString(row, colPaidTo),
		PaymentMethod: database.CellString(row, colPaymentMethod),
		ReceiptNumber: database.CellString(row, colReceiptNumber),
		Notes:         database.CellString(row, colNotes),
		CreatedAt:     createdAt,
	}, nil
}
