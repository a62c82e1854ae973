package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
)

// expenseService handles the expense ledger.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// Add inserts a new expense for the user. Amount arrives in cents and is
// deliberately not range-checked: zero and negative amounts are valid.
func (s *expenseService) Add(userID uint, amount int64, category, description string, date time.Time) (*models.Expense, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// Get retrieves an expense by ID for a specific user. A record owned by a
// different user is indistinguishable from a missing one.
func (s *expenseService) Get(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// ListForUser retrieves all expenses owned by the user. Order is the
// store's native listing order and must not be relied on.
func (s *expenseService) ListForUser(userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// ListForUserInRange retrieves the user's expenses dated within
// [start, end], inclusive at both bounds.
func (s *expenseService) ListForUserInRange(userID uint, start, end time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// Update overwrites all mutable fields of an expense owned by the user.
func (s *expenseService) Update(userID, expenseID uint, amount int64, category, description string, date time.Time) (*models.Expense, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	expense, err := s.Get(userID, expenseID)
	if err != nil {
		return nil, err
	}

	expense.Amount = amount
	expense.Category = category
	expense.Description = description
	expense.Date = date

	if err := s.db.Save(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// Delete removes an expense owned by the user.
func (s *expenseService) Delete(userID, expenseID uint) error {
	expense, err := s.Get(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
