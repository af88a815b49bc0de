package store

import (
	"errors"
	"time"

	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecurringExpenseCreate is the input for AddRecurringExpense.
type RecurringExpenseCreate struct {
	Name      string
	AmountUSD decimal.Decimal
	DueDay    int
	Category  models.Category
	Frequency models.Frequency
}

// AddRecurringExpense records a recurring bill.
func (s *Store) AddRecurringExpense(create RecurringExpenseCreate) (models.RecurringExpense, error) {
	if !create.AmountUSD.IsPositive() {
		return models.RecurringExpense{}, models.ErrInvalidAmount
	}

	if create.DueDay < 1 || create.DueDay > 31 {
		return models.RecurringExpense{}, models.ErrInvalidDueDay
	}

	recurring := models.RecurringExpense{
		Name:      create.Name,
		AmountUSD: create.AmountUSD,
		DueDay:    create.DueDay,
		Category:  create.Category,
		Frequency: create.Frequency,
		Active:    true,
	}

	err := s.db.Create(&recurring).Error
	if err != nil {
		return models.RecurringExpense{}, err
	}

	return recurring, nil
}

// DeleteRecurringExpense deactivates a recurring expense. The record is
// kept so it can be reactivated and audited. Unknown IDs are a no-op.
func (s *Store) DeleteRecurringExpense(id uuid.UUID) error {
	var recurring models.RecurringExpense
	err := s.db.First(&recurring, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return s.db.Model(&recurring).Update("active", false).Error
}

// RecurringExpense returns a single recurring expense by ID.
func (s *Store) RecurringExpense(id uuid.UUID) (models.RecurringExpense, error) {
	var recurring models.RecurringExpense
	err := s.db.First(&recurring, "id = ?", id).Error
	return recurring, err
}

// RecurringExpenses returns all active recurring expenses, ordered by
// due day.
func (s *Store) RecurringExpenses() ([]models.RecurringExpense, error) {
	var recurring []models.RecurringExpense
	err := s.db.
		Where(&models.RecurringExpense{Active: true}).
		Order("due_day ASC").
		Find(&recurring).Error
	return recurring, err
}

// UpcomingRecurringExpenses returns the active recurring expenses that
// are still due this month and have not been notified for it.
func (s *Store) UpcomingRecurringExpenses(now time.Time) ([]models.RecurringExpense, error) {
	all, err := s.RecurringExpenses()
	if err != nil {
		return nil, err
	}

	month := types.MonthOf(now)

	upcoming := make([]models.RecurringExpense, 0, len(all))
	for _, r := range all {
		if r.NotifiedMonths.Contains(month) {
			continue
		}

		if r.DueDay < now.Day() {
			continue
		}

		upcoming = append(upcoming, r)
	}

	return upcoming, nil
}
