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

// ExpenseCreate is the input for AddExpense.
type ExpenseCreate struct {
	AmountUSD    decimal.Decimal
	Category     models.Category
	Note         string
	ExchangeRate decimal.Decimal // USD to home currency rate; defaults to 1 when unset
	Timestamp    time.Time       // defaults to now
}

// AddExpense records an expense.
//
// The home currency amount is frozen at creation with the rate passed
// in; it is never recomputed with a later rate. The user's cached
// exchange rate is refreshed, and alerts and achievements are
// re-evaluated in the same transaction.
func (s *Store) AddExpense(create ExpenseCreate) (models.Expense, error) {
	if !create.AmountUSD.IsPositive() {
		return models.Expense{}, models.ErrInvalidAmount
	}

	rate := create.ExchangeRate
	if !rate.IsPositive() {
		rate = decimal.NewFromInt(1)
	}

	expense := models.Expense{
		AmountUSD:          create.AmountUSD,
		AmountHomeCurrency: create.AmountUSD.Mul(rate),
		ExchangeRateUsed:   rate,
		Category:           create.Category,
		Note:               create.Note,
		Timestamp:          create.Timestamp,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&expense).Error
		if err != nil {
			return err
		}

		err = cacheExchangeRate(tx, rate)
		if err != nil {
			return err
		}

		err = generateAlerts(tx, time.Now())
		if err != nil {
			return err
		}

		return checkAchievements(tx, time.Now())
	})
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// UpdateExpenseNote replaces the note of an expense. The note is the
// only mutable field of an expense. Unknown IDs are a no-op.
func (s *Store) UpdateExpenseNote(id uuid.UUID, note string) error {
	var expense models.Expense
	err := s.db.First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return s.db.Model(&expense).Update("note", note).Error
}

// DeleteExpense soft-deletes an expense so that historical reporting
// and earned achievements stay stable. Unknown IDs are a no-op.
func (s *Store) DeleteExpense(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var expense models.Expense
		err := tx.First(&expense, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		err = tx.Delete(&expense).Error
		if err != nil {
			return err
		}

		err = generateAlerts(tx, time.Now())
		if err != nil {
			return err
		}

		return checkAchievements(tx, time.Now())
	})
}

// Expense returns a single expense by ID.
func (s *Store) Expense(id uuid.UUID) (models.Expense, error) {
	var expense models.Expense
	err := s.db.First(&expense, "id = ?", id).Error
	return expense, err
}

// Expenses returns all non-deleted expenses, newest first.
func (s *Store) Expenses() ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.Order("timestamp DESC").Find(&expenses).Error
	return expenses, err
}

// MonthExpenses returns all non-deleted expenses of a month, newest first.
func (s *Store) MonthExpenses(month types.Month) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.
		Where("month >= date(?) AND month < date(?)", month, month.AddDate(0, 1)).
		Order("timestamp DESC").
		Find(&expenses).Error
	return expenses, err
}

// CurrentMonthExpenses returns all non-deleted expenses of the month of now.
func (s *Store) CurrentMonthExpenses(now time.Time) ([]models.Expense, error) {
	return s.MonthExpenses(types.MonthOf(now))
}
