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

// IncomeCreate is the input for AddIncome.
type IncomeCreate struct {
	AmountUSD    decimal.Decimal
	Source       models.Source
	Note         string
	ExchangeRate decimal.Decimal // USD to home currency rate; defaults to 1 when unset
	Timestamp    time.Time       // defaults to now
}

// AddIncome records an income with the same frozen-rate semantics as
// AddExpense. Alerts are re-evaluated because the monthly net total
// changes; achievements only follow expenses.
func (s *Store) AddIncome(create IncomeCreate) (models.Income, error) {
	if !create.AmountUSD.IsPositive() {
		return models.Income{}, models.ErrInvalidAmount
	}

	rate := create.ExchangeRate
	if !rate.IsPositive() {
		rate = decimal.NewFromInt(1)
	}

	income := models.Income{
		AmountUSD:          create.AmountUSD,
		AmountHomeCurrency: create.AmountUSD.Mul(rate),
		ExchangeRateUsed:   rate,
		Source:             create.Source,
		Note:               create.Note,
		Timestamp:          create.Timestamp,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&income).Error
		if err != nil {
			return err
		}

		err = cacheExchangeRate(tx, rate)
		if err != nil {
			return err
		}

		return generateAlerts(tx, time.Now())
	})
	if err != nil {
		return models.Income{}, err
	}

	return income, nil
}

// DeleteIncome soft-deletes an income. Unknown IDs are a no-op.
func (s *Store) DeleteIncome(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var income models.Income
		err := tx.First(&income, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		err = tx.Delete(&income).Error
		if err != nil {
			return err
		}

		return generateAlerts(tx, time.Now())
	})
}

// Income returns a single income by ID.
func (s *Store) Income(id uuid.UUID) (models.Income, error) {
	var income models.Income
	err := s.db.First(&income, "id = ?", id).Error
	return income, err
}

// Incomes returns all non-deleted incomes, newest first.
func (s *Store) Incomes() ([]models.Income, error) {
	var incomes []models.Income
	err := s.db.Order("timestamp DESC").Find(&incomes).Error
	return incomes, err
}

// MonthIncomes returns all non-deleted incomes of a month, newest first.
func (s *Store) MonthIncomes(month types.Month) ([]models.Income, error) {
	var incomes []models.Income
	err := s.db.
		Where("month >= date(?) AND month < date(?)", month, month.AddDate(0, 1)).
		Order("timestamp DESC").
		Find(&incomes).Error
	return incomes, err
}

// CurrentMonthIncomes returns all non-deleted incomes of the month of now.
func (s *Store) CurrentMonthIncomes(now time.Time) ([]models.Income, error) {
	return s.MonthIncomes(types.MonthOf(now))
}
