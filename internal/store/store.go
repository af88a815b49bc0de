// Package store implements the record store: the single source of truth
// for all financial records and the mutations on them.
//
// Every mutation runs in one database transaction. Mutations that change
// spending re-evaluate alerts and achievements inside the same
// transaction, so reads never observe a state where records and derived
// alerts/achievements disagree.
package store

import (
	"errors"
	"sort"
	"time"

	"github.com/finance-buddy/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store owns the six persisted collections. All access goes through it;
// it is handed to collaborators explicitly instead of living in a
// package-level variable.
type Store struct {
	db *gorm.DB
}

// New returns a Store using the given database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying database for health checks.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// User returns the singleton user profile.
// It returns models.ErrNoUser before onboarding.
func (s *Store) User() (models.User, error) {
	var user models.User
	err := s.db.First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, models.ErrNoUser
	}

	return user, err
}

// InitializeUser creates the user profile during onboarding.
//
// It is rejected with models.ErrAlreadyInitialized when a profile
// already exists: overwriting would silently orphan all records, the
// explicit way back to onboarding is ResetAllData.
func (s *Store) InitializeUser(homeCurrency string, monthlyBudget decimal.Decimal) (models.User, error) {
	if monthlyBudget.IsNegative() {
		return models.User{}, models.ErrInvalidAmount
	}

	user := models.User{
		HomeCurrency:             homeCurrency,
		MonthlyBudget:            monthlyBudget,
		OnboardingCompleted:      false,
		PreferredDisplayCurrency: models.DisplayHome,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.User{}).Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return models.ErrAlreadyInitialized
		}

		return tx.Create(&user).Error
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UserUpdate is a partial update of the user profile. Nil fields are
// left unchanged.
type UserUpdate struct {
	HomeCurrency             *string
	MonthlyBudget            *decimal.Decimal
	OnboardingCompleted      *bool
	PreferredDisplayCurrency *models.DisplayCurrency
}

// UpdateUser applies a partial update to the user profile.
func (s *Store) UpdateUser(update UserUpdate) (models.User, error) {
	user, err := s.User()
	if err != nil {
		return models.User{}, err
	}

	if update.MonthlyBudget != nil && update.MonthlyBudget.IsNegative() {
		return models.User{}, models.ErrInvalidAmount
	}

	if update.HomeCurrency != nil {
		user.HomeCurrency = *update.HomeCurrency
	}
	if update.MonthlyBudget != nil {
		user.MonthlyBudget = *update.MonthlyBudget
	}
	if update.OnboardingCompleted != nil {
		user.OnboardingCompleted = *update.OnboardingCompleted
	}
	if update.PreferredDisplayCurrency != nil {
		user.PreferredDisplayCurrency = *update.PreferredDisplayCurrency
	}

	err = s.db.Save(&user).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ToggleDisplayCurrency flips the preferred display currency between
// USD and the home currency. It is a no-op before onboarding.
func (s *Store) ToggleDisplayCurrency() (models.User, error) {
	user, err := s.User()
	if errors.Is(err, models.ErrNoUser) {
		return models.User{}, nil
	}
	if err != nil {
		return models.User{}, err
	}

	user.PreferredDisplayCurrency = user.PreferredDisplayCurrency.Toggle()

	err = s.db.Save(&user).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// DismissAlert marks the alert as dismissed. Dismissed alerts are kept
// as an audit trail but excluded from ActiveAlerts. Unknown IDs are a
// no-op.
func (s *Store) DismissAlert(id uuid.UUID) error {
	var alert models.Alert
	err := s.db.First(&alert, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if alert.Dismissed() {
		return nil
	}

	now := time.Now().In(time.UTC)
	alert.DismissedAt = &now
	return s.db.Save(&alert).Error
}

// Alerts returns all alerts that have not been replaced, including
// dismissed ones.
func (s *Store) Alerts() ([]models.Alert, error) {
	var alerts []models.Alert
	err := s.db.Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

// ActiveAlerts returns all non-dismissed alerts, most severe first.
func (s *Store) ActiveAlerts() ([]models.Alert, error) {
	var alerts []models.Alert
	err := s.db.
		Where("dismissed_at IS NULL").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}

	// critical < warning < info
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})

	return alerts, nil
}

// ResetAllData permanently deletes all resources, returning the store
// to its pre-onboarding state.
func (s *Store) ResetAllData() error {
	resources := []any{
		models.Achievement{},
		models.Alert{},
		models.RecurringExpense{},
		models.Income{},
		models.Expense{},
		models.User{},
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range resources {
			err := tx.Unscoped().Where("true").Delete(&model).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// cacheExchangeRate updates the user's last known exchange rate.
// Records can be added before onboarding in theory; no user is fine.
func cacheExchangeRate(tx *gorm.DB, rate decimal.Decimal) error {
	var user models.User
	err := tx.First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	user.LastKnownExchangeRate = decimal.NewNullDecimal(rate)
	return tx.Save(&user).Error
}
