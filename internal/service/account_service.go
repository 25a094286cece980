package service

import (
	"accounting-ledger/internal/models"
	"accounting-ledger/internal/utils"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// AccountService owns the tenant's chart of accounts.
type AccountService struct {
	txm       TxRunner
	accounts  AccountStore
	sequences SequenceStore
	log       *logrus.Logger
}

func NewAccountService(txm TxRunner, accounts AccountStore, sequences SequenceStore) *AccountService {
	return &AccountService{
		txm:       txm,
		accounts:  accounts,
		sequences: sequences,
		log:       utils.GetLogger(),
	}
}

func (s *AccountService) CreateAccount(tenantID string, req models.CreateAccountRequest) (*models.Account, error) {
	if req.AccountNumber == "" || req.Name == "" || req.AccountType == "" {
		return nil, fmt.Errorf("account number, name and type are required")
	}

	account := &models.Account{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		AccountNumber:   req.AccountNumber,
		Name:            req.Name,
		Description:     req.Description,
		AccountType:     req.AccountType,
		AccountClass:    req.AccountClass,
		ParentAccountID: req.ParentAccountID,
		TaxRelevant:     req.TaxRelevant,
		TaxCode:         req.TaxCode,
		IsSystemAccount: false,
		IsActive:        true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	err := s.txm.WithinTx(func(tx *sqlx.Tx) error {
		_, err := s.accounts.FindByNumber(tx, tenantID, req.AccountNumber)
		if err == nil {
			return models.NewConflictError(models.RuleDuplicateAccountNumber,
				"account number %s already exists", req.AccountNumber)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check account number: %w", err)
		}

		return s.accounts.Create(tx, account)
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// SeedStandardAccounts loads the standard chart template for a fresh tenant.
// Existing account numbers are skipped, so re-running is safe. The tenant's
// sequence counters are initialized in the same transaction.
func (s *AccountService) SeedStandardAccounts(tenantID, chartType string) (*models.SeedResult, error) {
	if strings.ToLower(chartType) != ChartTypeSKR03 {
		return nil, models.NewConflictError(models.RuleUnsupportedChartType,
			"chart type %s is not supported", chartType)
	}

	result := &models.SeedResult{}

	err := s.txm.WithinTx(func(tx *sqlx.Tx) error {
		numbers, err := s.accounts.SelectNumbers(tx, tenantID)
		if err != nil {
			return fmt.Errorf("failed to load existing account numbers: %w", err)
		}
		existing := make(map[string]bool, len(numbers))
		for _, n := range numbers {
			existing[n] = true
		}

		for _, seed := range standardChartSKR03 {
			if existing[seed.Number] {
				result.Skipped++
				continue
			}

			account := &models.Account{
				ID:              uuid.NewString(),
				TenantID:        tenantID,
				AccountNumber:   seed.Number,
				Name:            seed.Name,
				AccountType:     seed.AccountType,
				AccountClass:    seed.Class,
				TaxRelevant:     seed.TaxRelevant,
				TaxCode:         seed.TaxCode,
				IsSystemAccount: true,
				IsActive:        true,
				CreatedAt:       time.Now(),
				UpdatedAt:       time.Now(),
			}
			if err := s.accounts.Create(tx, account); err != nil {
				return fmt.Errorf("failed to seed account %s: %w", seed.Number, err)
			}
			result.Created++
		}

		return s.sequences.EnsureDefaults(tx, tenantID)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"created":   result.Created,
		"skipped":   result.Skipped,
	}).Info("Standard chart of accounts seeded")

	return result, nil
}

// UpdateAccount changes name, description and active flag. All other columns
// are immutable once the account exists.
func (s *AccountService) UpdateAccount(tenantID, id string, req models.UpdateAccountRequest) (*models.Account, error) {
	var account *models.Account

	err := s.txm.WithinTx(func(tx *sqlx.Tx) error {
		var err error
		account, err = s.accounts.FindByID(tx, tenantID, id)
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewNotFoundError("account", id)
		}
		if err != nil {
			return err
		}

		if req.Name != nil {
			account.Name = *req.Name
		}
		if req.Description != nil {
			account.Description = *req.Description
		}
		if req.IsActive != nil {
			account.IsActive = *req.IsActive
		}
		account.UpdatedAt = time.Now()

		return s.accounts.Update(tx, account)
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// DeactivateAccount sets the account inactive. Blocked while any journal
// line, posted or not, still references the account.
func (s *AccountService) DeactivateAccount(tenantID, id string) error {
	return s.txm.WithinTx(func(tx *sqlx.Tx) error {
		account, err := s.accounts.FindByID(tx, tenantID, id)
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewNotFoundError("account", id)
		}
		if err != nil {
			return err
		}

		inUse, err := s.accounts.HasJournalLines(tx, tenantID, id)
		if err != nil {
			return fmt.Errorf("failed to check account usage: %w", err)
		}
		if inUse {
			return models.NewConflictError(models.RuleAccountInUse,
				"account %s is referenced by journal entries", account.AccountNumber)
		}

		account.IsActive = false
		account.UpdatedAt = time.Now()
		return s.accounts.Update(tx, account)
	})
}

func (s *AccountService) GetAccount(tenantID, id string) (*models.Account, error) {
	account, err := s.accounts.FindByID(nil, tenantID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("account", id)
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) GetAccountByNumber(tenantID, number string) (*models.Account, error) {
	account, err := s.accounts.FindByNumber(nil, tenantID, number)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("account", number)
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) ListAccounts(tenantID string, filter models.AccountFilter) ([]models.Account, error) {
	return s.accounts.FindAll(tenantID, filter)
}
