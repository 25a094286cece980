package service

import (
	"accounting-ledger/internal/models"
	"accounting-ledger/internal/utils"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// BalanceService computes signed account balances and the trial balance from
// posted lines. Read-only; never mutates the ledger.
type BalanceService struct {
	accounts AccountStore
	journal  JournalStore
	cache    *redis.Client
	cacheTTL time.Duration
	log      *logrus.Logger
}

// NewBalanceService wires the reporting side. cache may be nil, which
// disables the Redis read cache.
func NewBalanceService(accounts AccountStore, journal JournalStore, cache *redis.Client, cacheTTL time.Duration) *BalanceService {
	return &BalanceService{
		accounts: accounts,
		journal:  journal,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      utils.GetLogger(),
	}
}

// AccountBalance returns the account's signed balance from posted lines,
// optionally bounded by entry date. Asset and expense accounts are
// debit-normal (debit - credit), everything else credit-normal.
func (s *BalanceService) AccountBalance(tenantID, accountID string, asOf *time.Time) (float64, error) {
	account, err := s.accounts.FindByID(nil, tenantID, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.NewNotFoundError("account", accountID)
	}
	if err != nil {
		return 0, err
	}

	// Current balances may be served slightly stale; posts are atomic so a
	// cached value is never half-applied.
	cacheKey := fmt.Sprintf("ledger:balance:%s:%s", tenantID, accountID)
	if asOf == nil && s.cache != nil {
		cached, err := s.cache.Get(context.Background(), cacheKey).Result()
		if err == nil {
			if balance, parseErr := strconv.ParseFloat(cached, 64); parseErr == nil {
				return balance, nil
			}
		}
	}

	debit, credit, err := s.journal.PostedTotals(tenantID, accountID, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to sum posted lines: %w", err)
	}

	balance := credit - debit
	if account.IsDebitNormal() {
		balance = debit - credit
	}

	if asOf == nil && s.cache != nil {
		if err := s.cache.Set(context.Background(), cacheKey,
			strconv.FormatFloat(balance, 'f', -1, 64), s.cacheTTL).Err(); err != nil {
			s.log.WithError(err).Warn("Failed to cache account balance")
		}
	}

	return balance, nil
}

// TrialBalance reports gross posted debit/credit activity per active account
// as of a date. Accounts without activity are omitted. The report is balanced
// when the global sides agree within a cent.
func (s *BalanceService) TrialBalance(tenantID string, asOf time.Time) (*models.TrialBalanceReport, error) {
	accounts, err := s.accounts.FindAll(tenantID, models.AccountFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}

	report := &models.TrialBalanceReport{
		TenantID: tenantID,
		AsOfDate: asOf,
		Accounts: []models.TrialBalanceAccount{},
	}

	for _, account := range accounts {
		debit, credit, err := s.journal.PostedTotals(tenantID, account.ID, &asOf)
		if err != nil {
			return nil, fmt.Errorf("failed to sum lines for account %s: %w", account.AccountNumber, err)
		}
		if debit == 0 && credit == 0 {
			continue
		}

		report.Accounts = append(report.Accounts, models.TrialBalanceAccount{
			AccountID:     account.ID,
			AccountNumber: account.AccountNumber,
			AccountName:   account.Name,
			AccountType:   account.AccountType,
			TotalDebit:    debit,
			TotalCredit:   credit,
		})
		report.TotalDebits += debit
		report.TotalCredits += credit
	}

	report.IsBalanced = math.Abs(report.TotalDebits-report.TotalCredits) < balanceEpsilon

	return report, nil
}
