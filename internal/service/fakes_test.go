package service

import (
	"accounting-ledger/internal/models"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// fakeStore is an in-memory ledger store implementing TxRunner, AccountStore,
// JournalStore and SequenceStore for service tests. Transactions are a no-op;
// the fake hands fn a nil tx.
type fakeStore struct {
	accounts map[string]*models.Account
	entries  map[string]*models.JournalEntry
	counters map[string]int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[string]*models.Account),
		entries:  make(map[string]*models.JournalEntry),
		counters: make(map[string]int64),
	}
}

func (f *fakeStore) WithinTx(fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func copyAccount(a *models.Account) *models.Account {
	c := *a
	return &c
}

func copyEntry(e *models.JournalEntry) *models.JournalEntry {
	c := *e
	c.Lines = append([]models.JournalEntryLine(nil), e.Lines...)
	return &c
}

func (f *fakeStore) FindByID(tx *sqlx.Tx, tenantID, id string) (*models.Account, error) {
	a, ok := f.accounts[id]
	if !ok || a.TenantID != tenantID {
		return nil, sql.ErrNoRows
	}
	return copyAccount(a), nil
}

func (f *fakeStore) FindByNumber(tx *sqlx.Tx, tenantID, number string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.TenantID == tenantID && a.AccountNumber == number {
			return copyAccount(a), nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) FindAll(tenantID string, filter models.AccountFilter) ([]models.Account, error) {
	var result []models.Account
	for _, a := range f.accounts {
		if a.TenantID != tenantID {
			continue
		}
		if filter.AccountType != "" && a.AccountType != filter.AccountType {
			continue
		}
		if filter.AccountClass != "" && a.AccountClass != filter.AccountClass {
			continue
		}
		if filter.ActiveOnly && !a.IsActive {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(a.AccountNumber, filter.Search) &&
			!strings.Contains(a.Name, filter.Search) {
			continue
		}
		result = append(result, *copyAccount(a))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AccountNumber < result[j].AccountNumber
	})
	return result, nil
}

func (f *fakeStore) SelectNumbers(tx *sqlx.Tx, tenantID string) ([]string, error) {
	var numbers []string
	for _, a := range f.accounts {
		if a.TenantID == tenantID {
			numbers = append(numbers, a.AccountNumber)
		}
	}
	return numbers, nil
}

func (f *fakeStore) Create(tx *sqlx.Tx, account *models.Account) error {
	f.accounts[account.ID] = copyAccount(account)
	return nil
}

func (f *fakeStore) Update(tx *sqlx.Tx, account *models.Account) error {
	stored, ok := f.accounts[account.ID]
	if !ok || stored.TenantID != account.TenantID {
		return nil
	}
	stored.Name = account.Name
	stored.Description = account.Description
	stored.IsActive = account.IsActive
	stored.UpdatedAt = account.UpdatedAt
	return nil
}

func (f *fakeStore) HasJournalLines(tx *sqlx.Tx, tenantID, accountID string) (bool, error) {
	for _, e := range f.entries {
		if e.TenantID != tenantID {
			continue
		}
		for _, l := range e.Lines {
			if l.AccountID == accountID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (f *fakeStore) FindEntry(tx *sqlx.Tx, tenantID, id string) (*models.JournalEntry, error) {
	e, ok := f.entries[id]
	if !ok || e.TenantID != tenantID {
		return nil, sql.ErrNoRows
	}
	return copyEntry(e), nil
}

func (f *fakeStore) InsertEntry(tx *sqlx.Tx, entry *models.JournalEntry) error {
	f.entries[entry.ID] = copyEntry(entry)
	return nil
}

func (f *fakeStore) ReplaceLines(tx *sqlx.Tx, entry *models.JournalEntry) error {
	stored, ok := f.entries[entry.ID]
	if !ok {
		return sql.ErrNoRows
	}
	stored.Lines = append([]models.JournalEntryLine(nil), entry.Lines...)
	return nil
}

func (f *fakeStore) UpdateHeader(tx *sqlx.Tx, entry *models.JournalEntry) error {
	stored, ok := f.entries[entry.ID]
	if !ok || stored.TenantID != entry.TenantID {
		return sql.ErrNoRows
	}
	lines := stored.Lines
	*stored = *entry
	stored.Lines = lines
	return nil
}

func (f *fakeStore) PostedTotals(tenantID, accountID string, asOf *time.Time) (float64, float64, error) {
	var debit, credit float64
	for _, e := range f.entries {
		if e.TenantID != tenantID || e.Status != models.EntryStatusPosted {
			continue
		}
		if asOf != nil && e.EntryDate.After(*asOf) {
			continue
		}
		for _, l := range e.Lines {
			if l.AccountID == accountID {
				debit += l.Debit
				credit += l.Credit
			}
		}
	}
	return debit, credit, nil
}

func (f *fakeStore) Next(tx *sqlx.Tx, tenantID, key string) (int64, error) {
	k := tenantID + "/" + key
	f.counters[k]++
	return f.counters[k], nil
}

func (f *fakeStore) EnsureDefaults(tx *sqlx.Tx, tenantID string) error {
	for _, key := range models.AllCounterKeys() {
		k := tenantID + "/" + key
		if _, ok := f.counters[k]; !ok {
			f.counters[k] = 0
		}
	}
	return nil
}
