package service

import (
	"accounting-ledger/internal/models"
	"time"

	"github.com/jmoiron/sqlx"
)

// TxRunner runs a unit of work inside a single ledger-store transaction.
// Implemented by database.TxManager.
type TxRunner interface {
	WithinTx(fn func(tx *sqlx.Tx) error) error
}

// AccountStore is the chart-of-accounts side of the ledger store. A nil tx
// means the call runs outside any transaction.
type AccountStore interface {
	FindByID(tx *sqlx.Tx, tenantID, id string) (*models.Account, error)
	FindByNumber(tx *sqlx.Tx, tenantID, number string) (*models.Account, error)
	FindAll(tenantID string, filter models.AccountFilter) ([]models.Account, error)
	SelectNumbers(tx *sqlx.Tx, tenantID string) ([]string, error)
	Create(tx *sqlx.Tx, account *models.Account) error
	Update(tx *sqlx.Tx, account *models.Account) error
	HasJournalLines(tx *sqlx.Tx, tenantID, accountID string) (bool, error)
}

// JournalStore persists journal entries and their lines.
type JournalStore interface {
	FindEntry(tx *sqlx.Tx, tenantID, id string) (*models.JournalEntry, error)
	InsertEntry(tx *sqlx.Tx, entry *models.JournalEntry) error
	ReplaceLines(tx *sqlx.Tx, entry *models.JournalEntry) error
	UpdateHeader(tx *sqlx.Tx, entry *models.JournalEntry) error
	PostedTotals(tenantID, accountID string, asOf *time.Time) (float64, float64, error)
}

// SequenceStore allocates per-tenant document numbers.
type SequenceStore interface {
	Next(tx *sqlx.Tx, tenantID, key string) (int64, error)
	EnsureDefaults(tx *sqlx.Tx, tenantID string) error
}
