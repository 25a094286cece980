package repository

import (
	"accounting-ledger/internal/models"
	"time"

	"github.com/jmoiron/sqlx"
)

type JournalRepository struct {
	db *sqlx.DB
}

func NewJournalRepository(db *sqlx.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) ext(tx *sqlx.Tx) sqlx.Ext {
	if tx != nil {
		return tx
	}
	return r.db
}

// FindEntry loads a journal entry with its lines in line order.
func (r *JournalRepository) FindEntry(tx *sqlx.Tx, tenantID, id string) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	query := `SELECT * FROM journal_entries WHERE tenant_id = ? AND id = ? LIMIT 1`
	err := sqlx.Get(r.ext(tx), &entry, query, tenantID, id)
	if err != nil {
		return nil, err
	}

	lines := []models.JournalEntryLine{}
	linesQuery := `SELECT * FROM journal_entry_lines WHERE entry_id = ? ORDER BY line_number`
	err = sqlx.Select(r.ext(tx), &lines, linesQuery, id)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines

	return &entry, nil
}

// InsertEntry persists the header and all lines. Must run inside the caller's
// transaction so a failure leaves no half-written entry behind.
func (r *JournalRepository) InsertEntry(tx *sqlx.Tx, entry *models.JournalEntry) error {
	query := `INSERT INTO journal_entries (id, tenant_id, entry_number, entry_date, posting_date,
	          fiscal_year, fiscal_period, entry_type, status, reference_type, reference_id, description,
	          reverses_entry_id, reversed_by_entry_id, posted_by, posted_at, created_at, updated_at)
	          VALUES (:id, :tenant_id, :entry_number, :entry_date, :posting_date,
	          :fiscal_year, :fiscal_period, :entry_type, :status, :reference_type, :reference_id, :description,
	          :reverses_entry_id, :reversed_by_entry_id, :posted_by, :posted_at, :created_at, :updated_at)`
	_, err := sqlx.NamedExec(tx, query, entry)
	if err != nil {
		return err
	}

	return r.insertLines(tx, entry.Lines)
}

func (r *JournalRepository) insertLines(tx *sqlx.Tx, lines []models.JournalEntryLine) error {
	query := `INSERT INTO journal_entry_lines (id, entry_id, line_number, account_id, debit, credit,
	          cost_center, tax_code, tax_amount, description)
	          VALUES (:id, :entry_id, :line_number, :account_id, :debit, :credit,
	          :cost_center, :tax_code, :tax_amount, :description)`
	for _, line := range lines {
		_, err := sqlx.NamedExec(tx, query, line)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReplaceLines deletes and reinserts the entry's lines as a set. Only valid
// while the entry is in draft.
func (r *JournalRepository) ReplaceLines(tx *sqlx.Tx, entry *models.JournalEntry) error {
	_, err := tx.Exec(`DELETE FROM journal_entry_lines WHERE entry_id = ?`, entry.ID)
	if err != nil {
		return err
	}
	return r.insertLines(tx, entry.Lines)
}

// UpdateHeader writes the header columns that change after creation: status
// transitions, posting metadata, reversal links and draft edits.
func (r *JournalRepository) UpdateHeader(tx *sqlx.Tx, entry *models.JournalEntry) error {
	query := `UPDATE journal_entries SET entry_date = :entry_date, posting_date = :posting_date,
	          fiscal_year = :fiscal_year, fiscal_period = :fiscal_period, entry_type = :entry_type,
	          status = :status, reference_type = :reference_type, reference_id = :reference_id,
	          description = :description, reverses_entry_id = :reverses_entry_id,
	          reversed_by_entry_id = :reversed_by_entry_id, posted_by = :posted_by, posted_at = :posted_at,
	          updated_at = :updated_at
	          WHERE tenant_id = :tenant_id AND id = :id`
	_, err := sqlx.NamedExec(r.ext(tx), query, entry)
	return err
}

// PostedTotals sums the debit and credit sides over all lines of entries
// currently in posted status for one account, optionally bounded by entry
// date. Draft and reversed entries never contribute.
func (r *JournalRepository) PostedTotals(tenantID, accountID string, asOf *time.Time) (float64, float64, error) {
	var totals struct {
		TotalDebit  float64 `db:"total_debit"`
		TotalCredit float64 `db:"total_credit"`
	}

	query := `SELECT COALESCE(SUM(l.debit), 0) AS total_debit,
	                 COALESCE(SUM(l.credit), 0) AS total_credit
	          FROM journal_entry_lines l
	          JOIN journal_entries e ON e.id = l.entry_id
	          WHERE e.tenant_id = ? AND l.account_id = ? AND e.status = ?`
	args := []interface{}{tenantID, accountID, models.EntryStatusPosted}

	if asOf != nil {
		query += " AND e.entry_date <= ?"
		args = append(args, *asOf)
	}

	err := r.db.Get(&totals, query, args...)
	if err != nil {
		return 0, 0, err
	}

	return totals.TotalDebit, totals.TotalCredit, nil
}
