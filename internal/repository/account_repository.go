package repository

import (
	"accounting-ledger/internal/models"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// ext returns the transaction when one is in flight, the pool otherwise.
func (r *AccountRepository) ext(tx *sqlx.Tx) sqlx.Ext {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *AccountRepository) FindByID(tx *sqlx.Tx, tenantID, id string) (*models.Account, error) {
	var account models.Account
	query := `SELECT * FROM accounts WHERE tenant_id = ? AND id = ? LIMIT 1`
	err := sqlx.Get(r.ext(tx), &account, query, tenantID, id)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByNumber(tx *sqlx.Tx, tenantID, number string) (*models.Account, error) {
	var account models.Account
	query := `SELECT * FROM accounts WHERE tenant_id = ? AND account_number = ? LIMIT 1`
	err := sqlx.Get(r.ext(tx), &account, query, tenantID, number)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindAll(tenantID string, filter models.AccountFilter) ([]models.Account, error) {
	accounts := []models.Account{}

	whereClause := "WHERE tenant_id = ?"
	args := []interface{}{tenantID}

	if filter.AccountType != "" {
		whereClause += " AND account_type = ?"
		args = append(args, filter.AccountType)
	}
	if filter.AccountClass != "" {
		whereClause += " AND account_class = ?"
		args = append(args, filter.AccountClass)
	}
	if filter.ActiveOnly {
		whereClause += " AND is_active = TRUE"
	}
	if filter.Search != "" {
		whereClause += " AND (account_number LIKE ? OR name LIKE ?)"
		searchPattern := "%" + filter.Search + "%"
		args = append(args, searchPattern, searchPattern)
	}

	query := fmt.Sprintf(`SELECT * FROM accounts %s ORDER BY account_number`, whereClause)
	err := r.db.Select(&accounts, query, args...)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// SelectNumbers returns every account number the tenant already uses, for
// seed-time duplicate skipping.
func (r *AccountRepository) SelectNumbers(tx *sqlx.Tx, tenantID string) ([]string, error) {
	var numbers []string
	query := `SELECT account_number FROM accounts WHERE tenant_id = ?`
	err := sqlx.Select(r.ext(tx), &numbers, query, tenantID)
	return numbers, err
}

func (r *AccountRepository) Create(tx *sqlx.Tx, account *models.Account) error {
	query := `INSERT INTO accounts (id, tenant_id, account_number, name, description, account_type,
	          account_class, parent_account_id, tax_relevant, tax_code, is_system_account, is_active,
	          created_at, updated_at)
	          VALUES (:id, :tenant_id, :account_number, :name, :description, :account_type,
	          :account_class, :parent_account_id, :tax_relevant, :tax_code, :is_system_account, :is_active,
	          :created_at, :updated_at)`
	_, err := sqlx.NamedExec(r.ext(tx), query, account)
	return err
}

// Update writes the mutable columns only. Account number, type and class are
// immutable once the account exists.
func (r *AccountRepository) Update(tx *sqlx.Tx, account *models.Account) error {
	query := `UPDATE accounts SET name = :name, description = :description,
	          is_active = :is_active, updated_at = :updated_at
	          WHERE tenant_id = :tenant_id AND id = :id`
	_, err := sqlx.NamedExec(r.ext(tx), query, account)
	return err
}

// HasJournalLines reports whether any journal entry line of the tenant,
// regardless of entry status, references the account. Any such reference
// blocks deactivation.
func (r *AccountRepository) HasJournalLines(tx *sqlx.Tx, tenantID, accountID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
	            SELECT 1 FROM journal_entry_lines l
	            JOIN journal_entries e ON e.id = l.entry_id
	            WHERE e.tenant_id = ? AND l.account_id = ?
	          )`
	err := sqlx.Get(r.ext(tx), &exists, query, tenantID, accountID)
	return exists, err
}
