package repository

import (
	"accounting-ledger/internal/models"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type SequenceRepository struct {
	db *sqlx.DB
}

func NewSequenceRepository(db *sqlx.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next allocates the next counter value for the tenant. Must be called inside
// the transaction that consumes the number: the FOR UPDATE lock serializes
// concurrent allocations and a rollback un-consumes the value, so two callers
// never commit the same number.
func (r *SequenceRepository) Next(tx *sqlx.Tx, tenantID, key string) (int64, error) {
	var current int64
	query := `SELECT current_value FROM sequence_counters
	          WHERE tenant_id = ? AND counter_key = ? FOR UPDATE`
	err := tx.Get(&current, query, tenantID, key)
	if errors.Is(err, sql.ErrNoRows) {
		// Lazily create the counter on first use.
		_, err = tx.Exec(`INSERT INTO sequence_counters (tenant_id, counter_key, current_value)
		                  VALUES (?, ?, 1)`, tenantID, key)
		if err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	next := current + 1
	_, err = tx.Exec(`UPDATE sequence_counters SET current_value = ?
	                  WHERE tenant_id = ? AND counter_key = ?`, next, tenantID, key)
	if err != nil {
		return 0, err
	}

	return next, nil
}

// EnsureDefaults creates the tenant's counter rows at zero if they do not
// exist yet. Safe to re-run.
func (r *SequenceRepository) EnsureDefaults(tx *sqlx.Tx, tenantID string) error {
	query := `INSERT IGNORE INTO sequence_counters (tenant_id, counter_key, current_value)
	          VALUES (?, ?, 0)`
	for _, key := range models.AllCounterKeys() {
		_, err := tx.Exec(query, tenantID, key)
		if err != nil {
			return err
		}
	}
	return nil
}
