package models

import "fmt"

// Counter keys for the per-tenant number sequences. Each key has a fixed
// prefix and zero-padding width; invoice numbers use the German "RE"
// (Rechnung), expenses "ER" (Eingangsrechnung) and vendors "KR" (Kreditor).
const (
	CounterJournalEntry = "journal_entry"
	CounterInvoice      = "invoice"
	CounterExpense      = "expense"
	CounterVendor       = "vendor"
)

type SequenceCounter struct {
	TenantID     string `db:"tenant_id" json:"tenant_id"`
	CounterKey   string `db:"counter_key" json:"counter_key"`
	CurrentValue int64  `db:"current_value" json:"current_value"`
}

type counterFormat struct {
	prefix string
	width  int
}

var counterFormats = map[string]counterFormat{
	CounterJournalEntry: {prefix: "JE-", width: 5},
	CounterInvoice:      {prefix: "RE-", width: 5},
	CounterExpense:      {prefix: "ER-", width: 5},
	CounterVendor:       {prefix: "KR-", width: 4},
}

// AllCounterKeys lists every counter a tenant owns, used when seeding a new
// tenant's settings.
func AllCounterKeys() []string {
	return []string{CounterJournalEntry, CounterInvoice, CounterExpense, CounterVendor}
}

// IsValidCounterKey reports whether key names a known sequence.
func IsValidCounterKey(key string) bool {
	_, ok := counterFormats[key]
	return ok
}

// FormatCounter renders an allocated counter value as the human-readable
// document number, e.g. FormatCounter(CounterJournalEntry, 7) == "JE-00007".
func FormatCounter(key string, value int64) string {
	f, ok := counterFormats[key]
	if !ok {
		return fmt.Sprintf("%d", value)
	}
	return fmt.Sprintf("%s%0*d", f.prefix, f.width, value)
}
