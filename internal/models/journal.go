package models

import "time"

// Journal entry statuses. Draft entries are mutable, posted entries count in
// balances, reversed entries are terminal and kept for the audit trail.
const (
	EntryStatusDraft    = "draft"
	EntryStatusPosted   = "posted"
	EntryStatusReversed = "reversed"
)

const (
	EntryTypeManual   = "manual"
	EntryTypeInvoice  = "invoice"
	EntryTypeExpense  = "expense"
	EntryTypeReversal = "reversal"
)

type JournalEntry struct {
	ID                string     `db:"id" json:"id"`
	TenantID          string     `db:"tenant_id" json:"tenant_id"`
	EntryNumber       string     `db:"entry_number" json:"entry_number"`
	EntryDate         time.Time  `db:"entry_date" json:"entry_date"`
	PostingDate       *time.Time `db:"posting_date" json:"posting_date"`
	FiscalYear        int        `db:"fiscal_year" json:"fiscal_year"`
	FiscalPeriod      int        `db:"fiscal_period" json:"fiscal_period"`
	EntryType         string     `db:"entry_type" json:"entry_type"`
	Status            string     `db:"status" json:"status"`
	ReferenceType     *string    `db:"reference_type" json:"reference_type"`
	ReferenceID       *string    `db:"reference_id" json:"reference_id"`
	Description       string     `db:"description" json:"description"`
	ReversesEntryID   *string    `db:"reverses_entry_id" json:"reverses_entry_id"`
	ReversedByEntryID *string    `db:"reversed_by_entry_id" json:"reversed_by_entry_id"`
	PostedBy          *string    `db:"posted_by" json:"posted_by"`
	PostedAt          *time.Time `db:"posted_at" json:"posted_at"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`

	Lines []JournalEntryLine `db:"-" json:"lines"`
}

type JournalEntryLine struct {
	ID          string   `db:"id" json:"id"`
	EntryID     string   `db:"entry_id" json:"entry_id"`
	LineNumber  int      `db:"line_number" json:"line_number"`
	AccountID   string   `db:"account_id" json:"account_id"`
	Debit       float64  `db:"debit" json:"debit"`
	Credit      float64  `db:"credit" json:"credit"`
	CostCenter  *string  `db:"cost_center" json:"cost_center"`
	TaxCode     *string  `db:"tax_code" json:"tax_code"`
	TaxAmount   *float64 `db:"tax_amount" json:"tax_amount"`
	Description string   `db:"description" json:"description"`
}

type CreateEntryRequest struct {
	EntryDate     time.Time          `json:"entry_date" validate:"required"`
	EntryType     string             `json:"entry_type" validate:"required"`
	Description   string             `json:"description"`
	ReferenceType *string            `json:"reference_type"`
	ReferenceID   *string            `json:"reference_id"`
	Lines         []EntryLineRequest `json:"lines" validate:"required"`
}

type EntryLineRequest struct {
	AccountID   string   `json:"account_id" validate:"required"`
	Debit       float64  `json:"debit"`
	Credit      float64  `json:"credit"`
	CostCenter  *string  `json:"cost_center"`
	TaxCode     *string  `json:"tax_code"`
	TaxAmount   *float64 `json:"tax_amount"`
	Description string   `json:"description"`
}

// EntryTotals are the summed sides of a validated entry, returned by
// validation so callers do not have to add the lines up twice.
type EntryTotals struct {
	Debit  float64 `json:"debit"`
	Credit float64 `json:"credit"`
}

// FiscalYearOf and FiscalPeriodOf derive the reporting bucket from the entry
// date. Periods are calendar months, 1-12.
func FiscalYearOf(entryDate time.Time) int {
	return entryDate.Year()
}

func FiscalPeriodOf(entryDate time.Time) int {
	return int(entryDate.Month())
}
