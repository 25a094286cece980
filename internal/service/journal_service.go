package service

import (
	"accounting-ledger/internal/models"
	"accounting-ledger/internal/utils"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// balanceEpsilon tolerates float rounding when comparing the debit and credit
// sides. An entry is unbalanced once the sides differ by a full cent.
const balanceEpsilon = 0.01

// JournalService is the posting engine. Entries move draft -> posted ->
// reversed; posted lines are immutable and feed the balance reports.
type JournalService struct {
	txm       TxRunner
	accounts  AccountStore
	journal   JournalStore
	sequences SequenceStore
	log       *logrus.Logger
}

func NewJournalService(txm TxRunner, accounts AccountStore, journal JournalStore, sequences SequenceStore) *JournalService {
	return &JournalService{
		txm:       txm,
		accounts:  accounts,
		journal:   journal,
		sequences: sequences,
		log:       utils.GetLogger(),
	}
}

// ValidateEntry checks the line-level and entry-level invariants without
// touching storage and returns the summed sides for reuse.
func ValidateEntry(lines []models.EntryLineRequest) (*models.EntryTotals, error) {
	if len(lines) == 0 {
		return nil, models.NewValidationError(models.RuleEmptyEntry, "entry has no lines")
	}

	totals := &models.EntryTotals{}
	for i, line := range lines {
		hasDebit := line.Debit != 0
		hasCredit := line.Credit != 0
		if hasDebit && hasCredit {
			return nil, models.NewValidationError(models.RuleMixedAmountLine,
				"line %d has both debit and credit amounts", i+1)
		}
		if !hasDebit && !hasCredit {
			return nil, models.NewValidationError(models.RuleZeroAmountLine,
				"line %d has neither debit nor credit amount", i+1)
		}
		totals.Debit += line.Debit
		totals.Credit += line.Credit
	}

	if math.Abs(totals.Debit-totals.Credit) >= balanceEpsilon {
		return nil, models.NewValidationError(models.RuleUnbalanced,
			"debits %.2f do not equal credits %.2f", totals.Debit, totals.Credit)
	}

	return totals, nil
}

// CreateEntry validates and persists a new draft entry. Number allocation,
// account checks and the header+lines insert share one transaction, so a
// failed creation leaves nothing behind and un-consumes the number.
func (s *JournalService) CreateEntry(tenantID string, req models.CreateEntryRequest) (*models.JournalEntry, error) {
	if _, err := ValidateEntry(req.Lines); err != nil {
		return nil, err
	}

	var entry *models.JournalEntry
	err := s.txm.WithinTx(func(tx *sqlx.Tx) error {
		var err error
		entry, err = s.createEntryTx(tx, tenantID, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"tenant_id":    tenantID,
		"entry_number": entry.EntryNumber,
	}).Info("Journal entry created")

	return entry, nil
}

func (s *JournalService) createEntryTx(tx *sqlx.Tx, tenantID string, req models.CreateEntryRequest) (*models.JournalEntry, error) {
	// Every referenced account must belong to the tenant before anything is
	// written.
	for _, line := range req.Lines {
		_, err := s.accounts.FindByID(tx, tenantID, line.AccountID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("account", line.AccountID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve account %s: %w", line.AccountID, err)
		}
	}

	seq, err := s.sequences.Next(tx, tenantID, models.CounterJournalEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate entry number: %w", err)
	}

	entryType := req.EntryType
	if entryType == "" {
		entryType = models.EntryTypeManual
	}

	now := time.Now()
	entry := &models.JournalEntry{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		EntryNumber:   models.FormatCounter(models.CounterJournalEntry, seq),
		EntryDate:     req.EntryDate,
		FiscalYear:    models.FiscalYearOf(req.EntryDate),
		FiscalPeriod:  models.FiscalPeriodOf(req.EntryDate),
		EntryType:     entryType,
		Status:        models.EntryStatusDraft,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Description:   req.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	entry.Lines = buildLines(entry.ID, req.Lines)

	if err := s.journal.InsertEntry(tx, entry); err != nil {
		return nil, fmt.Errorf("failed to persist entry: %w", err)
	}

	return entry, nil
}

func buildLines(entryID string, reqs []models.EntryLineRequest) []models.JournalEntryLine {
	lines := make([]models.JournalEntryLine, 0, len(reqs))
	for i, req := range reqs {
		lines = append(lines, models.JournalEntryLine{
			ID:          uuid.NewString(),
			EntryID:     entryID,
			LineNumber:  i + 1,
			AccountID:   req.AccountID,
			Debit:       req.Debit,
			Credit:      req.Credit,
			CostCenter:  req.CostCenter,
			TaxCode:     req.TaxCode,
			TaxAmount:   req.TaxAmount,
			Description: req.Description,
		})
	}
	return lines
}

// UpdateDraftEntry replaces a draft entry's header fields and its whole line
// set. Entries are only mutable before posting.
func (s *JournalService) UpdateDraftEntry(tenantID, entryID string, req models.CreateEntryRequest) (*models.JournalEntry, error) {
	if _, err := ValidateEntry(req.Lines); err != nil {
		return nil, err
	}

	var entry *models.JournalEntry
	err := s.txm.WithinTx(func(tx *sqlx.Tx) error {
		var err error
		entry, err = s.journal.FindEntry(tx, tenantID, entryID)
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewNotFoundError("journal entry", entryID)
		}
		if err != nil {
			return err
		}

		switch entry.Status {
		case models.EntryStatusPosted:
			return models.NewConflictError(models.RuleAlreadyPosted,
				"entry %s is posted and immutable", entry.EntryNumber)
		case models.EntryStatusReversed:
			return models.NewConflictError(models.RuleAlreadyReversed,
				"entry %s is reversed and immutable", entry.EntryNumber)
		}

		for _, line := range req.Lines {
			_, err := s.accounts.FindByID(tx, tenantID, line.AccountID)
			if errors.Is(err, sql.ErrNoRows) {
				return models.NewNotFoundError("account", line.AccountID)
			}
			if err != nil {
				return err
			}
		}

		entry.EntryDate = req.EntryDate
		entry.FiscalYear = models.FiscalYearOf(req.EntryDate)
		entry.FiscalPeriod = models.FiscalPeriodOf(req.EntryDate)
		entry.Description = req.Description
		entry.ReferenceType = req.ReferenceType
		entry.ReferenceID = req.ReferenceID
		if req.EntryType != "" {
			entry.EntryType = req.EntryType
		}
		entry.UpdatedAt = time.Now()
		entry.Lines = buildLines(entry.ID, req.Lines)

		if err := s.journal.UpdateHeader(tx, entry); err != nil {
			return err
		}
		return s.journal.ReplaceLines(tx, entry)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// PostEntry makes a draft entry permanent. After posting the lines count in
// balances and never change again.
func (s *JournalService) PostEntry(tenantID, entryID, postedBy string) (*models.JournalEntry, error) {
	var entry *models.JournalEntry
	err := s.txm.WithinTx(func(tx *sqlx.Tx) error {
		var err error
		entry, err = s.postEntryTx(tx, tenantID, entryID, postedBy)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"tenant_id":    tenantID,
		"entry_number": entry.EntryNumber,
		"posted_by":    postedBy,
	}).Info("Journal entry posted")

	return entry, nil
}

func (s *JournalService) postEntryTx(tx *sqlx.Tx, tenantID, entryID, postedBy string) (*models.JournalEntry, error) {
	entry, err := s.journal.FindEntry(tx, tenantID, entryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("journal entry", entryID)
	}
	if err != nil {
		return nil, err
	}

	switch entry.Status {
	case models.EntryStatusPosted:
		return nil, models.NewConflictError(models.RuleAlreadyPosted,
			"entry %s is already posted", entry.EntryNumber)
	case models.EntryStatusReversed:
		return nil, models.NewConflictError(models.RuleAlreadyReversed,
			"entry %s has been reversed", entry.EntryNumber)
	}

	// Re-check the persisted lines before they become permanent.
	if _, err := ValidateEntry(lineRequests(entry.Lines)); err != nil {
		return nil, err
	}

	now := time.Now()
	entry.Status = models.EntryStatusPosted
	entry.PostingDate = &now
	entry.PostedBy = &postedBy
	entry.PostedAt = &now
	entry.UpdatedAt = now

	if err := s.journal.UpdateHeader(tx, entry); err != nil {
		return nil, fmt.Errorf("failed to post entry: %w", err)
	}

	return entry, nil
}

func lineRequests(lines []models.JournalEntryLine) []models.EntryLineRequest {
	reqs := make([]models.EntryLineRequest, 0, len(lines))
	for _, line := range lines {
		reqs = append(reqs, models.EntryLineRequest{
			AccountID: line.AccountID,
			Debit:     line.Debit,
			Credit:    line.Credit,
		})
	}
	return reqs
}

// ReverseEntry cancels a posted entry by creating and posting a mirror entry
// with debit and credit swapped per line, then linking the pair. Cost centers
// are copied unchanged, tax amounts are negated. The original ends up
// reversed; its lines stay untouched for the audit trail. Everything happens
// in one transaction.
func (s *JournalService) ReverseEntry(tenantID, entryID, reason, performedBy string) (*models.JournalEntry, error) {
	var original *models.JournalEntry
	err := s.txm.WithinTx(func(tx *sqlx.Tx) error {
		var err error
		original, err = s.journal.FindEntry(tx, tenantID, entryID)
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewNotFoundError("journal entry", entryID)
		}
		if err != nil {
			return err
		}

		switch original.Status {
		case models.EntryStatusDraft:
			return models.NewConflictError(models.RuleNotPosted,
				"entry %s is not posted", original.EntryNumber)
		case models.EntryStatusReversed:
			return models.NewConflictError(models.RuleAlreadyReversed,
				"entry %s has already been reversed", original.EntryNumber)
		}
		if original.ReversedByEntryID != nil {
			return models.NewConflictError(models.RuleAlreadyReversed,
				"entry %s has already been reversed", original.EntryNumber)
		}

		reversalReq := models.CreateEntryRequest{
			EntryDate:   time.Now(),
			EntryType:   models.EntryTypeReversal,
			Description: fmt.Sprintf("Reversal of %s: %s", original.EntryNumber, reason),
			Lines:       reversalLines(original.Lines),
		}

		reversal, err := s.createEntryTx(tx, tenantID, reversalReq)
		if err != nil {
			return err
		}

		reversal.ReversesEntryID = &original.ID
		reversal.UpdatedAt = time.Now()
		if err := s.journal.UpdateHeader(tx, reversal); err != nil {
			return err
		}

		if _, err := s.postEntryTx(tx, tenantID, reversal.ID, performedBy); err != nil {
			return err
		}

		original.Status = models.EntryStatusReversed
		original.ReversedByEntryID = &reversal.ID
		original.UpdatedAt = time.Now()
		return s.journal.UpdateHeader(tx, original)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"tenant_id":    tenantID,
		"entry_number": original.EntryNumber,
	}).Info("Journal entry reversed")

	return original, nil
}

func reversalLines(lines []models.JournalEntryLine) []models.EntryLineRequest {
	reqs := make([]models.EntryLineRequest, 0, len(lines))
	for _, line := range lines {
		var taxAmount *float64
		if line.TaxAmount != nil {
			negated := -*line.TaxAmount
			taxAmount = &negated
		}
		reqs = append(reqs, models.EntryLineRequest{
			AccountID:   line.AccountID,
			Debit:       line.Credit,
			Credit:      line.Debit,
			CostCenter:  line.CostCenter,
			TaxCode:     line.TaxCode,
			TaxAmount:   taxAmount,
			Description: line.Description,
		})
	}
	return reqs
}

// GetEntry loads one entry with its lines.
func (s *JournalService) GetEntry(tenantID, entryID string) (*models.JournalEntry, error) {
	entry, err := s.journal.FindEntry(nil, tenantID, entryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("journal entry", entryID)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}
