package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCounter(t *testing.T) {
	assert.Equal(t, "JE-00001", FormatCounter(CounterJournalEntry, 1))
	assert.Equal(t, "JE-00042", FormatCounter(CounterJournalEntry, 42))
	assert.Equal(t, "JE-123456", FormatCounter(CounterJournalEntry, 123456))
	assert.Equal(t, "RE-00007", FormatCounter(CounterInvoice, 7))
	assert.Equal(t, "ER-00003", FormatCounter(CounterExpense, 3))
	assert.Equal(t, "KR-0012", FormatCounter(CounterVendor, 12))
}

func TestIsValidCounterKey(t *testing.T) {
	for _, key := range AllCounterKeys() {
		assert.True(t, IsValidCounterKey(key))
	}
	assert.False(t, IsValidCounterKey("purchase_order"))
}
