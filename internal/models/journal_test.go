package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiscalDerivation(t *testing.T) {
	date := time.Date(2026, 9, 3, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, 2026, FiscalYearOf(date))
	assert.Equal(t, 9, FiscalPeriodOf(date))

	january := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, FiscalPeriodOf(january))

	december := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, 12, FiscalPeriodOf(december))
}

func TestAccountIsDebitNormal(t *testing.T) {
	tests := []struct {
		accountType string
		want        bool
	}{
		{AccountTypeAsset, true},
		{AccountTypeExpense, true},
		{AccountTypeLiability, false},
		{AccountTypeEquity, false},
		{AccountTypeRevenue, false},
		{AccountTypeContraAsset, false},
		{AccountTypeContraLiability, false},
	}
	for _, tt := range tests {
		a := Account{AccountType: tt.accountType}
		assert.Equal(t, tt.want, a.IsDebitNormal(), tt.accountType)
	}
}
