package service

import (
	"accounting-ledger/internal/models"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportTrialBalance(t *testing.T) {
	report := &models.TrialBalanceReport{
		TenantID: testTenant,
		AsOfDate: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Accounts: []models.TrialBalanceAccount{
			{AccountNumber: "1200", AccountName: "Bank", AccountType: models.AccountTypeAsset, TotalDebit: 119},
			{AccountNumber: "8400", AccountName: "Erlöse 19% USt", AccountType: models.AccountTypeRevenue, TotalCredit: 119},
		},
		TotalDebits:  119,
		TotalCredits: 119,
		IsBalanced:   true,
	}

	path := filepath.Join(t.TempDir(), "trial-balance.xlsx")
	require.NoError(t, NewExportService().ExportTrialBalance(report, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Trial Balance"
	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Trial Balance", title)

	asOf, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "As of 2026-12-31", asOf)

	number, err := f.GetCellValue(sheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "1200", number)

	name, err := f.GetCellValue(sheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "Erlöse 19% USt", name)

	balanced, err := f.GetCellValue(sheet, "B8")
	require.NoError(t, err)
	assert.Equal(t, "Yes", balanced)
}
