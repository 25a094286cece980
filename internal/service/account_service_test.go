package service

import (
	"accounting-ledger/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenant = "11111111-1111-1111-1111-111111111111"

func newTestServices() (*fakeStore, *AccountService, *JournalService, *BalanceService) {
	store := newFakeStore()
	accounts := NewAccountService(store, store, store)
	journal := NewJournalService(store, store, store, store)
	balances := NewBalanceService(store, store, nil, 0)
	return store, accounts, journal, balances
}

func bankAndCashAccounts(t *testing.T, accounts *AccountService) (*models.Account, *models.Account) {
	t.Helper()
	bank, err := accounts.CreateAccount(testTenant, models.CreateAccountRequest{
		AccountNumber: "1200",
		Name:          "Bank",
		AccountType:   models.AccountTypeAsset,
	})
	require.NoError(t, err)
	revenue, err := accounts.CreateAccount(testTenant, models.CreateAccountRequest{
		AccountNumber: "8400",
		Name:          "Erlöse 19% USt",
		AccountType:   models.AccountTypeRevenue,
	})
	require.NoError(t, err)
	return bank, revenue
}

func TestCreateAccount(t *testing.T) {
	_, accounts, _, _ := newTestServices()

	account, err := accounts.CreateAccount(testTenant, models.CreateAccountRequest{
		AccountNumber: "4930",
		Name:          "Bürobedarf",
		AccountType:   models.AccountTypeExpense,
		AccountClass:  "Aufwendungen",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.True(t, account.IsActive)
	assert.False(t, account.IsSystemAccount)
}

func TestCreateAccount_DuplicateNumber(t *testing.T) {
	_, accounts, _, _ := newTestServices()

	_, err := accounts.CreateAccount(testTenant, models.CreateAccountRequest{
		AccountNumber: "1200", Name: "Bank", AccountType: models.AccountTypeAsset,
	})
	require.NoError(t, err)

	_, err = accounts.CreateAccount(testTenant, models.CreateAccountRequest{
		AccountNumber: "1200", Name: "Bank 2", AccountType: models.AccountTypeAsset,
	})
	var conflict *models.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, models.RuleDuplicateAccountNumber, conflict.Rule)

	// Same number under a different tenant is fine.
	otherTenant := "22222222-2222-2222-2222-222222222222"
	_, err = accounts.CreateAccount(otherTenant, models.CreateAccountRequest{
		AccountNumber: "1200", Name: "Bank", AccountType: models.AccountTypeAsset,
	})
	require.NoError(t, err)
}

func TestSeedStandardAccounts_Idempotent(t *testing.T) {
	store, accounts, _, _ := newTestServices()

	first, err := accounts.SeedStandardAccounts(testTenant, "skr03")
	require.NoError(t, err)
	assert.Equal(t, len(standardChartSKR03), first.Created)
	assert.Equal(t, 0, first.Skipped)

	second, err := accounts.SeedStandardAccounts(testTenant, "SKR03")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, first.Created, second.Skipped)

	// Seeded accounts are system accounts and counters exist.
	seeded, err := accounts.GetAccountByNumber(testTenant, "1200")
	require.NoError(t, err)
	assert.True(t, seeded.IsSystemAccount)
	for _, key := range models.AllCounterKeys() {
		_, ok := store.counters[testTenant+"/"+key]
		assert.True(t, ok, "counter %s not initialized", key)
	}
}

func TestSeedStandardAccounts_UnsupportedChartType(t *testing.T) {
	_, accounts, _, _ := newTestServices()

	_, err := accounts.SeedStandardAccounts(testTenant, "skr04")
	var conflict *models.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, models.RuleUnsupportedChartType, conflict.Rule)
}

func TestUpdateAccount(t *testing.T) {
	_, accounts, _, _ := newTestServices()
	bank, _ := bankAndCashAccounts(t, accounts)

	newName := "Hausbank"
	updated, err := accounts.UpdateAccount(testTenant, bank.ID, models.UpdateAccountRequest{
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hausbank", updated.Name)
	// Untouched fields keep their values.
	assert.Equal(t, "1200", updated.AccountNumber)
	assert.True(t, updated.IsActive)
}

func TestUpdateAccount_NotFound(t *testing.T) {
	_, accounts, _, _ := newTestServices()

	name := "x"
	_, err := accounts.UpdateAccount(testTenant, "missing", models.UpdateAccountRequest{Name: &name})
	var notFound *models.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeactivateAccount_Unused(t *testing.T) {
	_, accounts, _, _ := newTestServices()
	bank, _ := bankAndCashAccounts(t, accounts)

	require.NoError(t, accounts.DeactivateAccount(testTenant, bank.ID))

	account, err := accounts.GetAccount(testTenant, bank.ID)
	require.NoError(t, err)
	assert.False(t, account.IsActive)
}

func TestDeactivateAccount_InUse(t *testing.T) {
	_, accounts, journal, _ := newTestServices()
	bank, revenue := bankAndCashAccounts(t, accounts)

	// A draft entry is enough to block deactivation.
	_, err := journal.CreateEntry(testTenant, models.CreateEntryRequest{
		EntryDate: time.Now(),
		Lines: []models.EntryLineRequest{
			{AccountID: bank.ID, Debit: 119},
			{AccountID: revenue.ID, Credit: 119},
		},
	})
	require.NoError(t, err)

	err = accounts.DeactivateAccount(testTenant, bank.ID)
	var conflict *models.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, models.RuleAccountInUse, conflict.Rule)
}

func TestListAccounts_FilterAndOrder(t *testing.T) {
	_, accounts, _, _ := newTestServices()

	for _, tc := range []struct{ number, name, accountType string }{
		{"4930", "Bürobedarf", models.AccountTypeExpense},
		{"1200", "Bank", models.AccountTypeAsset},
		{"1000", "Kasse", models.AccountTypeAsset},
	} {
		_, err := accounts.CreateAccount(testTenant, models.CreateAccountRequest{
			AccountNumber: tc.number, Name: tc.name, AccountType: tc.accountType,
		})
		require.NoError(t, err)
	}

	all, err := accounts.ListAccounts(testTenant, models.AccountFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "1000", all[0].AccountNumber)
	assert.Equal(t, "1200", all[1].AccountNumber)
	assert.Equal(t, "4930", all[2].AccountNumber)

	assets, err := accounts.ListAccounts(testTenant, models.AccountFilter{AccountType: models.AccountTypeAsset})
	require.NoError(t, err)
	assert.Len(t, assets, 2)

	found, err := accounts.ListAccounts(testTenant, models.AccountFilter{Search: "Kasse"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "1000", found[0].AccountNumber)
}
