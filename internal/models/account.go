package models

import "time"

// Account types follow the accounting equation: debit-normal accounts
// (asset, expense) grow on the debit side, everything else on the credit side.
const (
	AccountTypeAsset           = "asset"
	AccountTypeLiability       = "liability"
	AccountTypeEquity          = "equity"
	AccountTypeRevenue         = "revenue"
	AccountTypeExpense         = "expense"
	AccountTypeContraAsset     = "contra_asset"
	AccountTypeContraLiability = "contra_liability"
)

type Account struct {
	ID              string    `db:"id" json:"id"`
	TenantID        string    `db:"tenant_id" json:"tenant_id"`
	AccountNumber   string    `db:"account_number" json:"account_number"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	AccountType     string    `db:"account_type" json:"account_type"`
	AccountClass    string    `db:"account_class" json:"account_class"`
	ParentAccountID *string   `db:"parent_account_id" json:"parent_account_id"`
	TaxRelevant     bool      `db:"tax_relevant" json:"tax_relevant"`
	TaxCode         string    `db:"tax_code" json:"tax_code"`
	IsSystemAccount bool      `db:"is_system_account" json:"is_system_account"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// IsDebitNormal reports whether the account balance grows with debits.
func (a *Account) IsDebitNormal() bool {
	return a.AccountType == AccountTypeAsset || a.AccountType == AccountTypeExpense
}

type CreateAccountRequest struct {
	AccountNumber   string  `json:"account_number" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	AccountType     string  `json:"account_type" validate:"required"`
	AccountClass    string  `json:"account_class"`
	ParentAccountID *string `json:"parent_account_id"`
	TaxRelevant     bool    `json:"tax_relevant"`
	TaxCode         string  `json:"tax_code"`
}

// UpdateAccountRequest carries the only mutable account fields. Account
// number, type and class are fixed once the account exists.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type AccountFilter struct {
	AccountType  string `json:"account_type"`
	AccountClass string `json:"account_class"`
	ActiveOnly   bool   `json:"active_only"`
	Search       string `json:"search"`
}

type SeedResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
