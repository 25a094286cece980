package models

import "time"

type TrialBalanceAccount struct {
	AccountID     string  `db:"account_id" json:"account_id"`
	AccountNumber string  `db:"account_number" json:"account_number"`
	AccountName   string  `db:"account_name" json:"account_name"`
	AccountType   string  `db:"account_type" json:"account_type"`
	TotalDebit    float64 `db:"total_debit" json:"total_debit"`
	TotalCredit   float64 `db:"total_credit" json:"total_credit"`
}

type TrialBalanceReport struct {
	TenantID     string                `json:"tenant_id"`
	AsOfDate     time.Time             `json:"as_of_date"`
	Accounts     []TrialBalanceAccount `json:"accounts"`
	TotalDebits  float64               `json:"total_debits"`
	TotalCredits float64               `json:"total_credits"`
	IsBalanced   bool                  `json:"is_balanced"`
}
