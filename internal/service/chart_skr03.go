package service

import "accounting-ledger/internal/models"

// ChartTypeSKR03 is the only supported standard chart template. The catalog
// below is a working subset of the DATEV SKR03 numbering.
const ChartTypeSKR03 = "skr03"

type seedAccount struct {
	Number      string
	Name        string
	AccountType string
	Class       string
	TaxRelevant bool
	TaxCode     string
}

var standardChartSKR03 = []seedAccount{
	// Anlagevermögen
	{Number: "0410", Name: "Betriebs- und Geschäftsausstattung", AccountType: models.AccountTypeAsset, Class: "Anlagevermögen"},
	{Number: "0480", Name: "Geringwertige Wirtschaftsgüter", AccountType: models.AccountTypeAsset, Class: "Anlagevermögen"},
	{Number: "0027", Name: "EDV-Software", AccountType: models.AccountTypeAsset, Class: "Anlagevermögen"},

	// Umlaufvermögen
	{Number: "1000", Name: "Kasse", AccountType: models.AccountTypeAsset, Class: "Umlaufvermögen"},
	{Number: "1200", Name: "Bank", AccountType: models.AccountTypeAsset, Class: "Umlaufvermögen"},
	{Number: "1400", Name: "Forderungen aus Lieferungen und Leistungen", AccountType: models.AccountTypeAsset, Class: "Umlaufvermögen"},
	{Number: "0996", Name: "Pauschalwertberichtigung auf Forderungen", AccountType: models.AccountTypeContraAsset, Class: "Umlaufvermögen"},
	{Number: "1571", Name: "Abziehbare Vorsteuer 7%", AccountType: models.AccountTypeAsset, Class: "Steuerkonten", TaxRelevant: true, TaxCode: "VST7"},
	{Number: "1576", Name: "Abziehbare Vorsteuer 19%", AccountType: models.AccountTypeAsset, Class: "Steuerkonten", TaxRelevant: true, TaxCode: "VST19"},

	// Eigenkapital
	{Number: "0800", Name: "Gezeichnetes Kapital", AccountType: models.AccountTypeEquity, Class: "Eigenkapital"},
	{Number: "1800", Name: "Privatentnahmen", AccountType: models.AccountTypeEquity, Class: "Eigenkapital"},
	{Number: "1890", Name: "Privateinlagen", AccountType: models.AccountTypeEquity, Class: "Eigenkapital"},

	// Fremdkapital
	{Number: "1600", Name: "Verbindlichkeiten aus Lieferungen und Leistungen", AccountType: models.AccountTypeLiability, Class: "Fremdkapital"},
	{Number: "1741", Name: "Verbindlichkeiten aus Lohn und Gehalt", AccountType: models.AccountTypeLiability, Class: "Fremdkapital"},
	{Number: "1771", Name: "Umsatzsteuer 7%", AccountType: models.AccountTypeLiability, Class: "Steuerkonten", TaxRelevant: true, TaxCode: "UST7"},
	{Number: "1776", Name: "Umsatzsteuer 19%", AccountType: models.AccountTypeLiability, Class: "Steuerkonten", TaxRelevant: true, TaxCode: "UST19"},

	// Erlöse
	{Number: "8120", Name: "Steuerfreie Umsätze §4 Nr. 1a UStG", AccountType: models.AccountTypeRevenue, Class: "Erlöse", TaxRelevant: true, TaxCode: "UST0"},
	{Number: "8300", Name: "Erlöse 7% USt", AccountType: models.AccountTypeRevenue, Class: "Erlöse", TaxRelevant: true, TaxCode: "UST7"},
	{Number: "8400", Name: "Erlöse 19% USt", AccountType: models.AccountTypeRevenue, Class: "Erlöse", TaxRelevant: true, TaxCode: "UST19"},

	// Aufwendungen
	{Number: "3400", Name: "Wareneingang 19% Vorsteuer", AccountType: models.AccountTypeExpense, Class: "Aufwendungen", TaxRelevant: true, TaxCode: "VST19"},
	{Number: "4120", Name: "Gehälter", AccountType: models.AccountTypeExpense, Class: "Aufwendungen"},
	{Number: "4130", Name: "Gesetzliche soziale Aufwendungen", AccountType: models.AccountTypeExpense, Class: "Aufwendungen"},
	{Number: "4210", Name: "Miete", AccountType: models.AccountTypeExpense, Class: "Aufwendungen"},
	{Number: "4240", Name: "Gas, Strom, Wasser", AccountType: models.AccountTypeExpense, Class: "Aufwendungen"},
	{Number: "4360", Name: "Versicherungen", AccountType: models.AccountTypeExpense, Class: "Aufwendungen"},
	{Number: "4500", Name: "Fahrzeugkosten", AccountType: models.AccountTypeExpense, Class: "Aufwendungen"},
	{Number: "4600", Name: "Werbekosten", AccountType: models.AccountTypeExpense, Class: "Aufwendungen"},
	{Number: "4930", Name: "Bürobedarf", AccountType: models.AccountTypeExpense, Class: "Aufwendungen"},
	{Number: "4955", Name: "Buchführungskosten", AccountType: models.AccountTypeExpense, Class: "Aufwendungen"},
	{Number: "4970", Name: "Nebenkosten des Geldverkehrs", AccountType: models.AccountTypeExpense, Class: "Aufwendungen"},
	{Number: "4980", Name: "Betriebsbedarf", AccountType: models.AccountTypeExpense, Class: "Aufwendungen"},
}
