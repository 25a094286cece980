package service

import (
	"accounting-ledger/internal/models"
	"fmt"

	"github.com/xuri/excelize/v2"
)

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// ExportTrialBalance writes a trial balance report to an Excel file
func (s *ExportService) ExportTrialBalance(report *models.TrialBalanceReport, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Trial Balance"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", "Trial Balance")
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("As of %s", report.AsOfDate.Format("2006-01-02")))

	// Set headers
	headers := []string{"Account Number", "Account Name", "Account Type", "Total Debit", "Total Credit"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s4", columnName(i))
		f.SetCellValue(sheetName, cell, header)
	}

	// Set header style
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A4", fmt.Sprintf("%s4", columnName(len(headers)-1)), headerStyle)

	// Write data
	row := 5
	for _, account := range report.Accounts {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), account.AccountNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), account.AccountName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), account.AccountType)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), account.TotalDebit)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), account.TotalCredit)
		row++
	}

	// Totals row
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), report.TotalDebits)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), report.TotalCredits)

	balancedStr := "No"
	if report.IsBalanced {
		balancedStr = "Yes"
	}
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row+1), "Balanced")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row+1), balancedStr)

	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), totalStyle)

	// Set column widths
	f.SetColWidth(sheetName, "A", "A", 16)
	f.SetColWidth(sheetName, "B", "B", 40)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "E", 14)

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(filePath)
}

// columnName converts a zero-based column index to its Excel letter.
func columnName(index int) string {
	name, _ := excelize.ColumnNumberToName(index + 1)
	return name
}
