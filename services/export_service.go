package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// ExportService renders a group's ledger as an Excel workbook
type ExportService struct {
	groupService      *GroupService
	expenseService    *ExpenseService
	settlementService *SettlementService
	balanceService    *BalanceService
}

// NewExportService creates a new export service
func NewExportService(groupService *GroupService, expenseService *ExpenseService,
	settlementService *SettlementService, balanceService *BalanceService) *ExportService {
	return &ExportService{
		groupService:      groupService,
		expenseService:    expenseService,
		settlementService: settlementService,
		balanceService:    balanceService,
	}
}

// ExportGroupToExcel generates an Excel file with the group's balances,
// expenses and settlements
func (s *ExportService) ExportGroupToExcel(groupID string) (*excelize.File, string, error) {
	group, err := s.groupService.GetGroupByID(groupID)
	if err != nil {
		return nil, "", err
	}

	expenses, err := s.expenseService.GetGroupExpenses(groupID)
	if err != nil {
		return nil, "", err
	}
	settlements, err := s.settlementService.GetGroupSettlements(groupID)
	if err != nil {
		return nil, "", err
	}
	balances, err := s.balanceService.GetGroupBalances(groupID)
	if err != nil {
		return nil, "", err
	}
	debts, err := s.balanceService.GetGroupDebts(groupID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	if err := s.createSummarySheet(f, expenses, balances, debts); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	if err := s.createExpenseSheet(f, expenses); err != nil {
		return nil, "", fmt.Errorf("failed to create expense sheet: %v", err)
	}
	if err := s.createSettlementSheet(f, settlements); err != nil {
		return nil, "", fmt.Errorf("failed to create settlement sheet: %v", err)
	}
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Export_%s.xlsx",
		utils.CleanFileName(group.Name),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createSummarySheet writes per-member totals and the suggested transfers
func (s *ExportService) createSummarySheet(f *excelize.File, expenses []*models.Expense,
	balances []models.NetBalance, debts []models.Debt) error {

	sheetName := "Summary"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	paid := make(map[string]float64)
	owed := make(map[string]float64)
	for _, expense := range expenses {
		paid[expense.PaidBy] += expense.Amount
		for _, split := range expense.Splits {
			owed[split.UserID] += split.OwedAmount
		}
	}

	headers := []string{"Member", "Total Paid", "Total Owed", "Net Balance"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	row := 2
	for _, balance := range balances {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), balance.UserName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), utils.Round(paid[balance.UserID]))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), utils.Round(owed[balance.UserID]))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), balance.Amount)
		row++
	}

	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Suggested transfers")
	row++
	for _, debt := range debts {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), debt.FromUserName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "pays")
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), debt.ToUserName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), debt.Amount)
		row++
	}
	return nil
}

// createExpenseSheet writes one row per expense
func (s *ExportService) createExpenseSheet(f *excelize.File, expenses []*models.Expense) error {
	sheetName := "Expenses"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	headers := []string{"Date", "Description", "Paid By", "Split Type", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, expense := range expenses {
		row := i + 2
		date := time.UnixMilli(expense.CreationTime).Format("2006-01-02")
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.PaidByName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.SplitType)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.Amount)
	}
	return nil
}

// createSettlementSheet writes one row per settlement
func (s *ExportService) createSettlementSheet(f *excelize.File, settlements []*models.Settlement) error {
	sheetName := "Settlements"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	headers := []string{"Date", "From", "To", "Amount", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, settlement := range settlements {
		row := i + 2
		date := time.UnixMilli(settlement.CreationTime).Format("2006-01-02")
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), settlement.FromUserName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), settlement.ToUserName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), settlement.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), settlement.Status)
	}
	return nil
}
