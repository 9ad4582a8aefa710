package models

import "time"

// FinanceType separates money in from money out.
type FinanceType string

const (
	FinanceRevenue FinanceType = "revenue"
	FinanceExpense FinanceType = "expense"
)

// FinanceRecord is a single ledger line.
type FinanceRecord struct {
	ID          string      `json:"_id"`
	Type        FinanceType `json:"type"`
	Amount      float64     `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// RecordID implements repositories.Record.
func (f FinanceRecord) RecordID() string { return f.ID }

// PeriodTotals holds one measure over the day, month and year windows.
type PeriodTotals struct {
	Daily   float64 `json:"daily"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// FinanceOverview is revenue, expenses and profit over the standard windows.
type FinanceOverview struct {
	Revenue  PeriodTotals `json:"revenue"`
	Expenses PeriodTotals `json:"expenses"`
	Profit   PeriodTotals `json:"profit"`
}

// MonthlyReport summarises one calendar month.
type MonthlyReport struct {
	Period   string          `json:"period"`
	Revenue  float64         `json:"revenue"`
	Expenses float64         `json:"expenses"`
	Profit   float64         `json:"profit"`
	Records  []FinanceRecord `json:"records"`
}

// TrendPoint is an amount for a labelled month.
type TrendPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// FinanceTrends is the month-by-month series for the finance charts.
type FinanceTrends struct {
	Revenue  []TrendPoint `json:"revenue"`
	Expenses []TrendPoint `json:"expenses"`
	Profit   []TrendPoint `json:"profit"`
}
