package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai_manager_backend/internal/models"
	"ai_manager_backend/internal/repositories"
	"ai_manager_backend/pkg/utils"

	"github.com/shopspring/decimal"
)

var (
	ErrFinanceRecordNotFound = errors.New("finance record not found")
	ErrInvalidReportPeriod   = errors.New("invalid report period, month must be between 1 and 12")
)

// trendMonths is how many calendar months the trend series cover, current month included.
const trendMonths = 3

type CreateFinanceRecordRequest struct {
	Type        string           `json:"type"`
	Amount      *utils.FlexFloat `json:"amount"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Date        *string          `json:"date"`
}

type UpdateFinanceRecordRequest struct {
	Type        *string          `json:"type"`
	Amount      *utils.FlexFloat `json:"amount"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
}

type FinanceService interface {
	ListRecords(ctx context.Context) ([]models.FinanceRecord, error)
	GetRecord(ctx context.Context, id string) (models.FinanceRecord, error)
	CreateRecord(ctx context.Context, req CreateFinanceRecordRequest) (models.FinanceRecord, error)
	UpdateRecord(ctx context.Context, id string, req UpdateFinanceRecordRequest) (models.FinanceRecord, error)
	DeleteRecord(ctx context.Context, id string) (models.FinanceRecord, error)
	// Overview totals revenue and expenses for today, this month and this year.
	Overview(ctx context.Context) (models.FinanceOverview, error)
	MonthlyReport(ctx context.Context, year, month int) (models.MonthlyReport, error)
	Trends(ctx context.Context) (models.FinanceTrends, error)
}

type financeService struct {
	records repositories.Collection[models.FinanceRecord]
	now     func() time.Time
}

// NewFinanceService creates a new instance of FinanceService.
func NewFinanceService(records repositories.Collection[models.FinanceRecord]) FinanceService {
	return &financeService{records: records, now: time.Now}
}

func (s *financeService) ListRecords(ctx context.Context) ([]models.FinanceRecord, error) {
	list, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list finance records: %w", err)
	}
	return list, nil
}

func (s *financeService) GetRecord(ctx context.Context, id string) (models.FinanceRecord, error) {
	rec, err := s.records.Get(ctx, id)
	if err != nil {
		return models.FinanceRecord{}, notFoundOr(err, ErrFinanceRecordNotFound, "get finance record")
	}
	return rec, nil
}

func (s *financeService) CreateRecord(ctx context.Context, req CreateFinanceRecordRequest) (models.FinanceRecord, error) {
	now := s.now()
	date := now
	if parsed := parseOptionalDateTime(req.Date, "date"); parsed != nil {
		date = *parsed
	}

	rec := models.FinanceRecord{
		ID:          newID("fin"),
		Type:        models.FinanceType(req.Type),
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
		CreatedAt:   now,
	}
	if req.Amount != nil {
		rec.Amount = req.Amount.Float64()
	}

	created, err := s.records.Create(ctx, rec)
	if err != nil {
		return models.FinanceRecord{}, fmt.Errorf("failed to create finance record: %w", err)
	}
	utils.LogInfo("Finance record created", map[string]interface{}{"record_id": created.ID, "type": created.Type})
	return created, nil
}

func (s *financeService) UpdateRecord(ctx context.Context, id string, req UpdateFinanceRecordRequest) (models.FinanceRecord, error) {
	date := parseOptionalDateTime(req.Date, "date")

	updated, err := s.records.Modify(ctx, id, func(rec *models.FinanceRecord) error {
		if req.Type != nil {
			rec.Type = models.FinanceType(*req.Type)
		}
		if req.Amount != nil {
			rec.Amount = req.Amount.Float64()
		}
		applyString(&rec.Category, req.Category)
		applyString(&rec.Description, req.Description)
		if date != nil {
			rec.Date = *date
		}
		return nil
	})
	if err != nil {
		return models.FinanceRecord{}, notFoundOr(err, ErrFinanceRecordNotFound, "update finance record")
	}
	return updated, nil
}

func (s *financeService) DeleteRecord(ctx context.Context, id string) (models.FinanceRecord, error) {
	removed, err := s.records.Delete(ctx, id)
	if err != nil {
		return models.FinanceRecord{}, notFoundOr(err, ErrFinanceRecordNotFound, "delete finance record")
	}
	utils.LogInfo("Finance record deleted", map[string]interface{}{"record_id": id})
	return removed, nil
}

// ledger accumulates revenue and expenses.
type ledger struct {
	revenue  decimal.Decimal
	expenses decimal.Decimal
}

func (l *ledger) add(rec models.FinanceRecord) {
	amount := decimal.NewFromFloat(rec.Amount)
	switch rec.Type {
	case models.FinanceRevenue:
		l.revenue = l.revenue.Add(amount)
	case models.FinanceExpense:
		l.expenses = l.expenses.Add(amount)
	}
}

func (l ledger) profit() decimal.Decimal {
	return l.revenue.Sub(l.expenses)
}

func (s *financeService) Overview(ctx context.Context) (models.FinanceOverview, error) {
	list, err := s.ListRecords(ctx)
	if err != nil {
		return models.FinanceOverview{}, err
	}

	now := s.now()
	var daily, monthly, yearly ledger
	for _, rec := range list {
		d := rec.Date.In(now.Location())
		if d.Year() != now.Year() {
			continue
		}
		yearly.add(rec)
		if d.Month() != now.Month() {
			continue
		}
		monthly.add(rec)
		if d.Day() == now.Day() {
			daily.add(rec)
		}
	}

	return models.FinanceOverview{
		Revenue:  models.PeriodTotals{Daily: toFloat(daily.revenue), Monthly: toFloat(monthly.revenue), Yearly: toFloat(yearly.revenue)},
		Expenses: models.PeriodTotals{Daily: toFloat(daily.expenses), Monthly: toFloat(monthly.expenses), Yearly: toFloat(yearly.expenses)},
		Profit:   models.PeriodTotals{Daily: toFloat(daily.profit()), Monthly: toFloat(monthly.profit()), Yearly: toFloat(yearly.profit())},
	}, nil
}

func (s *financeService) MonthlyReport(ctx context.Context, year, month int) (models.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return models.MonthlyReport{}, ErrInvalidReportPeriod
	}
	list, err := s.ListRecords(ctx)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	loc := s.now().Location()
	var totals ledger
	records := []models.FinanceRecord{}
	for _, rec := range list {
		d := rec.Date.In(loc)
		if d.Year() == year && int(d.Month()) == month {
			totals.add(rec)
			records = append(records, rec)
		}
	}

	return models.MonthlyReport{
		Period:   fmt.Sprintf("%d-%02d", year, month),
		Revenue:  toFloat(totals.revenue),
		Expenses: toFloat(totals.expenses),
		Profit:   toFloat(totals.profit()),
		Records:  records,
	}, nil
}

func (s *financeService) Trends(ctx context.Context) (models.FinanceTrends, error) {
	list, err := s.ListRecords(ctx)
	if err != nil {
		return models.FinanceTrends{}, err
	}

	now := s.now()
	type bucket struct {
		label string
		ledger
	}
	buckets := make([]bucket, trendMonths)
	index := map[string]int{}
	for i := 0; i < trendMonths; i++ {
		first := time.Date(now.Year(), now.Month()-time.Month(trendMonths-1-i), 1, 0, 0, 0, 0, now.Location())
		buckets[i].label = first.Format("Jan")
		index[first.Format("2006-01")] = i
	}
	for _, rec := range list {
		if i, ok := index[rec.Date.In(now.Location()).Format("2006-01")]; ok {
			buckets[i].add(rec)
		}
	}

	trends := models.FinanceTrends{
		Revenue:  make([]models.TrendPoint, 0, trendMonths),
		Expenses: make([]models.TrendPoint, 0, trendMonths),
		Profit:   make([]models.TrendPoint, 0, trendMonths),
	}
	for _, b := range buckets {
		trends.Revenue = append(trends.Revenue, models.TrendPoint{Month: b.label, Amount: toFloat(b.revenue)})
		trends.Expenses = append(trends.Expenses, models.TrendPoint{Month: b.label, Amount: toFloat(b.expenses)})
		trends.Profit = append(trends.Profit, models.TrendPoint{Month: b.label, Amount: toFloat(b.profit())})
	}
	return trends, nil
}
