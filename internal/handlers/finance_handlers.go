package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ai_manager_backend/internal/services"
	"ai_manager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// FinanceHandler holds the finance service.
type FinanceHandler struct {
	financeService services.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(fs services.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: fs}
}

func (h *FinanceHandler) GetRecords(c *gin.Context) {
	records, err := h.financeService.ListRecords(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetRecords: Error from financeService.ListRecords")
		respondInternal(c, "Failed to fetch finance records")
		return
	}
	utils.RespondWithData(c, http.StatusOK, records, gin.H{"count": len(records)})
}

func (h *FinanceHandler) GetRecordByID(c *gin.Context) {
	id := c.Param("id")
	record, err := h.financeService.GetRecord(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrFinanceRecordNotFound) {
			respondNotFound(c, "Finance record not found", err)
			return
		}
		utils.LogError(err, "GetRecordByID: Error from financeService.GetRecord for ID "+id)
		respondInternal(c, "Failed to fetch finance record")
		return
	}
	utils.RespondWithData(c, http.StatusOK, record)
}

func (h *FinanceHandler) CreateRecord(c *gin.Context) {
	var req services.CreateFinanceRecordRequest
	if !bindJSON(c, &req, "CreateRecord") {
		return
	}

	record, err := h.financeService.CreateRecord(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateRecord: Error from financeService.CreateRecord")
		respondInternal(c, "Failed to add finance record")
		return
	}
	utils.RespondWithData(c, http.StatusCreated, record, gin.H{"message": "Finance record added successfully"})
}

func (h *FinanceHandler) UpdateRecord(c *gin.Context) {
	id := c.Param("id")
	var req services.UpdateFinanceRecordRequest
	if !bindJSON(c, &req, "UpdateRecord") {
		return
	}

	record, err := h.financeService.UpdateRecord(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrFinanceRecordNotFound) {
			respondNotFound(c, "Finance record not found", err)
			return
		}
		utils.LogError(err, "UpdateRecord: Error from financeService.UpdateRecord for ID "+id)
		respondInternal(c, "Failed to update finance record")
		return
	}
	utils.RespondWithData(c, http.StatusOK, record, gin.H{"message": "Finance record updated successfully"})
}

func (h *FinanceHandler) DeleteRecord(c *gin.Context) {
	id := c.Param("id")
	record, err := h.financeService.DeleteRecord(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrFinanceRecordNotFound) {
			respondNotFound(c, "Finance record not found", err)
			return
		}
		utils.LogError(err, "DeleteRecord: Error from financeService.DeleteRecord for ID "+id)
		respondInternal(c, "Failed to delete finance record")
		return
	}
	utils.RespondWithData(c, http.StatusOK, record, gin.H{"message": "Finance record deleted successfully"})
}

// GetOverview handles GET /api/finance/overview.
func (h *FinanceHandler) GetOverview(c *gin.Context) {
	overview, err := h.financeService.Overview(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetOverview: Error from financeService.Overview")
		respondInternal(c, "Failed to fetch finance overview")
		return
	}
	utils.RespondWithData(c, http.StatusOK, overview)
}

// GetMonthlyReport handles GET /api/finance/reports/monthly?year=&month=.
// Missing parameters default to the current month.
func (h *FinanceHandler) GetMonthlyReport(c *gin.Context) {
	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid year parameter", err.Error())
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid month parameter", err.Error())
		return
	}

	report, err := h.financeService.MonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, services.ErrInvalidReportPeriod) {
			respondValidation(c, err)
			return
		}
		utils.LogError(err, "GetMonthlyReport: Error from financeService.MonthlyReport")
		respondInternal(c, "Failed to generate monthly report")
		return
	}
	utils.RespondWithData(c, http.StatusOK, report)
}

// GetTrends handles GET /api/finance/analytics/trends.
func (h *FinanceHandler) GetTrends(c *gin.Context) {
	trends, err := h.financeService.Trends(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetTrends: Error from financeService.Trends")
		respondInternal(c, "Failed to fetch financial trends")
		return
	}
	utils.RespondWithData(c, http.StatusOK, trends)
}
