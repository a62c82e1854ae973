package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/money"
	"spendtrack/internal/services"
)

// ReportHandler serves the dashboard aggregates.
type ReportHandler struct {
	reports services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports services.ReportServicer) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// CategoryTotalResponse is one per-category row on the dashboard.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// Dashboard returns the user's overall total, record count, and per-category
// sums. Category row order is unspecified.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, count, err := h.reports.TotalAndCount(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	byCategory, err := h.reports.TotalsByCategory(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories := make([]CategoryTotalResponse, 0, len(byCategory))
	for _, row := range byCategory {
		categories = append(categories, CategoryTotalResponse{
			Category: row.Category,
			Total:    money.Format(row.Total),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total":      money.Format(total),
		"count":      count,
		"categories": categories,
	})
}
