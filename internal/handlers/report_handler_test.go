package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/services"
)

// --- mock report service ---

type mockReportService struct {
	totalAndCountFn    func(userID uint) (int64, int64, error)
	totalsByCategoryFn func(userID uint) ([]services.CategoryTotal, error)
}

func (m *mockReportService) TotalAndCount(userID uint) (int64, int64, error) {
	if m.totalAndCountFn != nil {
		return m.totalAndCountFn(userID)
	}
	return 0, 0, nil
}

func (m *mockReportService) TotalsByCategory(userID uint) ([]services.CategoryTotal, error) {
	if m.totalsByCategoryFn != nil {
		return m.totalsByCategoryFn(userID)
	}
	return []services.CategoryTotal{}, nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/dashboard", handler.Dashboard)
	return r
}

func TestReportHandler_Dashboard(t *testing.T) {
	t.Run("returns total, count, and category buckets", func(t *testing.T) {
		svc := &mockReportService{
			totalAndCountFn: func(userID uint) (int64, int64, error) {
				return 7000, 2, nil
			},
			totalsByCategoryFn: func(userID uint) ([]services.CategoryTotal, error) {
				return []services.CategoryTotal{
					{Category: "food", Total: 5000},
					{Category: "transport", Total: 2000},
				}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doGet(r, "/dashboard")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		result := parseJSON(t, rec)
		if result["total"] != "70.00" {
			t.Errorf("expected total 70.00, got %v", result["total"])
		}
		if result["count"] != float64(2) {
			t.Errorf("expected count 2, got %v", result["count"])
		}

		categories := result["categories"].([]interface{})
		if len(categories) != 2 {
			t.Fatalf("expected 2 category rows, got %d", len(categories))
		}
		byName := map[string]string{}
		for _, raw := range categories {
			row := raw.(map[string]interface{})
			byName[row["category"].(string)] = row["total"].(string)
		}
		if byName["food"] != "50.00" || byName["transport"] != "20.00" {
			t.Errorf("unexpected category buckets: %v", byName)
		}
	})

	t.Run("empty ledger reports zero", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doGet(r, "/dashboard")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["total"] != "0.00" {
			t.Errorf("expected total 0.00, got %v", result["total"])
		}
		if result["count"] != float64(0) {
			t.Errorf("expected count 0, got %v", result["count"])
		}
	})
}
