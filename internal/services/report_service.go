package services

import (
	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
)

// reportService computes aggregates over a user's ledger.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// TotalAndCount returns the sum of amounts and the number of records for
// the user. An empty ledger yields 0/0, never null.
func (s *reportService) TotalAndCount(userID uint) (int64, int64, error) {
	var total int64
	if err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error; err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var count int64
	if err := s.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return total, count, nil
}

// TotalsByCategory returns one row per distinct category with the sum of
// that category's amounts. Grouping is exact string match; row order is
// unspecified.
func (s *reportService) TotalsByCategory(userID uint) ([]CategoryTotal, error) {
	var totals []CategoryTotal
	if err := s.db.Model(&models.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Group("category").
		Scan(&totals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return totals, nil
}
