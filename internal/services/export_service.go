package services

import (
	"encoding/csv"
	"io"
	"strconv"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/money"
)

// exportService serializes a user's ledger to CSV.
type exportService struct {
	expenses ExpenseServicer
}

// NewExportService creates a new ExportServicer on top of the ledger.
func NewExportService(expenses ExpenseServicer) ExportServicer {
	return &exportService{expenses: expenses}
}

// exportHeader is the fixed CSV header row.
var exportHeader = []string{"ID", "Amount", "Category", "Description", "Date"}

// WriteCSV writes the user's expenses as CSV: the fixed header followed by
// one row per record in the ledger's native listing order. Amounts are
// rendered as decimals, dates as YYYY-MM-DD.
func (s *exportService) WriteCSV(w io.Writer, userID uint) error {
	expenses, err := s.expenses.ListForUser(userID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, e := range expenses {
		row := []string{
			strconv.FormatUint(uint64(e.ID), 10),
			money.Format(e.Amount),
			e.Category,
			e.Description,
			e.Date.Format("2006-01-02"),
		}
		if err := writer.Write(row); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
