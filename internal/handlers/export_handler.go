package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/services"
)

// ExportHandler serves the CSV download.
type ExportHandler struct {
	export services.ExportServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(export services.ExportServicer) *ExportHandler {
	return &ExportHandler{export: export}
}

// ExportCSV streams the user's ledger as a text/csv attachment named
// expenses.csv. The CSV is built in memory first so an error never leaves a
// half-written response.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.export.WriteCSV(&buf, userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=expenses.csv`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
