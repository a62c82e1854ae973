package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/money"
	"spendtrack/internal/services"
)

// ExpenseHandler handles ledger CRUD requests.
type ExpenseHandler struct {
	expenses services.ExpenseServicer
	audit    services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenses services.ExpenseServicer, audit services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, audit: audit}
}

// ExpenseForm represents the add/edit expense form payload. Amount and date
// arrive as strings and are validated by the custom binding rules before
// being parsed.
type ExpenseForm struct {
	Amount      string `form:"amount" binding:"required,amount"`
	Category    string `form:"category" binding:"required,max=100"`
	Description string `form:"description" binding:"max=200"`
	Date        string `form:"date" binding:"required,dateonly"`
}

// RangeForm represents the date-range filter payload.
type RangeForm struct {
	StartDate string `form:"start_date" binding:"required,dateonly"`
	EndDate   string `form:"end_date" binding:"required,dateonly"`
}

// ExpenseResponse represents one expense in a response body.
type ExpenseResponse struct {
	ID          uint   `json:"id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func toExpenseResponse(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Amount:      money.Format(e.Amount),
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date.Format(dateLayout),
	}
}

// AddExpenseForm describes the add-expense form.
func (h *ExpenseHandler) AddExpenseForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"action": "/add_expense",
		"fields": []string{"amount", "category", "description", "date"},
	})
}

// AddExpense handles the add-expense form submission and redirects to the
// dashboard on success.
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseForm
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid amount"))
		return
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenses.Add(userID, amount, req.Category, req.Description, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(userID, "expense.add", "expense", expense.ID, c.ClientIP(), map[string]any{
		"amount":   money.Format(expense.Amount),
		"category": expense.Category,
	})
	c.Redirect(http.StatusFound, "/dashboard")
}

// ViewExpenses returns the user's full ledger, unordered.
func (h *ExpenseHandler) ViewExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenses.ListForUser(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.respondWithExpenses(c, expenses)
}

// FilterExpenses returns the user's expenses within an inclusive date range.
func (h *ExpenseHandler) FilterExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RangeForm
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenses.ListForUserInRange(userID, start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.respondWithExpenses(c, expenses)
}

func (h *ExpenseHandler) respondWithExpenses(c *gin.Context, expenses []models.Expense) {
	resp := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		resp = append(resp, toExpenseResponse(&expenses[i]))
	}
	c.JSON(http.StatusOK, gin.H{"expenses": resp})
}

// EditExpenseForm returns the record being edited so the client can prefill
// the form.
func (h *ExpenseHandler) EditExpenseForm(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenses.Get(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": toExpenseResponse(expense)})
}

// EditExpense overwrites all fields of an expense and redirects to the
// listing on success.
func (h *ExpenseHandler) EditExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseForm
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid amount"))
		return
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenses.Update(userID, expenseID, amount, req.Category, req.Description, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(userID, "expense.edit", "expense", expense.ID, c.ClientIP(), map[string]any{
		"amount":   money.Format(expense.Amount),
		"category": expense.Category,
	})
	c.Redirect(http.StatusFound, "/view_expenses")
}

// DeleteExpense removes an expense and redirects to the listing.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenses.Delete(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(userID, "expense.delete", "expense", expenseID, c.ClientIP(), nil)
	c.Redirect(http.StatusFound, "/view_expenses")
}
