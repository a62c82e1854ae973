package services

import (
	"io"
	"time"

	"spendtrack/internal/models"
)

// UserServicer defines the contract for credential storage and verification.
type UserServicer interface {
	CreateUser(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// SessionServicer defines the contract for issuing and validating opaque
// session tokens. Tokens are revocable server-side records, so logging out
// invalidates a token immediately.
type SessionServicer interface {
	StartSession(userID uint) (string, error)
	CurrentUser(token string) (uint, error)
	EndSession(token string) error
	PurgeExpired() error
}

// ExpenseServicer defines the contract for the expense ledger. Every point
// operation is scoped by the owning user; a record belonging to someone else
// behaves exactly like a missing record.
type ExpenseServicer interface {
	Add(userID uint, amount int64, category, description string, date time.Time) (*models.Expense, error)
	Get(userID, expenseID uint) (*models.Expense, error)
	ListForUser(userID uint) ([]models.Expense, error)
	ListForUserInRange(userID uint, start, end time.Time) ([]models.Expense, error)
	Update(userID, expenseID uint, amount int64, category, description string, date time.Time) (*models.Expense, error)
	Delete(userID, expenseID uint) error
}

// CategoryTotal is one row of the per-category aggregation.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// ReportServicer defines the contract for aggregate reporting over a user's
// ledger.
type ReportServicer interface {
	TotalAndCount(userID uint) (total int64, count int64, err error)
	TotalsByCategory(userID uint) ([]CategoryTotal, error)
}

// ExportServicer defines the contract for serializing a user's ledger.
type ExportServicer interface {
	WriteCSV(w io.Writer, userID uint) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]any)
}
