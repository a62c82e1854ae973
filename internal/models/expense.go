package models

import "time"

// Expense represents a single spending record owned by a user.
// Amount is stored in cents so aggregation stays exact; negative and zero
// amounts are accepted (refunds, corrections).
type Expense struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Amount      int64     `gorm:"type:bigint;not null" json:"amount"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	Description string    `gorm:"size:200" json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
}
