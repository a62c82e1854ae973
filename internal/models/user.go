package models

// User represents a registered account. The password column holds a bcrypt
// hash, never the plaintext.
type User struct {
	Base
	Username string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password string    `gorm:"size:200;not null" json:"-"`
	Expenses []Expense `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Sessions []Session `gorm:"foreignKey:UserID" json:"-"`
}
