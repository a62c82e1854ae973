package models

import "time"

// Session is a server-side login session. The client holds the opaque token
// in a cookie; only its SHA-256 digest is persisted, so a database leak does
// not hand out usable tokens.
type Session struct {
	TokenHash string    `gorm:"primaryKey;size:64" json:"-"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
