package models

// SessionUser is the identity a valid session token resolves to.
// A nil *SessionUser means the request is anonymous.
type SessionUser struct {
	ID       uint   `gorm:"column:id"`
	Username string `gorm:"column:username"`
}
