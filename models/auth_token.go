package models

// AuthToken maps an opaque session token to the user it was issued for.
// Tokens carry no expiry; they live until logout deletes them.
type AuthToken struct {
	Token  string `gorm:"primaryKey;column:token"`
	UserID uint   `gorm:"not null;column:user_id"`
}

// TableName overrides the table name used by GORM
func (AuthToken) TableName() string {
	return "auth_tokens"
}
