package models

// User represents a registered account. Rows are never updated or deleted.
type User struct {
	ID           uint   `gorm:"primaryKey;column:id"`
	Username     string `gorm:"uniqueIndex;not null;column:username"`
	PasswordHash string `gorm:"not null;column:password_hash"`
}

// TableName overrides the table name used by User to `users`
func (User) TableName() string {
	return "users"
}
