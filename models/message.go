package models

// Message represents a message in the system
type Message struct {
	ID       uint   `gorm:"primaryKey;column:id"`
	Content  string `gorm:"not null;column:content"`
	AuthorID *uint  `gorm:"column:author_id"` // nil for legacy or anonymous rows
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "messages"
}
