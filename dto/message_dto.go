package dto

// MessageDTO is a message row left-joined to its author's username.
type MessageDTO struct {
	ID      uint    `json:"id" gorm:"column:id"`
	Content string  `json:"content" gorm:"column:content"`
	Author  *string `json:"author,omitempty" gorm:"column:author"`
}

// AuthorName returns the author's username, or "" when the message has none.
func (m MessageDTO) AuthorName() string {
	if m.Author == nil {
		return ""
	}
	return *m.Author
}
