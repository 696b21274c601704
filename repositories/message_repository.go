package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"messageboard/dto"
	"messageboard/models"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// withAuthor selects messages left-joined to users so authorless rows survive.
func (r *messageRepository) withAuthor(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("messages").
		Select("messages.id, messages.content, users.username AS author").
		Joins("LEFT JOIN users ON users.id = messages.author_id")
}

func (r *messageRepository) List(ctx context.Context) ([]dto.MessageDTO, error) {
	var messages []dto.MessageDTO
	if err := r.withAuthor(ctx).Order("messages.id").Scan(&messages).Error; err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepository) FindByID(ctx context.Context, id uint) (*dto.MessageDTO, error) {
	var message dto.MessageDTO
	err := r.withAuthor(ctx).Where("messages.id = ?", id).Take(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find message %d: %w", id, err)
	}
	return &message, nil
}

func (r *messageRepository) UpdateContent(ctx context.Context, id uint, content string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		return false, fmt.Errorf("update message %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
