package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"messageboard/dto"
	"messageboard/models"
	"messageboard/repositories"
)

// MessageService reads and writes board messages.
type MessageService struct {
	messages repositories.MessageRepository
}

func NewMessageService(messages repositories.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// List returns all messages in insertion order.
func (s *MessageService) List(ctx context.Context) ([]dto.MessageDTO, error) {
	messages, err := s.messages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return messages, nil
}

// Post stores content verbatim as a message by user. Anonymous callers get ErrUnauthorized.
func (s *MessageService) Post(ctx context.Context, user *models.SessionUser, content string) (*models.Message, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	authorID := user.ID
	message := &models.Message{Content: content, AuthorID: &authorID}
	if err := s.messages.Create(ctx, message); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Failed to save message")
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return message, nil
}

// Get returns one message with its author, or ErrMessageNotFound.
func (s *MessageService) Get(ctx context.Context, id uint) (*dto.MessageDTO, error) {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return message, nil
}

// Edit overwrites the content of message id and returns the updated row.
// No ownership check is made: any caller may edit any message.
func (s *MessageService) Edit(ctx context.Context, id uint, content string) (*dto.MessageDTO, error) {
	if _, err := s.messages.UpdateContent(ctx, id, content); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return s.Get(ctx, id)
}
