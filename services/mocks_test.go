package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"messageboard/dto"
	"messageboard/models"
)

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type mockAuthTokenRepository struct{ mock.Mock }

func (m *mockAuthTokenRepository) Create(ctx context.Context, token *models.AuthToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthTokenRepository) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthTokenRepository) FindUser(ctx context.Context, token string) (*models.SessionUser, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*models.SessionUser)
	return user, args.Error(1)
}

type mockMessageRepository struct{ mock.Mock }

func (m *mockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *mockMessageRepository) List(ctx context.Context) ([]dto.MessageDTO, error) {
	args := m.Called(ctx)
	messages, _ := args.Get(0).([]dto.MessageDTO)
	return messages, args.Error(1)
}

func (m *mockMessageRepository) FindByID(ctx context.Context, id uint) (*dto.MessageDTO, error) {
	args := m.Called(ctx, id)
	message, _ := args.Get(0).(*dto.MessageDTO)
	return message, args.Error(1)
}

func (m *mockMessageRepository) UpdateContent(ctx context.Context, id uint, content string) (bool, error) {
	args := m.Called(ctx, id, content)
	return args.Bool(0), args.Error(1)
}
