package repositories

import (
	"context"

	"messageboard/dto"
	"messageboard/models"
)

type UserRepository interface {
	// Create inserts the user and fills in its ID.
	// Returns ErrDuplicateEntry when the username is taken.
	Create(ctx context.Context, user *models.User) error
	// FindByUsername returns ErrNotFound when no user matches exactly.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthTokenRepository interface {
	Create(ctx context.Context, token *models.AuthToken) error
	// Delete removes the token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
	// FindUser joins the token to its user. Returns ErrNotFound for unknown tokens.
	FindUser(ctx context.Context, token string) (*models.SessionUser, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	// List returns every message with its author, in id order.
	List(ctx context.Context) ([]dto.MessageDTO, error)
	// FindByID returns ErrNotFound when no message has the id.
	FindByID(ctx context.Context, id uint) (*dto.MessageDTO, error)
	// UpdateContent overwrites the content of one message and reports whether a row matched.
	UpdateContent(ctx context.Context, id uint, content string) (bool, error)
}
