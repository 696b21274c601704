package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"messageboard/models"
)

type authTokenRepository struct {
	db *gorm.DB
}

func NewAuthTokenRepository(db *gorm.DB) AuthTokenRepository {
	return &authTokenRepository{db: db}
}

func (r *authTokenRepository) Create(ctx context.Context, token *models.AuthToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("%w: %w", ErrDuplicateEntry, err)
		}
		return fmt.Errorf("create auth token for user %d: %w", token.UserID, err)
	}
	return nil
}

func (r *authTokenRepository) Delete(ctx context.Context, token string) error {
	err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.AuthToken{}).Error
	if err != nil {
		return fmt.Errorf("delete auth token: %w", err)
	}
	return nil
}

func (r *authTokenRepository) FindUser(ctx context.Context, token string) (*models.SessionUser, error) {
	var user models.SessionUser
	err := r.db.WithContext(ctx).
		Table("auth_tokens").
		Select("users.id, users.username").
		Joins("INNER JOIN users ON users.id = auth_tokens.user_id").
		Where("auth_tokens.token = ?", token).
		Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by token: %w", err)
	}
	return &user, nil
}
