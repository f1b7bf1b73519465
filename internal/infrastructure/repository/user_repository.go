package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/somewherelostt/KaizenX/internal/modules/user/model"
)

var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository struct {
	dbWrite *gorm.DB
	dbRead  *gorm.DB
}

func NewUserRepository(dbWrite *gorm.DB, dbRead *gorm.DB) *UserRepository {
	return &UserRepository{dbWrite: dbWrite, dbRead: dbRead}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	err := r.dbWrite.WithContext(ctx).Create(user).Error
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrDuplicateEmail
	}
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.dbRead.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.dbRead.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.dbRead.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	res := r.dbWrite.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":       user.Username,
			"image_url":      user.ImageURL,
			"wallet_address": user.WalletAddress,
			"updated_at":     gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.dbWrite.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
