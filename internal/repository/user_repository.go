package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
)

type UserRepository interface {
    GetByID(ctx context.Context, id string) (*model.User, error)
    GetByEmail(ctx context.Context, email string) (*model.User, error)
    GetByUsername(ctx context.Context, username string) (*model.User, error)
    List(ctx context.Context, offset, limit int) ([]*model.User, error)
}

type userRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) List(ctx context.Context, offset, limit int) ([]*model.User, error) {
    var res []*model.User
    err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("joined_date").Find(&res).Error
    return res, err
}
