package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
)

type NewsRepository interface {
    Create(ctx context.Context, n *model.News) error
    GetByID(ctx context.Context, id string) (*model.News, error)
    List(ctx context.Context, offset, limit int) ([]*model.News, error)
    Update(ctx context.Context, n *model.News) error
    Delete(ctx context.Context, id string) error
}

type newsRepository struct{ db *gorm.DB }

func NewNewsRepository(db *gorm.DB) NewsRepository { return &newsRepository{db: db} }

func (r *newsRepository) Create(ctx context.Context, n *model.News) error {
    return r.db.WithContext(ctx).Create(n).Error
}

func (r *newsRepository) GetByID(ctx context.Context, id string) (*model.News, error) {
    var n model.News
    if err := r.db.WithContext(ctx).Preload("Author").First(&n, "id = ?", id).Error; err != nil {
        return nil, err
    }
    return &n, nil
}

func (r *newsRepository) List(ctx context.Context, offset, limit int) ([]*model.News, error) {
    var res []*model.News
    err := r.db.WithContext(ctx).Preload("Author").
        Order("created_at DESC").Offset(offset).Limit(limit).Find(&res).Error
    return res, err
}

func (r *newsRepository) Update(ctx context.Context, n *model.News) error {
    return r.db.WithContext(ctx).Model(n).
        Select("Title", "Content", "Image", "IsPublished").Updates(n).Error
}

func (r *newsRepository) Delete(ctx context.Context, id string) error {
    return r.db.WithContext(ctx).Delete(&model.News{}, "id = ?", id).Error
}
