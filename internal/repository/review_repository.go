package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
)

type ReviewRepository interface {
    Create(ctx context.Context, rv *model.Review) error
    GetByID(ctx context.Context, id string) (*model.Review, error)
    List(ctx context.Context, movieID string, offset, limit int) ([]*model.Review, error)
    Update(ctx context.Context, rv *model.Review) error
    Delete(ctx context.Context, id string) error

    CreateComment(ctx context.Context, c *model.Comment) error
    GetComment(ctx context.Context, id string) (*model.Comment, error)
    ListComments(ctx context.Context, reviewID string) ([]*model.Comment, error)
    UpdateComment(ctx context.Context, c *model.Comment) error
    DeleteComment(ctx context.Context, id string) error

    CreateLike(ctx context.Context, reviewID, userID string) (*model.ReviewLike, error)
    GetLike(ctx context.Context, id string) (*model.ReviewLike, error)
    DeleteLike(ctx context.Context, id string) error
    CountLikes(ctx context.Context, reviewID string) (int64, error)
}

type reviewRepository struct{ db *gorm.DB }

func NewReviewRepository(db *gorm.DB) ReviewRepository { return &reviewRepository{db: db} }

func (r *reviewRepository) Create(ctx context.Context, rv *model.Review) error {
    return r.db.WithContext(ctx).Create(rv).Error
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
    var rv model.Review
    err := r.db.WithContext(ctx).
        Preload("Author").
        Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
        Preload("Comments.Author").
        First(&rv, "id = ?", id).Error
    if err != nil {
        return nil, err
    }
    return &rv, nil
}

func (r *reviewRepository) List(ctx context.Context, movieID string, offset, limit int) ([]*model.Review, error) {
    q := r.db.WithContext(ctx).
        Preload("Author").
        Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
        Preload("Comments.Author").
        Order("created_at DESC")
    if movieID != "" {
        q = q.Where("movie_id = ?", movieID)
    }
    var res []*model.Review
    err := q.Offset(offset).Limit(limit).Find(&res).Error
    return res, err
}

func (r *reviewRepository) Update(ctx context.Context, rv *model.Review) error {
    return r.db.WithContext(ctx).Model(rv).Select("Title", "Content", "Rating").Updates(rv).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
    return r.db.WithContext(ctx).Delete(&model.Review{}, "id = ?", id).Error
}

func (r *reviewRepository) CreateComment(ctx context.Context, c *model.Comment) error {
    return r.db.WithContext(ctx).Create(c).Error
}

func (r *reviewRepository) GetComment(ctx context.Context, id string) (*model.Comment, error) {
    var c model.Comment
    if err := r.db.WithContext(ctx).Preload("Author").First(&c, "id = ?", id).Error; err != nil {
        return nil, err
    }
    return &c, nil
}

func (r *reviewRepository) ListComments(ctx context.Context, reviewID string) ([]*model.Comment, error) {
    var res []*model.Comment
    err := r.db.WithContext(ctx).
        Preload("Author").
        Where("review_id = ?", reviewID).
        Order("created_at, id").
        Find(&res).Error
    return res, err
}

func (r *reviewRepository) UpdateComment(ctx context.Context, c *model.Comment) error {
    return r.db.WithContext(ctx).Model(c).Select("Content").Updates(c).Error
}

func (r *reviewRepository) DeleteComment(ctx context.Context, id string) error {
    return r.db.WithContext(ctx).Delete(&model.Comment{}, "id = ?", id).Error
}

// CreateLike 重复点赞依赖 (review_id, user_id) 唯一键冲突上浮
func (r *reviewRepository) CreateLike(ctx context.Context, reviewID, userID string) (*model.ReviewLike, error) {
    like := &model.ReviewLike{ID: uuid.New().String(), ReviewID: reviewID, UserID: userID}
    if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
        return nil, err
    }
    return like, nil
}

func (r *reviewRepository) GetLike(ctx context.Context, id string) (*model.ReviewLike, error) {
    var l model.ReviewLike
    if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
        return nil, err
    }
    return &l, nil
}

func (r *reviewRepository) DeleteLike(ctx context.Context, id string) error {
    return r.db.WithContext(ctx).Delete(&model.ReviewLike{}, "id = ?", id).Error
}

// CountLikes 每次读都重新计数，不在 review 行上冗余
func (r *reviewRepository) CountLikes(ctx context.Context, reviewID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.ReviewLike{}).
        Where("review_id = ?", reviewID).Count(&cnt).Error
    return cnt, err
}
