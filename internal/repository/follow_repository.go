package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
)

type FollowRepository interface {
    Create(ctx context.Context, followerID, followeeID string) error
    Delete(ctx context.Context, followerID, followeeID string) (int64, error)
    Exists(ctx context.Context, followerID, followeeID string) (bool, error)
    // 以下三个都从同一张边表反查，返回边对应的 User 投影
    ListFollowing(ctx context.Context, profileID string) ([]*model.User, error)
    ListFollowers(ctx context.Context, profileID string) ([]*model.User, error)
    ListFriends(ctx context.Context, profileID string) ([]*model.User, error)
    CountFollowing(ctx context.Context, profileID string) (int64, error)
    CountFollowers(ctx context.Context, profileID string) (int64, error)
}

type followRepository struct{ db *gorm.DB }

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

// Create 重复关注依赖唯一键冲突上浮 gorm.ErrDuplicatedKey，由 service 翻译
func (r *followRepository) Create(ctx context.Context, followerID, followeeID string) error {
    f := &model.Follow{ID: uuid.New().String(), FollowerID: followerID, FolloweeID: followeeID}
    return r.db.WithContext(ctx).Create(f).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID string) (int64, error) {
    res := r.db.WithContext(ctx).
        Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
        Delete(&model.Follow{})
    return res.RowsAffected, res.Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Follow{}).
        Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, profileID string) ([]*model.User, error) {
    var res []*model.User
    err := r.db.WithContext(ctx).
        Model(&model.User{}).
        Joins("JOIN profiles ON profiles.user_id = users.id").
        Joins("JOIN follows ON follows.followee_id = profiles.id").
        Where("follows.follower_id = ?", profileID).
        Find(&res).Error
    return res, err
}

func (r *followRepository) ListFollowers(ctx context.Context, profileID string) ([]*model.User, error) {
    var res []*model.User
    err := r.db.WithContext(ctx).
        Model(&model.User{}).
        Joins("JOIN profiles ON profiles.user_id = users.id").
        Joins("JOIN follows ON follows.follower_id = profiles.id").
        Where("follows.followee_id = ?", profileID).
        Find(&res).Error
    return res, err
}

func (r *followRepository) CountFollowing(ctx context.Context, profileID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", profileID).Count(&cnt).Error
    return cnt, err
}

func (r *followRepository) CountFollowers(ctx context.Context, profileID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("followee_id = ?", profileID).Count(&cnt).Error
    return cnt, err
}

// ListFriends 好友 = 互相关注，边表自连接取交集
func (r *followRepository) ListFriends(ctx context.Context, profileID string) ([]*model.User, error) {
    var res []*model.User
    err := r.db.WithContext(ctx).
        Model(&model.User{}).
        Joins("JOIN profiles ON profiles.user_id = users.id").
        Joins("JOIN follows f1 ON f1.followee_id = profiles.id").
        Joins("JOIN follows f2 ON f2.follower_id = f1.followee_id AND f2.followee_id = f1.follower_id").
        Where("f1.follower_id = ?", profileID).
        Find(&res).Error
    return res, err
}
