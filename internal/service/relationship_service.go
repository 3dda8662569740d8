package service

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
    "github.com/d60-Lab/cinegraph/internal/repository"
)

var (
    ErrFollowSelf       = errors.New("cannot follow self")
    ErrAlreadyFollowing = errors.New("already following this profile")
    ErrNotFollowing     = errors.New("not following this profile")
    ErrProfileNotFound  = errors.New("profile not found")
)

// RelationshipService 关系链服务
type RelationshipService interface {
    Follow(ctx context.Context, actorProfileID, targetProfileID string) error
    Unfollow(ctx context.Context, actorProfileID, targetProfileID string) error
    ListFollowing(ctx context.Context, profileID string) ([]*model.User, error)
    ListFollowers(ctx context.Context, profileID string) ([]*model.User, error)
    // ListFriends 好友 = following ∩ followers，读时计算不落库
    ListFriends(ctx context.Context, profileID string) ([]*model.User, error)
}

type relationshipService struct {
    followRepo  repository.FollowRepository
    profileRepo repository.ProfileRepository
}

func NewRelationshipService(followRepo repository.FollowRepository, profileRepo repository.ProfileRepository) RelationshipService {
    return &relationshipService{followRepo: followRepo, profileRepo: profileRepo}
}

func (s *relationshipService) Follow(ctx context.Context, actorProfileID, targetProfileID string) error {
    if actorProfileID == targetProfileID {
        return ErrFollowSelf
    }
    if _, err := s.profileRepo.GetByID(ctx, targetProfileID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrProfileNotFound
        }
        return err
    }
    // 唯一键 (follower_id, followee_id) 兜底并发下的重复关注
    if err := s.followRepo.Create(ctx, actorProfileID, targetProfileID); err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            return ErrAlreadyFollowing
        }
        return err
    }
    return nil
}

func (s *relationshipService) Unfollow(ctx context.Context, actorProfileID, targetProfileID string) error {
    if _, err := s.profileRepo.GetByID(ctx, targetProfileID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrProfileNotFound
        }
        return err
    }
    affected, err := s.followRepo.Delete(ctx, actorProfileID, targetProfileID)
    if err != nil {
        return err
    }
    if affected == 0 {
        return ErrNotFollowing
    }
    return nil
}

func (s *relationshipService) ListFollowing(ctx context.Context, profileID string) ([]*model.User, error) {
    if err := s.ensureProfile(ctx, profileID); err != nil {
        return nil, err
    }
    return s.followRepo.ListFollowing(ctx, profileID)
}

func (s *relationshipService) ListFollowers(ctx context.Context, profileID string) ([]*model.User, error) {
    if err := s.ensureProfile(ctx, profileID); err != nil {
        return nil, err
    }
    return s.followRepo.ListFollowers(ctx, profileID)
}

func (s *relationshipService) ListFriends(ctx context.Context, profileID string) ([]*model.User, error) {
    if err := s.ensureProfile(ctx, profileID); err != nil {
        return nil, err
    }
    return s.followRepo.ListFriends(ctx, profileID)
}

func (s *relationshipService) ensureProfile(ctx context.Context, profileID string) error {
    if _, err := s.profileRepo.GetByID(ctx, profileID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrProfileNotFound
        }
        return err
    }
    return nil
}
