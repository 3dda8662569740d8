package service

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
    "github.com/d60-Lab/cinegraph/internal/repository"
)

var ErrForbidden = errors.New("forbidden")

// PermissionService 按对象种类显式鉴权（闭集，不做运行时属性探测）。
// 会话/私信按参与者成员资格判定，影评/评论/新闻按作者或管理员判定，
// profile 只有本人可改，目录写操作只看管理员标志。
type PermissionService interface {
    IsAdmin(ctx context.Context, userID string) (bool, error)
    CanAccessChat(ctx context.Context, userID, chatID string) (bool, error)
    CanModifyProfile(actor *model.User, target *model.Profile) bool
    CanModifyReview(ctx context.Context, userID string, rv *model.Review) (bool, error)
    CanModifyComment(ctx context.Context, userID string, c *model.Comment) (bool, error)
    CanModifyNews(ctx context.Context, userID string, n *model.News) (bool, error)
}

type permissionService struct {
    userRepo repository.UserRepository
    chatRepo repository.ChatRepository
}

func NewPermissionService(userRepo repository.UserRepository, chatRepo repository.ChatRepository) PermissionService {
    return &permissionService{userRepo: userRepo, chatRepo: chatRepo}
}

func (s *permissionService) IsAdmin(ctx context.Context, userID string) (bool, error) {
    user, err := s.userRepo.GetByID(ctx, userID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return false, nil
        }
        return false, err
    }
    return user.IsAdmin(), nil
}

func (s *permissionService) CanAccessChat(ctx context.Context, userID, chatID string) (bool, error) {
    return s.chatRepo.IsParticipant(ctx, chatID, userID)
}

func (s *permissionService) CanModifyProfile(actor *model.User, target *model.Profile) bool {
    return actor != nil && target != nil && target.UserID == actor.ID
}

func (s *permissionService) CanModifyReview(ctx context.Context, userID string, rv *model.Review) (bool, error) {
    return s.authorOrAdmin(ctx, userID, rv.AuthorID)
}

func (s *permissionService) CanModifyComment(ctx context.Context, userID string, c *model.Comment) (bool, error) {
    return s.authorOrAdmin(ctx, userID, c.AuthorID)
}

func (s *permissionService) CanModifyNews(ctx context.Context, userID string, n *model.News) (bool, error) {
    return s.authorOrAdmin(ctx, userID, n.AuthorID)
}

func (s *permissionService) authorOrAdmin(ctx context.Context, userID, authorID string) (bool, error) {
    if userID == authorID {
        return true, nil
    }
    return s.IsAdmin(ctx, userID)
}
