package service

import (
    "context"
    "errors"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
    "github.com/d60-Lab/cinegraph/internal/repository"
)

var (
    ErrRatingRange   = errors.New("rating must be between 1 and 5")
    ErrDuplicateLike = errors.New("review already liked")
)

// ReviewWithLikes 投影：likes_count 每次读都重新计数
type ReviewWithLikes struct {
    *model.Review
    LikesCount int64
}

type ReviewService interface {
    Create(ctx context.Context, authorID, movieID, title, content string, rating int) (*ReviewWithLikes, error)
    Get(ctx context.Context, id string) (*ReviewWithLikes, error)
    List(ctx context.Context, movieID string, offset, limit int) ([]*ReviewWithLikes, error)
    Update(ctx context.Context, actorID, reviewID string, title, content string, rating int) (*ReviewWithLikes, error)
    Delete(ctx context.Context, actorID, reviewID string) error

    CreateComment(ctx context.Context, authorID, reviewID, content string) (*model.Comment, error)
    ListComments(ctx context.Context, reviewID string) ([]*model.Comment, error)
    UpdateComment(ctx context.Context, actorID, commentID, content string) (*model.Comment, error)
    DeleteComment(ctx context.Context, actorID, commentID string) error

    Like(ctx context.Context, userID, reviewID string) (*model.ReviewLike, error)
    Unlike(ctx context.Context, actorID, likeID string) error
}

type reviewService struct {
    reviewRepo  repository.ReviewRepository
    catalogRepo repository.CatalogRepository
    perm        PermissionService
}

func NewReviewService(reviewRepo repository.ReviewRepository, catalogRepo repository.CatalogRepository, perm PermissionService) ReviewService {
    return &reviewService{reviewRepo: reviewRepo, catalogRepo: catalogRepo, perm: perm}
}

// Create author 由服务端指定，rating 越界直接拒绝
func (s *reviewService) Create(ctx context.Context, authorID, movieID, title, content string, rating int) (*ReviewWithLikes, error) {
    if rating < 1 || rating > 5 {
        return nil, ErrRatingRange
    }
    if _, err := s.catalogRepo.GetMovie(ctx, movieID); err != nil {
        return nil, notFoundOr(err)
    }
    rv := &model.Review{
        ID:       uuid.New().String(),
        MovieID:  movieID,
        AuthorID: authorID,
        Title:    title,
        Content:  content,
        Rating:   rating,
    }
    if err := s.reviewRepo.Create(ctx, rv); err != nil {
        return nil, err
    }
    return s.Get(ctx, rv.ID)
}

func (s *reviewService) Get(ctx context.Context, id string) (*ReviewWithLikes, error) {
    rv, err := s.reviewRepo.GetByID(ctx, id)
    if err != nil {
        return nil, notFoundOr(err)
    }
    cnt, err := s.reviewRepo.CountLikes(ctx, id)
    if err != nil {
        return nil, err
    }
    return &ReviewWithLikes{Review: rv, LikesCount: cnt}, nil
}

func (s *reviewService) List(ctx context.Context, movieID string, offset, limit int) ([]*ReviewWithLikes, error) {
    reviews, err := s.reviewRepo.List(ctx, movieID, offset, limit)
    if err != nil {
        return nil, err
    }
    res := make([]*ReviewWithLikes, 0, len(reviews))
    for _, rv := range reviews {
        cnt, err := s.reviewRepo.CountLikes(ctx, rv.ID)
        if err != nil {
            return nil, err
        }
        res = append(res, &ReviewWithLikes{Review: rv, LikesCount: cnt})
    }
    return res, nil
}

func (s *reviewService) Update(ctx context.Context, actorID, reviewID string, title, content string, rating int) (*ReviewWithLikes, error) {
    if rating < 1 || rating > 5 {
        return nil, ErrRatingRange
    }
    rv, err := s.reviewRepo.GetByID(ctx, reviewID)
    if err != nil {
        return nil, notFoundOr(err)
    }
    ok, err := s.perm.CanModifyReview(ctx, actorID, rv)
    if err != nil {
        return nil, err
    }
    if !ok {
        return nil, ErrForbidden
    }
    rv.Title, rv.Content, rv.Rating = title, content, rating
    if err := s.reviewRepo.Update(ctx, rv); err != nil {
        return nil, err
    }
    return s.Get(ctx, reviewID)
}

func (s *reviewService) Delete(ctx context.Context, actorID, reviewID string) error {
    rv, err := s.reviewRepo.GetByID(ctx, reviewID)
    if err != nil {
        return notFoundOr(err)
    }
    ok, err := s.perm.CanModifyReview(ctx, actorID, rv)
    if err != nil {
        return err
    }
    if !ok {
        return ErrForbidden
    }
    return s.reviewRepo.Delete(ctx, reviewID)
}

func (s *reviewService) CreateComment(ctx context.Context, authorID, reviewID, content string) (*model.Comment, error) {
    if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
        return nil, notFoundOr(err)
    }
    c := &model.Comment{
        ID:       uuid.New().String(),
        ReviewID: reviewID,
        AuthorID: authorID,
        Content:  content,
    }
    if err := s.reviewRepo.CreateComment(ctx, c); err != nil {
        return nil, err
    }
    return s.reviewRepo.GetComment(ctx, c.ID)
}

func (s *reviewService) ListComments(ctx context.Context, reviewID string) ([]*model.Comment, error) {
    if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
        return nil, notFoundOr(err)
    }
    return s.reviewRepo.ListComments(ctx, reviewID)
}

func (s *reviewService) UpdateComment(ctx context.Context, actorID, commentID, content string) (*model.Comment, error) {
    c, err := s.reviewRepo.GetComment(ctx, commentID)
    if err != nil {
        return nil, notFoundOr(err)
    }
    // 评论只有作者本人可改，管理员也不行
    if c.AuthorID != actorID {
        return nil, ErrForbidden
    }
    c.Content = content
    if err := s.reviewRepo.UpdateComment(ctx, c); err != nil {
        return nil, err
    }
    return c, nil
}

func (s *reviewService) DeleteComment(ctx context.Context, actorID, commentID string) error {
    c, err := s.reviewRepo.GetComment(ctx, commentID)
    if err != nil {
        return notFoundOr(err)
    }
    ok, err := s.perm.CanModifyComment(ctx, actorID, c)
    if err != nil {
        return err
    }
    if !ok {
        return ErrForbidden
    }
    return s.reviewRepo.DeleteComment(ctx, commentID)
}

// Like 重复点赞必须拒绝而不是去重，唯一键闭合并发窗口
func (s *reviewService) Like(ctx context.Context, userID, reviewID string) (*model.ReviewLike, error) {
    if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
        return nil, notFoundOr(err)
    }
    like, err := s.reviewRepo.CreateLike(ctx, reviewID, userID)
    if err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            return nil, ErrDuplicateLike
        }
        return nil, err
    }
    return like, nil
}

func (s *reviewService) Unlike(ctx context.Context, actorID, likeID string) error {
    like, err := s.reviewRepo.GetLike(ctx, likeID)
    if err != nil {
        return notFoundOr(err)
    }
    if like.UserID != actorID {
        return ErrForbidden
    }
    return s.reviewRepo.DeleteLike(ctx, likeID)
}
