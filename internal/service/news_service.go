package service

import (
    "context"
    "mime/multipart"

    "github.com/google/uuid"

    "github.com/d60-Lab/cinegraph/config"
    "github.com/d60-Lab/cinegraph/internal/model"
    "github.com/d60-Lab/cinegraph/internal/repository"
    "github.com/d60-Lab/cinegraph/pkg/upload"
)

type NewsService interface {
    Create(ctx context.Context, authorID, title, content string, isPublished bool) (*model.News, error)
    Get(ctx context.Context, id string) (*model.News, error)
    List(ctx context.Context, offset, limit int) ([]*model.News, error)
    Update(ctx context.Context, actorID, newsID, title, content string, isPublished bool) (*model.News, error)
    Delete(ctx context.Context, actorID, newsID string) error
    SetImage(ctx context.Context, actorID, newsID string, fh *multipart.FileHeader) (*model.News, error)
}

type newsService struct {
    newsRepo  repository.NewsRepository
    perm      PermissionService
    uploadCfg config.UploadConfig
}

func NewNewsService(newsRepo repository.NewsRepository, perm PermissionService, uploadCfg config.UploadConfig) NewsService {
    return &newsService{newsRepo: newsRepo, perm: perm, uploadCfg: uploadCfg}
}

func (s *newsService) Create(ctx context.Context, authorID, title, content string, isPublished bool) (*model.News, error) {
    n := &model.News{
        ID:          uuid.New().String(),
        AuthorID:    authorID,
        Title:       title,
        Content:     content,
        IsPublished: isPublished,
    }
    if err := s.newsRepo.Create(ctx, n); err != nil {
        return nil, err
    }
    return s.newsRepo.GetByID(ctx, n.ID)
}

func (s *newsService) Get(ctx context.Context, id string) (*model.News, error) {
    n, err := s.newsRepo.GetByID(ctx, id)
    if err != nil {
        return nil, notFoundOr(err)
    }
    return n, nil
}

func (s *newsService) List(ctx context.Context, offset, limit int) ([]*model.News, error) {
    return s.newsRepo.List(ctx, offset, limit)
}

func (s *newsService) Update(ctx context.Context, actorID, newsID, title, content string, isPublished bool) (*model.News, error) {
    n, err := s.Get(ctx, newsID)
    if err != nil {
        return nil, err
    }
    ok, err := s.perm.CanModifyNews(ctx, actorID, n)
    if err != nil {
        return nil, err
    }
    if !ok {
        return nil, ErrForbidden
    }
    n.Title, n.Content, n.IsPublished = title, content, isPublished
    if err := s.newsRepo.Update(ctx, n); err != nil {
        return nil, err
    }
    return n, nil
}

func (s *newsService) Delete(ctx context.Context, actorID, newsID string) error {
    n, err := s.Get(ctx, newsID)
    if err != nil {
        return err
    }
    ok, err := s.perm.CanModifyNews(ctx, actorID, n)
    if err != nil {
        return err
    }
    if !ok {
        return ErrForbidden
    }
    return s.newsRepo.Delete(ctx, newsID)
}

func (s *newsService) SetImage(ctx context.Context, actorID, newsID string, fh *multipart.FileHeader) (*model.News, error) {
    n, err := s.Get(ctx, newsID)
    if err != nil {
        return nil, err
    }
    ok, err := s.perm.CanModifyNews(ctx, actorID, n)
    if err != nil {
        return nil, err
    }
    if !ok {
        return nil, ErrForbidden
    }
    path, err := upload.SaveImage(fh, s.uploadCfg.Dir, "news", s.uploadCfg.MaxBytes)
    if err != nil {
        return nil, err
    }
    n.Image = path
    if err := s.newsRepo.Update(ctx, n); err != nil {
        return nil, err
    }
    return n, nil
}
