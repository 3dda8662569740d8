package service

import (
    "context"
    "errors"
    "mime/multipart"

    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/config"
    "github.com/d60-Lab/cinegraph/internal/model"
    "github.com/d60-Lab/cinegraph/internal/repository"
    "github.com/d60-Lab/cinegraph/pkg/upload"
)

var (
    ErrDuplicateFavorite = errors.New("already in favorites")
    ErrNotFavorite       = errors.New("not in favorites")
)

// FavoriteKind 收藏目标种类
type FavoriteKind string

const (
    FavoriteGenre  FavoriteKind = "genre"
    FavoriteMovie  FavoriteKind = "movie"
    FavoriteSeries FavoriteKind = "series"
)

type ProfileService interface {
    Get(ctx context.Context, id string) (*model.Profile, error)
    GetByUserID(ctx context.Context, userID string) (*model.Profile, error)
    List(ctx context.Context, offset, limit int) ([]*model.Profile, error)
    Update(ctx context.Context, actor *model.User, profile *model.Profile) error
    SetAvatar(ctx context.Context, actor *model.User, profileID string, fh *multipart.FileHeader) (*model.Profile, error)
    AddFavorite(ctx context.Context, actor *model.User, profileID string, kind FavoriteKind, targetID string) error
    RemoveFavorite(ctx context.Context, actor *model.User, profileID string, kind FavoriteKind, targetID string) error
    // Counts 返回 (following, followers)，投影里用
    Counts(ctx context.Context, profileID string) (int64, int64, error)
}

type profileService struct {
    profileRepo repository.ProfileRepository
    followRepo  repository.FollowRepository
    catalogRepo repository.CatalogRepository
    perm        PermissionService
    uploadCfg   config.UploadConfig
}

func NewProfileService(profileRepo repository.ProfileRepository, followRepo repository.FollowRepository,
    catalogRepo repository.CatalogRepository, perm PermissionService, uploadCfg config.UploadConfig) ProfileService {
    return &profileService{
        profileRepo: profileRepo,
        followRepo:  followRepo,
        catalogRepo: catalogRepo,
        perm:        perm,
        uploadCfg:   uploadCfg,
    }
}

func (s *profileService) Get(ctx context.Context, id string) (*model.Profile, error) {
    p, err := s.profileRepo.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrProfileNotFound
        }
        return nil, err
    }
    return p, nil
}

func (s *profileService) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
    p, err := s.profileRepo.GetByUserID(ctx, userID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrProfileNotFound
        }
        return nil, err
    }
    return p, nil
}

func (s *profileService) List(ctx context.Context, offset, limit int) ([]*model.Profile, error) {
    return s.profileRepo.List(ctx, offset, limit)
}

func (s *profileService) Update(ctx context.Context, actor *model.User, profile *model.Profile) error {
    if !s.perm.CanModifyProfile(actor, profile) {
        return ErrForbidden
    }
    return s.profileRepo.Update(ctx, profile)
}

func (s *profileService) SetAvatar(ctx context.Context, actor *model.User, profileID string, fh *multipart.FileHeader) (*model.Profile, error) {
    profile, err := s.Get(ctx, profileID)
    if err != nil {
        return nil, err
    }
    if !s.perm.CanModifyProfile(actor, profile) {
        return nil, ErrForbidden
    }
    path, err := upload.SaveImage(fh, s.uploadCfg.Dir, "avatar", s.uploadCfg.MaxBytes)
    if err != nil {
        return nil, err
    }
    profile.Avatar = path
    if err := s.profileRepo.Update(ctx, profile); err != nil {
        return nil, err
    }
    return profile, nil
}

func (s *profileService) AddFavorite(ctx context.Context, actor *model.User, profileID string, kind FavoriteKind, targetID string) error {
    profile, assoc, value, err := s.resolveFavorite(ctx, actor, profileID, kind, targetID)
    if err != nil {
        return err
    }
    cnt, err := s.profileRepo.CountFavorite(ctx, profile, assoc, targetID)
    if err != nil {
        return err
    }
    if cnt > 0 {
        return ErrDuplicateFavorite
    }
    return s.profileRepo.AddFavorite(ctx, profile, assoc, value)
}

func (s *profileService) RemoveFavorite(ctx context.Context, actor *model.User, profileID string, kind FavoriteKind, targetID string) error {
    profile, assoc, value, err := s.resolveFavorite(ctx, actor, profileID, kind, targetID)
    if err != nil {
        return err
    }
    cnt, err := s.profileRepo.CountFavorite(ctx, profile, assoc, targetID)
    if err != nil {
        return err
    }
    if cnt == 0 {
        return ErrNotFavorite
    }
    return s.profileRepo.RemoveFavorite(ctx, profile, assoc, value)
}

func (s *profileService) Counts(ctx context.Context, profileID string) (int64, int64, error) {
    following, err := s.followRepo.CountFollowing(ctx, profileID)
    if err != nil {
        return 0, 0, err
    }
    followers, err := s.followRepo.CountFollowers(ctx, profileID)
    if err != nil {
        return 0, 0, err
    }
    return following, followers, nil
}

// resolveFavorite 校验所有权并把 (kind, id) 解析成 gorm 关联与目标实体
func (s *profileService) resolveFavorite(ctx context.Context, actor *model.User, profileID string, kind FavoriteKind, targetID string) (*model.Profile, string, interface{}, error) {
    profile, err := s.Get(ctx, profileID)
    if err != nil {
        return nil, "", nil, err
    }
    if !s.perm.CanModifyProfile(actor, profile) {
        return nil, "", nil, ErrForbidden
    }
    switch kind {
    case FavoriteGenre:
        g, err := s.catalogRepo.GetGenre(ctx, targetID)
        if err != nil {
            return nil, "", nil, notFoundOr(err)
        }
        return profile, repository.AssocFavoriteGenres, g, nil
    case FavoriteMovie:
        m, err := s.catalogRepo.GetMovie(ctx, targetID)
        if err != nil {
            return nil, "", nil, notFoundOr(err)
        }
        return profile, repository.AssocFavoriteMovies, m, nil
    case FavoriteSeries:
        sr, err := s.catalogRepo.GetSeries(ctx, targetID)
        if err != nil {
            return nil, "", nil, notFoundOr(err)
        }
        return profile, repository.AssocFavoriteSeries, sr, nil
    default:
        return nil, "", nil, ErrNotFound
    }
}
