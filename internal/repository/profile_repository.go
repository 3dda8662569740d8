package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
)

type ProfileRepository interface {
    GetByID(ctx context.Context, id string) (*model.Profile, error)
    GetByUserID(ctx context.Context, userID string) (*model.Profile, error)
    List(ctx context.Context, offset, limit int) ([]*model.Profile, error)
    Update(ctx context.Context, p *model.Profile) error
    AddFavorite(ctx context.Context, p *model.Profile, assoc string, value interface{}) error
    RemoveFavorite(ctx context.Context, p *model.Profile, assoc string, value interface{}) error
    CountFavorite(ctx context.Context, p *model.Profile, assoc string, id string) (int64, error)
}

// 收藏关联名（闭集）
const (
    AssocFavoriteGenres = "FavoriteGenres"
    AssocFavoriteMovies = "FavoriteMovies"
    AssocFavoriteSeries = "FavoriteSeries"
)

type profileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) ProfileRepository { return &profileRepository{db: db} }

func (r *profileRepository) preloaded(ctx context.Context) *gorm.DB {
    return r.db.WithContext(ctx).
        Preload("User").
        Preload("FavoriteGenres").
        Preload("FavoriteMovies").
        Preload("FavoriteMovies.Genres").
        Preload("FavoriteSeries").
        Preload("FavoriteSeries.Genres")
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
    var p model.Profile
    if err := r.preloaded(ctx).First(&p, "id = ?", id).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
    var p model.Profile
    if err := r.preloaded(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *profileRepository) List(ctx context.Context, offset, limit int) ([]*model.Profile, error) {
    var res []*model.Profile
    err := r.preloaded(ctx).Offset(offset).Limit(limit).Order("created_at").Find(&res).Error
    return res, err
}

func (r *profileRepository) Update(ctx context.Context, p *model.Profile) error {
    return r.db.WithContext(ctx).Model(p).Select("Avatar", "Bio", "Gender", "BirthDate").Updates(p).Error
}

func (r *profileRepository) AddFavorite(ctx context.Context, p *model.Profile, assoc string, value interface{}) error {
    return r.db.WithContext(ctx).Model(p).Association(assoc).Append(value)
}

func (r *profileRepository) RemoveFavorite(ctx context.Context, p *model.Profile, assoc string, value interface{}) error {
    return r.db.WithContext(ctx).Model(p).Association(assoc).Delete(value)
}

func (r *profileRepository) CountFavorite(ctx context.Context, p *model.Profile, assoc string, id string) (int64, error) {
    var table, column string
    switch assoc {
    case AssocFavoriteGenres:
        table, column = "profile_favorite_genres", "genre_id"
    case AssocFavoriteMovies:
        table, column = "profile_favorite_movies", "movie_id"
    case AssocFavoriteSeries:
        table, column = "profile_favorite_series", "series_id"
    }
    var cnt int64
    err := r.db.WithContext(ctx).Table(table).
        Where("profile_id = ? AND "+column+" = ?", p.ID, id).
        Count(&cnt).Error
    return cnt, err
}
