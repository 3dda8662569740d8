package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
)

// CatalogRepository 参考数据（电影/剧集/类型/影人）的读写
type CatalogRepository interface {
    CreateGenre(ctx context.Context, g *model.Genre) error
    GetGenre(ctx context.Context, id string) (*model.Genre, error)
    GetGenresByIDs(ctx context.Context, ids []string) ([]model.Genre, error)
    GetGenresByNames(ctx context.Context, names []string) ([]model.Genre, error)
    ListGenres(ctx context.Context) ([]*model.Genre, error)
    UpdateGenre(ctx context.Context, g *model.Genre) error
    DeleteGenre(ctx context.Context, id string) error

    CreatePerson(ctx context.Context, p *model.Person) error
    GetPerson(ctx context.Context, id string) (*model.Person, error)
    GetPeopleByIDs(ctx context.Context, ids []string) ([]model.Person, error)
    ListPeople(ctx context.Context, offset, limit int) ([]*model.Person, error)
    UpdatePerson(ctx context.Context, p *model.Person) error
    DeletePerson(ctx context.Context, id string) error

    CreateMovie(ctx context.Context, m *model.Movie) error
    GetMovie(ctx context.Context, id string) (*model.Movie, error)
    ListMovies(ctx context.Context, offset, limit int) ([]*model.Movie, error)
    UpdateMovie(ctx context.Context, m *model.Movie) error
    ReplaceMovieAssociations(ctx context.Context, m *model.Movie, genres []model.Genre, actors, directors []model.Person) error
    DeleteMovie(ctx context.Context, id string) error

    CreateSeries(ctx context.Context, s *model.Series) error
    GetSeries(ctx context.Context, id string) (*model.Series, error)
    ListSeries(ctx context.Context, offset, limit int) ([]*model.Series, error)
    UpdateSeries(ctx context.Context, s *model.Series) error
    ReplaceSeriesGenres(ctx context.Context, s *model.Series, genres []model.Genre) error
    DeleteSeries(ctx context.Context, id string) error
}

type catalogRepository struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) CatalogRepository { return &catalogRepository{db: db} }

func (r *catalogRepository) CreateGenre(ctx context.Context, g *model.Genre) error {
    return r.db.WithContext(ctx).Create(g).Error
}

func (r *catalogRepository) GetGenre(ctx context.Context, id string) (*model.Genre, error) {
    var g model.Genre
    if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
        return nil, err
    }
    return &g, nil
}

func (r *catalogRepository) GetGenresByIDs(ctx context.Context, ids []string) ([]model.Genre, error) {
    var res []model.Genre
    if len(ids) == 0 {
        return res, nil
    }
    err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
    return res, err
}

func (r *catalogRepository) GetGenresByNames(ctx context.Context, names []string) ([]model.Genre, error) {
    var res []model.Genre
    if len(names) == 0 {
        return res, nil
    }
    err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&res).Error
    return res, err
}

func (r *catalogRepository) ListGenres(ctx context.Context) ([]*model.Genre, error) {
    var res []*model.Genre
    err := r.db.WithContext(ctx).Order("name").Find(&res).Error
    return res, err
}

func (r *catalogRepository) UpdateGenre(ctx context.Context, g *model.Genre) error {
    return r.db.WithContext(ctx).Save(g).Error
}

func (r *catalogRepository) DeleteGenre(ctx context.Context, id string) error {
    return r.db.WithContext(ctx).Delete(&model.Genre{}, "id = ?", id).Error
}

func (r *catalogRepository) CreatePerson(ctx context.Context, p *model.Person) error {
    return r.db.WithContext(ctx).Create(p).Error
}

func (r *catalogRepository) GetPerson(ctx context.Context, id string) (*model.Person, error) {
    var p model.Person
    if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *catalogRepository) GetPeopleByIDs(ctx context.Context, ids []string) ([]model.Person, error) {
    var res []model.Person
    if len(ids) == 0 {
        return res, nil
    }
    err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
    return res, err
}

func (r *catalogRepository) ListPeople(ctx context.Context, offset, limit int) ([]*model.Person, error) {
    var res []*model.Person
    err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("name").Find(&res).Error
    return res, err
}

func (r *catalogRepository) UpdatePerson(ctx context.Context, p *model.Person) error {
    return r.db.WithContext(ctx).Save(p).Error
}

func (r *catalogRepository) DeletePerson(ctx context.Context, id string) error {
    return r.db.WithContext(ctx).Delete(&model.Person{}, "id = ?", id).Error
}

func (r *catalogRepository) CreateMovie(ctx context.Context, m *model.Movie) error {
    return r.db.WithContext(ctx).Create(m).Error
}

func (r *catalogRepository) GetMovie(ctx context.Context, id string) (*model.Movie, error) {
    var m model.Movie
    err := r.db.WithContext(ctx).
        Preload("Genres").Preload("Actors").Preload("Directors").
        First(&m, "id = ?", id).Error
    if err != nil {
        return nil, err
    }
    return &m, nil
}

func (r *catalogRepository) ListMovies(ctx context.Context, offset, limit int) ([]*model.Movie, error) {
    var res []*model.Movie
    err := r.db.WithContext(ctx).
        Preload("Genres").Preload("Actors").Preload("Directors").
        Offset(offset).Limit(limit).Order("title").Find(&res).Error
    return res, err
}

func (r *catalogRepository) UpdateMovie(ctx context.Context, m *model.Movie) error {
    return r.db.WithContext(ctx).Model(m).
        Select("Title", "Description", "ReleaseDate", "Poster").Updates(m).Error
}

// ReplaceMovieAssociations 整体替换电影的类型/演员/导演关联
func (r *catalogRepository) ReplaceMovieAssociations(ctx context.Context, m *model.Movie, genres []model.Genre, actors, directors []model.Person) error {
    return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Model(m).Association("Genres").Replace(genres); err != nil {
            return err
        }
        if err := tx.Model(m).Association("Actors").Replace(actors); err != nil {
            return err
        }
        return tx.Model(m).Association("Directors").Replace(directors)
    })
}

func (r *catalogRepository) DeleteMovie(ctx context.Context, id string) error {
    return r.db.WithContext(ctx).Delete(&model.Movie{}, "id = ?", id).Error
}

func (r *catalogRepository) CreateSeries(ctx context.Context, s *model.Series) error {
    return r.db.WithContext(ctx).Create(s).Error
}

func (r *catalogRepository) GetSeries(ctx context.Context, id string) (*model.Series, error) {
    var s model.Series
    if err := r.db.WithContext(ctx).Preload("Genres").First(&s, "id = ?", id).Error; err != nil {
        return nil, err
    }
    return &s, nil
}

func (r *catalogRepository) ListSeries(ctx context.Context, offset, limit int) ([]*model.Series, error) {
    var res []*model.Series
    err := r.db.WithContext(ctx).Preload("Genres").Offset(offset).Limit(limit).Order("title").Find(&res).Error
    return res, err
}

func (r *catalogRepository) UpdateSeries(ctx context.Context, s *model.Series) error {
    return r.db.WithContext(ctx).Model(s).
        Select("Title", "Description", "StartYear", "EndYear", "Poster").Updates(s).Error
}

func (r *catalogRepository) ReplaceSeriesGenres(ctx context.Context, s *model.Series, genres []model.Genre) error {
    return r.db.WithContext(ctx).Model(s).Association("Genres").Replace(genres)
}

func (r *catalogRepository) DeleteSeries(ctx context.Context, id string) error {
    return r.db.WithContext(ctx).Delete(&model.Series{}, "id = ?", id).Error
}
