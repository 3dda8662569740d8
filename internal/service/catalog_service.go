package service

import (
    "context"
    "mime/multipart"
    "time"

    "github.com/google/uuid"

    "github.com/d60-Lab/cinegraph/config"
    "github.com/d60-Lab/cinegraph/internal/model"
    "github.com/d60-Lab/cinegraph/internal/repository"
    "github.com/d60-Lab/cinegraph/pkg/upload"
)

// MovieInput 创建/更新电影的入参，关联按 id 列表整体替换
type MovieInput struct {
    Title       string
    Description string
    ReleaseDate *time.Time
    GenreIDs    []string
    ActorIDs    []string
    DirectorIDs []string
}

type SeriesInput struct {
    Title       string
    Description string
    StartYear   int
    EndYear     *int
    GenreIDs    []string
}

// CatalogService 目录 CRUD。写操作的管理员门禁由路由层的 AdminRequired 中间件承担。
type CatalogService interface {
    CreateGenre(ctx context.Context, name string) (*model.Genre, error)
    GetGenre(ctx context.Context, id string) (*model.Genre, error)
    ListGenres(ctx context.Context) ([]*model.Genre, error)
    UpdateGenre(ctx context.Context, id, name string) (*model.Genre, error)
    DeleteGenre(ctx context.Context, id string) error

    CreatePerson(ctx context.Context, name string, birthDate *time.Time) (*model.Person, error)
    GetPerson(ctx context.Context, id string) (*model.Person, error)
    ListPeople(ctx context.Context, offset, limit int) ([]*model.Person, error)
    UpdatePerson(ctx context.Context, id, name string, birthDate *time.Time) (*model.Person, error)
    DeletePerson(ctx context.Context, id string) error
    SetPersonPhoto(ctx context.Context, id string, fh *multipart.FileHeader) (*model.Person, error)

    CreateMovie(ctx context.Context, in MovieInput) (*model.Movie, error)
    GetMovie(ctx context.Context, id string) (*model.Movie, error)
    ListMovies(ctx context.Context, offset, limit int) ([]*model.Movie, error)
    UpdateMovie(ctx context.Context, id string, in MovieInput) (*model.Movie, error)
    DeleteMovie(ctx context.Context, id string) error
    SetMoviePoster(ctx context.Context, id string, fh *multipart.FileHeader) (*model.Movie, error)

    CreateSeries(ctx context.Context, in SeriesInput) (*model.Series, error)
    GetSeries(ctx context.Context, id string) (*model.Series, error)
    ListSeries(ctx context.Context, offset, limit int) ([]*model.Series, error)
    UpdateSeries(ctx context.Context, id string, in SeriesInput) (*model.Series, error)
    DeleteSeries(ctx context.Context, id string) error
}

type catalogService struct {
    repo      repository.CatalogRepository
    uploadCfg config.UploadConfig
}

func NewCatalogService(repo repository.CatalogRepository, uploadCfg config.UploadConfig) CatalogService {
    return &catalogService{repo: repo, uploadCfg: uploadCfg}
}

func (s *catalogService) CreateGenre(ctx context.Context, name string) (*model.Genre, error) {
    g := &model.Genre{ID: uuid.New().String(), Name: name}
    if err := s.repo.CreateGenre(ctx, g); err != nil {
        return nil, err
    }
    return g, nil
}

func (s *catalogService) GetGenre(ctx context.Context, id string) (*model.Genre, error) {
    g, err := s.repo.GetGenre(ctx, id)
    if err != nil {
        return nil, notFoundOr(err)
    }
    return g, nil
}

func (s *catalogService) ListGenres(ctx context.Context) ([]*model.Genre, error) {
    return s.repo.ListGenres(ctx)
}

func (s *catalogService) UpdateGenre(ctx context.Context, id, name string) (*model.Genre, error) {
    g, err := s.GetGenre(ctx, id)
    if err != nil {
        return nil, err
    }
    g.Name = name
    if err := s.repo.UpdateGenre(ctx, g); err != nil {
        return nil, err
    }
    return g, nil
}

func (s *catalogService) DeleteGenre(ctx context.Context, id string) error {
    if _, err := s.GetGenre(ctx, id); err != nil {
        return err
    }
    return s.repo.DeleteGenre(ctx, id)
}

func (s *catalogService) CreatePerson(ctx context.Context, name string, birthDate *time.Time) (*model.Person, error) {
    p := &model.Person{ID: uuid.New().String(), Name: name, BirthDate: birthDate}
    if err := s.repo.CreatePerson(ctx, p); err != nil {
        return nil, err
    }
    return p, nil
}

func (s *catalogService) GetPerson(ctx context.Context, id string) (*model.Person, error) {
    p, err := s.repo.GetPerson(ctx, id)
    if err != nil {
        return nil, notFoundOr(err)
    }
    return p, nil
}

func (s *catalogService) ListPeople(ctx context.Context, offset, limit int) ([]*model.Person, error) {
    return s.repo.ListPeople(ctx, offset, limit)
}

func (s *catalogService) UpdatePerson(ctx context.Context, id, name string, birthDate *time.Time) (*model.Person, error) {
    p, err := s.GetPerson(ctx, id)
    if err != nil {
        return nil, err
    }
    p.Name, p.BirthDate = name, birthDate
    if err := s.repo.UpdatePerson(ctx, p); err != nil {
        return nil, err
    }
    return p, nil
}

func (s *catalogService) DeletePerson(ctx context.Context, id string) error {
    if _, err := s.GetPerson(ctx, id); err != nil {
        return err
    }
    return s.repo.DeletePerson(ctx, id)
}

func (s *catalogService) SetPersonPhoto(ctx context.Context, id string, fh *multipart.FileHeader) (*model.Person, error) {
    p, err := s.GetPerson(ctx, id)
    if err != nil {
        return nil, err
    }
    path, err := upload.SaveImage(fh, s.uploadCfg.Dir, "person", s.uploadCfg.MaxBytes)
    if err != nil {
        return nil, err
    }
    p.Photo = path
    if err := s.repo.UpdatePerson(ctx, p); err != nil {
        return nil, err
    }
    return p, nil
}

func (s *catalogService) CreateMovie(ctx context.Context, in MovieInput) (*model.Movie, error) {
    genres, actors, directors, err := s.resolveMovieRefs(ctx, in)
    if err != nil {
        return nil, err
    }
    m := &model.Movie{
        ID:          uuid.New().String(),
        Title:       in.Title,
        Description: in.Description,
        ReleaseDate: in.ReleaseDate,
        Genres:      genres,
        Actors:      actors,
        Directors:   directors,
    }
    if err := s.repo.CreateMovie(ctx, m); err != nil {
        return nil, err
    }
    return s.GetMovie(ctx, m.ID)
}

func (s *catalogService) GetMovie(ctx context.Context, id string) (*model.Movie, error) {
    m, err := s.repo.GetMovie(ctx, id)
    if err != nil {
        return nil, notFoundOr(err)
    }
    return m, nil
}

func (s *catalogService) ListMovies(ctx context.Context, offset, limit int) ([]*model.Movie, error) {
    return s.repo.ListMovies(ctx, offset, limit)
}

func (s *catalogService) UpdateMovie(ctx context.Context, id string, in MovieInput) (*model.Movie, error) {
    m, err := s.GetMovie(ctx, id)
    if err != nil {
        return nil, err
    }
    genres, actors, directors, err := s.resolveMovieRefs(ctx, in)
    if err != nil {
        return nil, err
    }
    m.Title, m.Description, m.ReleaseDate = in.Title, in.Description, in.ReleaseDate
    if err := s.repo.UpdateMovie(ctx, m); err != nil {
        return nil, err
    }
    if err := s.repo.ReplaceMovieAssociations(ctx, m, genres, actors, directors); err != nil {
        return nil, err
    }
    return s.GetMovie(ctx, id)
}

func (s *catalogService) DeleteMovie(ctx context.Context, id string) error {
    if _, err := s.GetMovie(ctx, id); err != nil {
        return err
    }
    return s.repo.DeleteMovie(ctx, id)
}

func (s *catalogService) SetMoviePoster(ctx context.Context, id string, fh *multipart.FileHeader) (*model.Movie, error) {
    m, err := s.GetMovie(ctx, id)
    if err != nil {
        return nil, err
    }
    path, err := upload.SaveImage(fh, s.uploadCfg.Dir, "movie", s.uploadCfg.MaxBytes)
    if err != nil {
        return nil, err
    }
    m.Poster = path
    if err := s.repo.UpdateMovie(ctx, m); err != nil {
        return nil, err
    }
    return m, nil
}

func (s *catalogService) CreateSeries(ctx context.Context, in SeriesInput) (*model.Series, error) {
    genres, err := s.resolveGenres(ctx, in.GenreIDs)
    if err != nil {
        return nil, err
    }
    sr := &model.Series{
        ID:          uuid.New().String(),
        Title:       in.Title,
        Description: in.Description,
        StartYear:   in.StartYear,
        EndYear:     in.EndYear,
        Genres:      genres,
    }
    if err := s.repo.CreateSeries(ctx, sr); err != nil {
        return nil, err
    }
    return s.GetSeries(ctx, sr.ID)
}

func (s *catalogService) GetSeries(ctx context.Context, id string) (*model.Series, error) {
    sr, err := s.repo.GetSeries(ctx, id)
    if err != nil {
        return nil, notFoundOr(err)
    }
    return sr, nil
}

func (s *catalogService) ListSeries(ctx context.Context, offset, limit int) ([]*model.Series, error) {
    return s.repo.ListSeries(ctx, offset, limit)
}

func (s *catalogService) UpdateSeries(ctx context.Context, id string, in SeriesInput) (*model.Series, error) {
    sr, err := s.GetSeries(ctx, id)
    if err != nil {
        return nil, err
    }
    genres, err := s.resolveGenres(ctx, in.GenreIDs)
    if err != nil {
        return nil, err
    }
    sr.Title, sr.Description, sr.StartYear, sr.EndYear = in.Title, in.Description, in.StartYear, in.EndYear
    if err := s.repo.UpdateSeries(ctx, sr); err != nil {
        return nil, err
    }
    if err := s.repo.ReplaceSeriesGenres(ctx, sr, genres); err != nil {
        return nil, err
    }
    return s.GetSeries(ctx, id)
}

func (s *catalogService) DeleteSeries(ctx context.Context, id string) error {
    if _, err := s.GetSeries(ctx, id); err != nil {
        return err
    }
    return s.repo.DeleteSeries(ctx, id)
}

func (s *catalogService) resolveGenres(ctx context.Context, ids []string) ([]model.Genre, error) {
    genres, err := s.repo.GetGenresByIDs(ctx, ids)
    if err != nil {
        return nil, err
    }
    if len(genres) != len(ids) {
        return nil, ErrNotFound
    }
    return genres, nil
}

func (s *catalogService) resolveMovieRefs(ctx context.Context, in MovieInput) ([]model.Genre, []model.Person, []model.Person, error) {
    genres, err := s.resolveGenres(ctx, in.GenreIDs)
    if err != nil {
        return nil, nil, nil, err
    }
    actors, err := s.repo.GetPeopleByIDs(ctx, in.ActorIDs)
    if err != nil {
        return nil, nil, nil, err
    }
    if len(actors) != len(in.ActorIDs) {
        return nil, nil, nil, ErrNotFound
    }
    directors, err := s.repo.GetPeopleByIDs(ctx, in.DirectorIDs)
    if err != nil {
        return nil, nil, nil, err
    }
    if len(directors) != len(in.DirectorIDs) {
        return nil, nil, nil, ErrNotFound
    }
    return genres, actors, directors, nil
}
