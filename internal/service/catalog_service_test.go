package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/config"
    "github.com/d60-Lab/cinegraph/internal/repository"
)

func newCatalogFixture(t *testing.T) (CatalogService, *gorm.DB) {
    db := setupTestDB(t)
    svc := NewCatalogService(repository.NewCatalogRepository(db), config.UploadConfig{Dir: t.TempDir(), MaxBytes: 1 << 20})
    return svc, db
}

func TestMovieWithAssociations(t *testing.T) {
    svc, db := newCatalogFixture(t)
    g1 := seedGenre(t, db, "Drama")
    g2 := seedGenre(t, db, "Crime")
    ctx := context.Background()

    actor, err := svc.CreatePerson(ctx, "Al Pacino", nil)
    require.NoError(t, err)
    director, err := svc.CreatePerson(ctx, "Michael Mann", nil)
    require.NoError(t, err)

    m, err := svc.CreateMovie(ctx, MovieInput{
        Title:       "Heat",
        GenreIDs:    []string{g1.ID, g2.ID},
        ActorIDs:    []string{actor.ID},
        DirectorIDs: []string{director.ID},
    })
    require.NoError(t, err)
    assert.Len(t, m.Genres, 2)
    require.Len(t, m.Actors, 1)
    assert.Equal(t, "Al Pacino", m.Actors[0].Name)
    require.Len(t, m.Directors, 1)

    // 更新整体替换关联集合
    m, err = svc.UpdateMovie(ctx, m.ID, MovieInput{
        Title:    "Heat",
        GenreIDs: []string{g1.ID},
    })
    require.NoError(t, err)
    assert.Len(t, m.Genres, 1)
    assert.Empty(t, m.Actors)
}

func TestCreateMovieUnknownGenre(t *testing.T) {
    svc, _ := newCatalogFixture(t)

    _, err := svc.CreateMovie(context.Background(), MovieInput{
        Title:    "Heat",
        GenreIDs: []string{"missing"},
    })
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeriesLifecycle(t *testing.T) {
    svc, db := newCatalogFixture(t)
    g := seedGenre(t, db, "Drama")
    ctx := context.Background()

    end := 2008
    sr, err := svc.CreateSeries(ctx, SeriesInput{
        Title:     "The Wire",
        StartYear: 2002,
        EndYear:   &end,
        GenreIDs:  []string{g.ID},
    })
    require.NoError(t, err)
    require.NotNil(t, sr.EndYear)
    assert.Equal(t, 2008, *sr.EndYear)

    // 连载中的剧集 end_year 可以为空
    sr, err = svc.UpdateSeries(ctx, sr.ID, SeriesInput{
        Title:     "The Wire",
        StartYear: 2002,
        GenreIDs:  []string{g.ID},
    })
    require.NoError(t, err)
    assert.Nil(t, sr.EndYear)

    require.NoError(t, svc.DeleteSeries(ctx, sr.ID))
    _, err = svc.GetSeries(ctx, sr.ID)
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenreUniqueName(t *testing.T) {
    svc, _ := newCatalogFixture(t)
    ctx := context.Background()

    _, err := svc.CreateGenre(ctx, "Drama")
    require.NoError(t, err)
    _, err = svc.CreateGenre(ctx, "Drama")
    assert.Error(t, err)
}
