package handler

import (
    "time"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/cinegraph/internal/service"
    "github.com/d60-Lab/cinegraph/pkg/response"
)

type genreRequest struct {
    Name string `json:"name" binding:"required,max=100"`
}

type personRequest struct {
    Name      string  `json:"name" binding:"required,max=100"`
    BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

type movieRequest struct {
    Title       string   `json:"title" binding:"required,max=100"`
    Description string   `json:"description"`
    ReleaseDate *string  `json:"release_date" binding:"omitempty,datetime=2006-01-02"`
    GenreIDs    []string `json:"genres"`
    ActorIDs    []string `json:"actors"`
    DirectorIDs []string `json:"directors"`
}

type seriesRequest struct {
    Title       string   `json:"title" binding:"required,max=200"`
    Description string   `json:"description"`
    StartYear   int      `json:"start_year" binding:"required,year"`
    EndYear     *int     `json:"end_year" binding:"omitempty,year"`
    GenreIDs    []string `json:"genres"`
}

func parseDate(s *string) *time.Time {
    if s == nil {
        return nil
    }
    t, err := time.Parse("2006-01-02", *s)
    if err != nil {
        return nil
    }
    return &t
}

// CreateGenre 新建类型
// @Summary 新建类型（管理员）
// @Tags 目录
// @Accept json
// @Produce json
// @Param request body genreRequest true "类型"
// @Success 201 {object} response.Response{data=model.Genre}
// @Failure 403 {object} response.Response
// @Router /api/v1/genres [post]
func (h *Handler) CreateGenre(c *gin.Context) {
    var req genreRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    g, err := h.catalogService.CreateGenre(c.Request.Context(), req.Name)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Created(c, g)
}

// ListGenres 类型列表
// @Summary 类型列表
// @Tags 目录
// @Success 200 {object} response.Response{data=[]model.Genre}
// @Router /api/v1/genres [get]
func (h *Handler) ListGenres(c *gin.Context) {
    genres, err := h.catalogService.ListGenres(c.Request.Context())
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, genres)
}

// GetGenre 类型详情
// @Summary 类型详情
// @Tags 目录
// @Param id path string true "类型 ID"
// @Success 200 {object} response.Response{data=model.Genre}
// @Failure 404 {object} response.Response
// @Router /api/v1/genres/{id} [get]
func (h *Handler) GetGenre(c *gin.Context) {
    g, err := h.catalogService.GetGenre(c.Request.Context(), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, g)
}

// UpdateGenre 更新类型
// @Summary 更新类型（管理员）
// @Tags 目录
// @Accept json
// @Produce json
// @Param id path string true "类型 ID"
// @Param request body genreRequest true "类型"
// @Success 200 {object} response.Response{data=model.Genre}
// @Failure 403 {object} response.Response
// @Router /api/v1/genres/{id} [put]
func (h *Handler) UpdateGenre(c *gin.Context) {
    var req genreRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    g, err := h.catalogService.UpdateGenre(c.Request.Context(), c.Param("id"), req.Name)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, g)
}

// DeleteGenre 删除类型
// @Summary 删除类型（管理员）
// @Tags 目录
// @Param id path string true "类型 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/genres/{id} [delete]
func (h *Handler) DeleteGenre(c *gin.Context) {
    if err := h.catalogService.DeleteGenre(c.Request.Context(), c.Param("id")); err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, nil)
}

// CreatePerson 新建影人
// @Summary 新建影人（管理员）
// @Tags 目录
// @Accept json
// @Produce json
// @Param request body personRequest true "影人"
// @Success 201 {object} response.Response{data=model.Person}
// @Failure 403 {object} response.Response
// @Router /api/v1/people [post]
func (h *Handler) CreatePerson(c *gin.Context) {
    var req personRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    p, err := h.catalogService.CreatePerson(c.Request.Context(), req.Name, parseDate(req.BirthDate))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Created(c, p)
}

// ListPeople 影人列表
// @Summary 影人列表
// @Tags 目录
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=[]model.Person}
// @Router /api/v1/people [get]
func (h *Handler) ListPeople(c *gin.Context) {
    offset, limit := pagination(c)
    people, err := h.catalogService.ListPeople(c.Request.Context(), offset, limit)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, people)
}

// GetPerson 影人详情
// @Summary 影人详情
// @Tags 目录
// @Param id path string true "影人 ID"
// @Success 200 {object} response.Response{data=model.Person}
// @Failure 404 {object} response.Response
// @Router /api/v1/people/{id} [get]
func (h *Handler) GetPerson(c *gin.Context) {
    p, err := h.catalogService.GetPerson(c.Request.Context(), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, p)
}

// UpdatePerson 更新影人
// @Summary 更新影人（管理员）
// @Tags 目录
// @Accept json
// @Produce json
// @Param id path string true "影人 ID"
// @Param request body personRequest true "影人"
// @Success 200 {object} response.Response{data=model.Person}
// @Failure 403 {object} response.Response
// @Router /api/v1/people/{id} [put]
func (h *Handler) UpdatePerson(c *gin.Context) {
    var req personRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    p, err := h.catalogService.UpdatePerson(c.Request.Context(), c.Param("id"), req.Name, parseDate(req.BirthDate))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, p)
}

// DeletePerson 删除影人
// @Summary 删除影人（管理员）
// @Tags 目录
// @Param id path string true "影人 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/people/{id} [delete]
func (h *Handler) DeletePerson(c *gin.Context) {
    if err := h.catalogService.DeletePerson(c.Request.Context(), c.Param("id")); err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, nil)
}

// SetPersonPhoto 上传影人照片
// @Summary 上传影人照片（管理员）
// @Tags 目录
// @Accept multipart/form-data
// @Param id path string true "影人 ID"
// @Param photo formData file true "照片"
// @Success 200 {object} response.Response{data=model.Person}
// @Failure 400 {object} response.Response
// @Router /api/v1/people/{id}/photo [put]
func (h *Handler) SetPersonPhoto(c *gin.Context) {
    fh, err := c.FormFile("photo")
    if err != nil {
        response.BadRequest(c, "photo file is required")
        return
    }
    p, err := h.catalogService.SetPersonPhoto(c.Request.Context(), c.Param("id"), fh)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, p)
}

// CreateMovie 新建电影
// @Summary 新建电影（管理员）
// @Tags 目录
// @Accept json
// @Produce json
// @Param request body movieRequest true "电影"
// @Success 201 {object} response.Response{data=model.Movie}
// @Failure 403 {object} response.Response
// @Router /api/v1/movies [post]
func (h *Handler) CreateMovie(c *gin.Context) {
    var req movieRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    m, err := h.catalogService.CreateMovie(c.Request.Context(), service.MovieInput{
        Title:       req.Title,
        Description: req.Description,
        ReleaseDate: parseDate(req.ReleaseDate),
        GenreIDs:    req.GenreIDs,
        ActorIDs:    req.ActorIDs,
        DirectorIDs: req.DirectorIDs,
    })
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Created(c, m)
}

// ListMovies 电影列表
// @Summary 电影列表
// @Tags 目录
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=[]model.Movie}
// @Router /api/v1/movies [get]
func (h *Handler) ListMovies(c *gin.Context) {
    offset, limit := pagination(c)
    movies, err := h.catalogService.ListMovies(c.Request.Context(), offset, limit)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, movies)
}

// GetMovie 电影详情
// @Summary 电影详情
// @Tags 目录
// @Param id path string true "电影 ID"
// @Success 200 {object} response.Response{data=model.Movie}
// @Failure 404 {object} response.Response
// @Router /api/v1/movies/{id} [get]
func (h *Handler) GetMovie(c *gin.Context) {
    m, err := h.catalogService.GetMovie(c.Request.Context(), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, m)
}

// UpdateMovie 更新电影
// @Summary 更新电影（管理员），关联整体替换
// @Tags 目录
// @Accept json
// @Produce json
// @Param id path string true "电影 ID"
// @Param request body movieRequest true "电影"
// @Success 200 {object} response.Response{data=model.Movie}
// @Failure 403 {object} response.Response
// @Router /api/v1/movies/{id} [put]
func (h *Handler) UpdateMovie(c *gin.Context) {
    var req movieRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    m, err := h.catalogService.UpdateMovie(c.Request.Context(), c.Param("id"), service.MovieInput{
        Title:       req.Title,
        Description: req.Description,
        ReleaseDate: parseDate(req.ReleaseDate),
        GenreIDs:    req.GenreIDs,
        ActorIDs:    req.ActorIDs,
        DirectorIDs: req.DirectorIDs,
    })
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, m)
}

// DeleteMovie 删除电影
// @Summary 删除电影（管理员）
// @Tags 目录
// @Param id path string true "电影 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/movies/{id} [delete]
func (h *Handler) DeleteMovie(c *gin.Context) {
    if err := h.catalogService.DeleteMovie(c.Request.Context(), c.Param("id")); err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, nil)
}

// SetMoviePoster 上传电影海报
// @Summary 上传电影海报（管理员）
// @Tags 目录
// @Accept multipart/form-data
// @Param id path string true "电影 ID"
// @Param poster formData file true "海报"
// @Success 200 {object} response.Response{data=model.Movie}
// @Failure 400 {object} response.Response
// @Router /api/v1/movies/{id}/poster [put]
func (h *Handler) SetMoviePoster(c *gin.Context) {
    fh, err := c.FormFile("poster")
    if err != nil {
        response.BadRequest(c, "poster file is required")
        return
    }
    m, err := h.catalogService.SetMoviePoster(c.Request.Context(), c.Param("id"), fh)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, m)
}

// CreateSeries 新建剧集
// @Summary 新建剧集（管理员）
// @Tags 目录
// @Accept json
// @Produce json
// @Param request body seriesRequest true "剧集"
// @Success 201 {object} response.Response{data=model.Series}
// @Failure 403 {object} response.Response
// @Router /api/v1/series [post]
func (h *Handler) CreateSeries(c *gin.Context) {
    var req seriesRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    s, err := h.catalogService.CreateSeries(c.Request.Context(), service.SeriesInput{
        Title:       req.Title,
        Description: req.Description,
        StartYear:   req.StartYear,
        EndYear:     req.EndYear,
        GenreIDs:    req.GenreIDs,
    })
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Created(c, s)
}

// ListSeries 剧集列表
// @Summary 剧集列表
// @Tags 目录
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=[]model.Series}
// @Router /api/v1/series [get]
func (h *Handler) ListSeries(c *gin.Context) {
    offset, limit := pagination(c)
    series, err := h.catalogService.ListSeries(c.Request.Context(), offset, limit)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, series)
}

// GetSeries 剧集详情
// @Summary 剧集详情
// @Tags 目录
// @Param id path string true "剧集 ID"
// @Success 200 {object} response.Response{data=model.Series}
// @Failure 404 {object} response.Response
// @Router /api/v1/series/{id} [get]
func (h *Handler) GetSeries(c *gin.Context) {
    s, err := h.catalogService.GetSeries(c.Request.Context(), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, s)
}

// UpdateSeries 更新剧集
// @Summary 更新剧集（管理员）
// @Tags 目录
// @Accept json
// @Produce json
// @Param id path string true "剧集 ID"
// @Param request body seriesRequest true "剧集"
// @Success 200 {object} response.Response{data=model.Series}
// @Failure 403 {object} response.Response
// @Router /api/v1/series/{id} [put]
func (h *Handler) UpdateSeries(c *gin.Context) {
    var req seriesRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    s, err := h.catalogService.UpdateSeries(c.Request.Context(), c.Param("id"), service.SeriesInput{
        Title:       req.Title,
        Description: req.Description,
        StartYear:   req.StartYear,
        EndYear:     req.EndYear,
        GenreIDs:    req.GenreIDs,
    })
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, s)
}

// DeleteSeries 删除剧集
// @Summary 删除剧集（管理员）
// @Tags 目录
// @Param id path string true "剧集 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/series/{id} [delete]
func (h *Handler) DeleteSeries(c *gin.Context) {
    if err := h.catalogService.DeleteSeries(c.Request.Context(), c.Param("id")); err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, nil)
}
