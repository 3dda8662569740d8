package handler

import (
    "time"

    "github.com/d60-Lab/cinegraph/internal/model"
    "github.com/d60-Lab/cinegraph/internal/service"
)

// UserResponse 用户投影，关注/粉丝/好友列表的元素也是它
type UserResponse struct {
    ID         string    `json:"id"`
    Email      string    `json:"email"`
    Username   string    `json:"username"`
    JoinedDate time.Time `json:"joined_date"`
}

func toUserResponse(u *model.User) UserResponse {
    return UserResponse{ID: u.ID, Email: u.Email, Username: u.Username, JoinedDate: u.JoinedDate}
}

func toUserResponses(users []*model.User) []UserResponse {
    res := make([]UserResponse, 0, len(users))
    for _, u := range users {
        res = append(res, toUserResponse(u))
    }
    return res
}

type ProfileResponse struct {
    ID             string         `json:"id"`
    User           UserResponse   `json:"user"`
    Avatar         string         `json:"avatar"`
    Bio            string         `json:"bio"`
    Gender         string         `json:"gender"`
    BirthDate      *time.Time     `json:"birth_date"`
    FollowersCount int64          `json:"followers_count"`
    FollowingCount int64          `json:"following_count"`
    FavoriteGenres []model.Genre  `json:"favorite_genres"`
    FavoriteMovies []model.Movie  `json:"favorite_movies"`
    FavoriteSeries []model.Series `json:"favorite_series"`
    CreatedAt      time.Time      `json:"created_at"`
}

func toProfileResponse(p *model.Profile, following, followers int64) ProfileResponse {
    return ProfileResponse{
        ID:             p.ID,
        User:           toUserResponse(&p.User),
        Avatar:         p.Avatar,
        Bio:            p.Bio,
        Gender:         p.Gender,
        BirthDate:      p.BirthDate,
        FollowersCount: followers,
        FollowingCount: following,
        FavoriteGenres: p.FavoriteGenres,
        FavoriteMovies: p.FavoriteMovies,
        FavoriteSeries: p.FavoriteSeries,
        CreatedAt:      p.CreatedAt,
    }
}

type CommentResponse struct {
    ID        string       `json:"id"`
    ReviewID  string       `json:"review_id"`
    Author    UserResponse `json:"author"`
    Content   string       `json:"content"`
    CreatedAt time.Time    `json:"created_at"`
}

func toCommentResponse(c *model.Comment) CommentResponse {
    return CommentResponse{
        ID:        c.ID,
        ReviewID:  c.ReviewID,
        Author:    toUserResponse(&c.Author),
        Content:   c.Content,
        CreatedAt: c.CreatedAt,
    }
}

type ReviewResponse struct {
    ID         string            `json:"id"`
    MovieID    string            `json:"movie_id"`
    Author     UserResponse      `json:"author"`
    Title      string            `json:"title"`
    Content    string            `json:"content"`
    Rating     int               `json:"rating"`
    CreatedAt  time.Time         `json:"created_at"`
    Comments   []CommentResponse `json:"comments"`
    LikesCount int64             `json:"likes_count"`
}

func toReviewResponse(rv *service.ReviewWithLikes) ReviewResponse {
    comments := make([]CommentResponse, 0, len(rv.Comments))
    for i := range rv.Comments {
        comments = append(comments, toCommentResponse(&rv.Comments[i]))
    }
    return ReviewResponse{
        ID:         rv.ID,
        MovieID:    rv.MovieID,
        Author:     toUserResponse(&rv.Author),
        Title:      rv.Title,
        Content:    rv.Content,
        Rating:     rv.Rating,
        CreatedAt:  rv.CreatedAt,
        Comments:   comments,
        LikesCount: rv.LikesCount,
    }
}

type MessageResponse struct {
    ID        string       `json:"id"`
    ChatID    string       `json:"chat_id"`
    Sender    UserResponse `json:"sender"`
    Content   string       `json:"content"`
    CreatedAt time.Time    `json:"created_at"`
    IsRead    bool         `json:"is_read"`
}

func toMessageResponse(m *model.DirectMessage) MessageResponse {
    return MessageResponse{
        ID:        m.ID,
        ChatID:    m.ChatID,
        Sender:    toUserResponse(&m.Sender),
        Content:   m.Content,
        CreatedAt: m.CreatedAt,
        IsRead:    m.IsRead,
    }
}

type ChatResponse struct {
    ID           string           `json:"id"`
    Participants []UserResponse   `json:"participants"`
    CreatedAt    time.Time        `json:"created_at"`
    LastMessage  *MessageResponse `json:"last_message"`
}

func toChatResponse(c *service.ChatWithLastMessage) ChatResponse {
    participants := make([]UserResponse, 0, len(c.Participants))
    for i := range c.Participants {
        participants = append(participants, toUserResponse(&c.Participants[i]))
    }
    res := ChatResponse{ID: c.ID, Participants: participants, CreatedAt: c.CreatedAt}
    if c.LastMessage != nil {
        m := toMessageResponse(c.LastMessage)
        res.LastMessage = &m
    }
    return res
}

type NewsResponse struct {
    ID          string    `json:"id"`
    AuthorID    string    `json:"author_id"`
    AuthorName  string    `json:"author_name"`
    Title       string    `json:"title"`
    Content     string    `json:"content"`
    Image       string    `json:"image"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
    IsPublished bool      `json:"is_published"`
}

func toNewsResponse(n *model.News) NewsResponse {
    return NewsResponse{
        ID:          n.ID,
        AuthorID:    n.AuthorID,
        AuthorName:  n.Author.Username,
        Title:       n.Title,
        Content:     n.Content,
        Image:       n.Image,
        CreatedAt:   n.CreatedAt,
        UpdatedAt:   n.UpdatedAt,
        IsPublished: n.IsPublished,
    }
}
