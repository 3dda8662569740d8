package model

import "time"

type Genre struct {
    ID   string `gorm:"primaryKey;type:varchar(36)" json:"id"`
    Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Genre) TableName() string { return "genres" }

// Person 演员 / 导演
type Person struct {
    ID        string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
    Name      string     `gorm:"type:varchar(100);not null;index" json:"name"`
    BirthDate *time.Time `json:"birth_date"`
    Photo     string     `gorm:"type:varchar(255)" json:"photo"`
}

func (Person) TableName() string { return "people" }

type Movie struct {
    ID          string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
    Title       string     `gorm:"type:varchar(100);not null" json:"title"`
    Description string     `gorm:"type:text" json:"description"`
    ReleaseDate *time.Time `json:"release_date"`
    Poster      string     `gorm:"type:varchar(255)" json:"poster"`
    CreatedAt   time.Time  `json:"created_at"`

    Genres    []Genre  `gorm:"many2many:movie_genres" json:"genres"`
    Actors    []Person `gorm:"many2many:movie_actors" json:"actors"`
    Directors []Person `gorm:"many2many:movie_directors" json:"directors"`
}

func (Movie) TableName() string { return "movies" }

type Series struct {
    ID          string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
    Title       string  `gorm:"type:varchar(200);not null" json:"title"`
    Description string  `gorm:"type:text" json:"description"`
    StartYear   int     `gorm:"not null" json:"start_year"`
    EndYear     *int    `json:"end_year"`
    Poster      string  `gorm:"type:varchar(255)" json:"poster"`
    Genres      []Genre `gorm:"many2many:series_genres" json:"genres"`
}

func (Series) TableName() string { return "series" }
