package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel mirrors the 'ratings' table. There is one row per (spotify_user_id, album_id).
type RatingModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SpotifyUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_album,priority:1"`
	AlbumID       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_ratings_user_album,priority:2"`
	Rating        int       `gorm:"not null;check:chk_ratings_range,rating BETWEEN 1 AND 10"`
	CreatedAt     time.Time
	UpdatedAt     time.Time `gorm:"index"`

	User *SpotifyUserModel `gorm:"foreignKey:SpotifyUserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
