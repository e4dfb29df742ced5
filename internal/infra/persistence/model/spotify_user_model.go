package model

import (
	"time"

	"github.com/google/uuid"
)

// SpotifyUserModel mirrors the 'spotify_users' table. Lists and ratings reference its id.
type SpotifyUserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SpotifyID    string    `gorm:"type:varchar(255);unique;not null"`
	DisplayName  string    `gorm:"type:varchar(255)"`
	Email        string    `gorm:"type:varchar(255)"`
	RefreshToken string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SpotifyUserModel) TableName() string {
	return "spotify_users"
}
