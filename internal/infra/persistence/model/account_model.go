package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'app_users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type AccountModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username      string     `gorm:"type:varchar(64);unique;not null"`
	PasswordHash  string     `gorm:"type:text;not null"`
	SpotifyUserID *uuid.UUID `gorm:"type:uuid;unique"`
	CreatedAt     time.Time

	SpotifyUser *SpotifyUserModel `gorm:"foreignKey:SpotifyUserID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "app_users"
}
