package model

import (
	"time"

	"github.com/google/uuid"
)

// ListModel mirrors the 'lists' table. UserID references spotify_users.id.
type ListModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	User  *SpotifyUserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Items []ListItemModel   `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ListModel) TableName() string {
	return "lists"
}

// ListItemModel mirrors the 'list_items' table. (list_id, item_type, item_id) is unique;
// position is not unique so reorders can rewrite it row by row.
type ListItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ListID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_list_items_entry,priority:1;index:idx_list_items_position,priority:1"`
	ItemType     string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_list_items_entry,priority:2"`
	ItemID       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_list_items_entry,priority:3"`
	ItemName     string    `gorm:"type:varchar(512);not null"`
	ItemSubtitle string    `gorm:"type:varchar(512)"`
	ImageURL     string    `gorm:"type:text"`
	Position     int       `gorm:"not null;index:idx_list_items_position,priority:2"`
	AddedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (ListItemModel) TableName() string {
	return "list_items"
}
