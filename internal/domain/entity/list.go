package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemType enumerates what a list entry points at in the catalogue.
type ItemType string

const (
	ItemTypeAlbum  ItemType = "album"
	ItemTypeTrack  ItemType = "track"
	ItemTypeArtist ItemType = "artist"
)

// IsValid reports whether t is one of the supported item types.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeAlbum, ItemTypeTrack, ItemTypeArtist:
		return true
	default:
		return false
	}
}

// MoveDirection is the direction an item moves relative to its neighbour.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// List is a user-owned ordered collection.
type List struct {
	ID        uuid.UUID   `json:"id"`
	OwnerID   uuid.UUID   `json:"user_id"` // SpotifyUser.ID of the owner
	Name      string      `json:"name"`
	Items     []*ListItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// IsOwnedBy reports whether the list belongs to the given Spotify identity.
func (l *List) IsOwnedBy(spotifyUserID uuid.UUID) bool {
	return l != nil && l.OwnerID == spotifyUserID
}

// ListItem is an entry inside a List.
// (ListID, ItemType, ItemID) is unique and Position is the 1-based rank.
type ListItem struct {
	ID           uuid.UUID `json:"id"`
	ListID       uuid.UUID `json:"list_id"`
	ItemType     ItemType  `json:"item_type"`
	ItemID       string    `json:"item_id"`
	ItemName     string    `json:"item_name"`
	ItemSubtitle string    `json:"item_subtitle,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Position     int       `json:"position"`
	AddedAt      time.Time `json:"added_at"`
}

// ListItemMetadata is the display data carried by an item. It is the only part
// of an existing item that re-adding it may change.
type ListItemMetadata struct {
	ItemName     string
	ItemSubtitle string
	ImageURL     string
}
