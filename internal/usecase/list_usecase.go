package usecase

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// AddItemInput describes a catalogue entry to put on a list.
type AddItemInput struct {
	ItemType     entity.ItemType
	ItemID       string
	ItemName     string
	ItemSubtitle string
	ImageURL     string
}

// ListUsecase manages an account's ordered lists. Every call acts on behalf of
// accountID and fails with ErrSpotifyNotLinked when the account has no Spotify link,
// except GetLists which returns an empty slice.
type ListUsecase interface {
	CreateList(ctx context.Context, accountID uuid.UUID, name string) (*entity.List, error)
	GetLists(ctx context.Context, accountID uuid.UUID) ([]*entity.List, error)
	RenameList(ctx context.Context, accountID, listID uuid.UUID, name string) (*entity.List, error)
	DeleteList(ctx context.Context, accountID, listID uuid.UUID) error

	// AddItem appends the item, or refreshes its metadata when it is already on the list.
	AddItem(ctx context.Context, accountID, listID uuid.UUID, input *AddItemInput) (*entity.ListItem, error)
	// ReorderItems renumbers the list to match orderedItemIDs, which must name every item once.
	ReorderItems(ctx context.Context, accountID, listID uuid.UUID, orderedItemIDs []uuid.UUID) (*entity.List, error)
	// MoveItem swaps an item with its neighbour. Moving past either end is a no-op.
	MoveItem(ctx context.Context, accountID, listID, itemID uuid.UUID, direction entity.MoveDirection) (*entity.List, error)
	RemoveItem(ctx context.Context, accountID, listID, itemID uuid.UUID) error
}
