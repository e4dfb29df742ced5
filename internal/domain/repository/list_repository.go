package repository

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for list persistence.
var (
	// ErrListNotFound is returned when a list does not exist.
	ErrListNotFound = errors.New("list not found")
	// ErrListItemNotFound is returned when a list item does not exist in the given list.
	ErrListItemNotFound = errors.New("list item not found")
)

// ListRepository defines the persistence operations for lists.
type ListRepository interface {
	// CreateList persists a new list.
	CreateList(ctx context.Context, list *entity.List) error

	// FindListByID retrieves a list without its items.
	FindListByID(ctx context.Context, id uuid.UUID) (*entity.List, error)

	// LockList retrieves a list and holds a row lock on it until the surrounding
	// transaction ends. Outside a transaction it behaves like FindListByID.
	LockList(ctx context.Context, id uuid.UUID) (*entity.List, error)

	// FindListsByOwner returns the owner's lists, newest first, without items.
	FindListsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.List, error)

	// RenameList updates the list name.
	RenameList(ctx context.Context, id uuid.UUID, name string) error

	// DeleteList removes the list and its items.
	DeleteList(ctx context.Context, id uuid.UUID) error
}

// ListItemRepository defines the persistence operations for list items.
type ListItemRepository interface {
	// FindItemsByList returns the list's items ordered by position.
	FindItemsByList(ctx context.Context, listID uuid.UUID) ([]*entity.ListItem, error)

	// FindItemsByLists returns the items of several lists ordered by list then position.
	FindItemsByLists(ctx context.Context, listIDs []uuid.UUID) ([]*entity.ListItem, error)

	// MaxPosition returns the highest position in the list, or 0 when it is empty.
	MaxPosition(ctx context.Context, listID uuid.UUID) (int, error)

	// UpsertItem inserts the item at item.Position, or when (list, type, item id)
	// already exists, updates only its display metadata. It returns the resulting row.
	UpsertItem(ctx context.Context, item *entity.ListItem) (*entity.ListItem, error)

	// UpdatePositions sets position = index+1 for each id in order.
	UpdatePositions(ctx context.Context, listID uuid.UUID, orderedItemIDs []uuid.UUID) error

	// DeleteItem removes one item from the list.
	DeleteItem(ctx context.Context, listID, itemID uuid.UUID) error
}
