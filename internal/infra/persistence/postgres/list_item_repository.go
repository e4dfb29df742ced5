package postgres

import (
	"context"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type listItemRepository struct {
	db *gorm.DB
}

// NewListItemRepository creates a GORM backed list item repository.
func NewListItemRepository(db *gorm.DB) repository.ListItemRepository {
	return &listItemRepository{db: db}
}

// FindItemsByList returns the list's items ordered by position.
func (repo *listItemRepository) FindItemsByList(ctx context.Context, listID uuid.UUID) ([]*entity.ListItem, error) {
	var itemMs []*model.ListItemModel
	if err := repo.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("position ASC").
		Find(&itemMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find list items")
	}

	return toListItemsDomain(itemMs), nil
}

// FindItemsByLists returns the items of several lists in one query.
func (repo *listItemRepository) FindItemsByLists(ctx context.Context, listIDs []uuid.UUID) ([]*entity.ListItem, error) {
	if len(listIDs) == 0 {
		return []*entity.ListItem{}, nil
	}

	var itemMs []*model.ListItemModel
	if err := repo.db.WithContext(ctx).
		Where("list_id IN ?", listIDs).
		Order("list_id").
		Order("position ASC").
		Find(&itemMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items for lists")
	}

	return toListItemsDomain(itemMs), nil
}

// MaxPosition returns the highest position in the list, or 0 when it is empty.
func (repo *listItemRepository) MaxPosition(ctx context.Context, listID uuid.UUID) (int, error) {
	var maxPosition int
	if err := repo.db.WithContext(ctx).
		Model(&model.ListItemModel{}).
		Where("list_id = ?", listID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read max position")
	}

	return maxPosition, nil
}

// UpsertItem inserts the item or, on (list_id, item_type, item_id) conflict, refreshes
// its display metadata. Position and added_at of an existing row are left alone.
func (repo *listItemRepository) UpsertItem(ctx context.Context, item *entity.ListItem) (*entity.ListItem, error) {
	itemM := fromListItemDomain(item)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "list_id"}, {Name: "item_type"}, {Name: "item_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"item_name", "item_subtitle", "image_url"}),
			},
			clause.Returning{},
		).
		Create(itemM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrListNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert list item")
	}

	return toListItemDomain(itemM), nil
}

// UpdatePositions sets position = index+1 for each id, in order. An id that is not
// an item of the list fails the whole call; callers run it inside a transaction.
func (repo *listItemRepository) UpdatePositions(ctx context.Context, listID uuid.UUID, orderedItemIDs []uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	for i, itemID := range orderedItemIDs {
		result := db.Model(&model.ListItemModel{}).
			Where("id = ? AND list_id = ?", itemID, listID).
			Update("position", i+1)
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item position")
		}
		if result.RowsAffected == 0 {
			return repository.ErrListItemNotFound
		}
	}

	return nil
}

// DeleteItem removes one item from the list.
func (repo *listItemRepository) DeleteItem(ctx context.Context, listID, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND list_id = ?", itemID, listID).
		Delete(&model.ListItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete list item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListItemNotFound
	}

	return nil
}

func toListItemsDomain(itemMs []*model.ListItemModel) []*entity.ListItem {
	items := make([]*entity.ListItem, 0, len(itemMs))
	for _, itemM := range itemMs {
		items = append(items, toListItemDomain(itemM))
	}

	return items
}

func toListItemDomain(data *model.ListItemModel) *entity.ListItem {
	if data == nil {
		return nil
	}

	return &entity.ListItem{
		ID:           data.ID,
		ListID:       data.ListID,
		ItemType:     entity.ItemType(data.ItemType),
		ItemID:       data.ItemID,
		ItemName:     data.ItemName,
		ItemSubtitle: data.ItemSubtitle,
		ImageURL:     data.ImageURL,
		Position:     data.Position,
		AddedAt:      data.AddedAt,
	}
}

func fromListItemDomain(data *entity.ListItem) *model.ListItemModel {
	if data == nil {
		return nil
	}

	return &model.ListItemModel{
		ID:           data.ID,
		ListID:       data.ListID,
		ItemType:     string(data.ItemType),
		ItemID:       data.ItemID,
		ItemName:     data.ItemName,
		ItemSubtitle: data.ItemSubtitle,
		ImageURL:     data.ImageURL,
		Position:     data.Position,
	}
}
