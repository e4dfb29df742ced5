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

type listRepository struct {
	db *gorm.DB
}

// NewListRepository creates a GORM backed list repository.
func NewListRepository(db *gorm.DB) repository.ListRepository {
	return &listRepository{db: db}
}

// CreateList persists a new list and fills in the generated fields.
func (repo *listRepository) CreateList(ctx context.Context, list *entity.List) error {
	listM := &model.ListModel{
		UserID: list.OwnerID,
		Name:   list.Name,
	}

	if err := repo.db.WithContext(ctx).Create(listM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSpotifyUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create list")
	}

	list.ID = listM.ID
	list.CreatedAt = listM.CreatedAt
	list.UpdatedAt = listM.UpdatedAt

	return nil
}

// FindListByID retrieves a list without its items.
func (repo *listRepository) FindListByID(ctx context.Context, id uuid.UUID) (*entity.List, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// LockList retrieves a list with SELECT ... FOR UPDATE. Concurrent writers on the
// same list queue behind the lock until the holder's transaction ends.
func (repo *listRepository) LockList(ctx context.Context, id uuid.UUID) (*entity.List, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// FindListsByOwner returns the owner's lists, newest first.
func (repo *listRepository) FindListsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.List, error) {
	var listMs []*model.ListModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&listMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find lists by owner")
	}

	lists := make([]*entity.List, 0, len(listMs))
	for _, listM := range listMs {
		lists = append(lists, toListDomain(listM))
	}

	return lists, nil
}

// RenameList updates the list name.
func (repo *listRepository) RenameList(ctx context.Context, id uuid.UUID, name string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListModel{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rename list")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListNotFound
	}

	return nil
}

// DeleteList removes the list and its items.
func (repo *listRepository) DeleteList(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&model.ListItemModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete list items")
		}

		result := tx.Where("id = ?", id).Delete(&model.ListModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete list")
		}
		if result.RowsAffected == 0 {
			return repository.ErrListNotFound
		}

		return nil
	})
}

func (repo *listRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.List, error) {
	var listM model.ListModel
	if err := db.Where("id = ?", id).First(&listM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListNotFound
		}

		return nil, errors.Wrap(err, "failed to find list")
	}

	return toListDomain(&listM), nil
}

func toListDomain(data *model.ListModel) *entity.List {
	if data == nil {
		return nil
	}

	return &entity.List{
		ID:        data.ID,
		OwnerID:   data.UserID,
		Name:      data.Name,
		Items:     []*entity.ListItem{},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
