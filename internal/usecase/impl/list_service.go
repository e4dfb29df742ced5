package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/domain/service"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MaxListNameLength bounds list names, counted in runes.
const MaxListNameLength = 200

// listService implements the ListUsecase interface. Item positions are kept as
// distinct positive integers; every reorder renumbers the list to exactly 1..N.
type listService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	listRepo     repository.ListRepository
	listItemRepo repository.ListItemRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// ListServiceParams holds dependencies for ListService, injected by Fx.
type ListServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ListRepo     repository.ListRepository
	ListItemRepo repository.ListItemRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewListService is the constructor for listService.
func NewListService(params ListServiceParams) usecase.ListUsecase {
	return &listService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		listRepo:     params.ListRepo,
		listItemRepo: params.ListItemRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *listService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeListName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}
	if utf8.RuneCountInString(name) > MaxListNameLength {
		return "", domainerrors.ErrValidationFailed.WrapMessage("name must be at most 200 characters")
	}

	return name, nil
}

func (srv *listService) CreateList(ctx context.Context, accountID uuid.UUID, name string) (*entity.List, error) {
	name, err := normalizeListName(name)
	if err != nil {
		return nil, err
	}

	ownerID, err := resolveSpotifyUserID(ctx, srv.accountRepo, accountID)
	if err != nil {
		return nil, err
	}

	list := &entity.List{OwnerID: ownerID, Name: name}
	if err := srv.listRepo.CreateList(ctx, list); err != nil {
		return nil, errors.Wrap(err, "failed to create list")
	}
	list.Items = []*entity.ListItem{}

	srv.log(ctx).Info("List created", slog.String("listID", list.ID.String()))

	return list, nil
}

// GetLists returns the caller's lists newest first, each with its items in position order.
func (srv *listService) GetLists(ctx context.Context, accountID uuid.UUID) ([]*entity.List, error) {
	ownerID, err := resolveSpotifyUserID(ctx, srv.accountRepo, accountID)
	if errors.Is(err, domainerrors.ErrSpotifyNotLinked) {
		return []*entity.List{}, nil
	}
	if err != nil {
		return nil, err
	}

	lists, err := srv.listRepo.FindListsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load lists")
	}
	if len(lists) == 0 {
		return []*entity.List{}, nil
	}

	listIDs := make([]uuid.UUID, 0, len(lists))
	byID := make(map[uuid.UUID]*entity.List, len(lists))
	for _, list := range lists {
		list.Items = []*entity.ListItem{}
		listIDs = append(listIDs, list.ID)
		byID[list.ID] = list
	}

	items, err := srv.listItemRepo.FindItemsByLists(ctx, listIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load list items")
	}
	for _, item := range items {
		if list, ok := byID[item.ListID]; ok {
			list.Items = append(list.Items, item)
		}
	}

	return lists, nil
}

func (srv *listService) RenameList(ctx context.Context, accountID, listID uuid.UUID, name string) (*entity.List, error) {
	name, err := normalizeListName(name)
	if err != nil {
		return nil, err
	}

	list, err := srv.ownedList(ctx, srv.listRepo, accountID, listID)
	if err != nil {
		return nil, err
	}

	if err := srv.listRepo.RenameList(ctx, listID, name); err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, domainerrors.ErrListNotFound
		}

		return nil, errors.Wrap(err, "failed to rename list")
	}

	list.Name = name

	return srv.withItems(ctx, srv.listItemRepo, list)
}

func (srv *listService) DeleteList(ctx context.Context, accountID, listID uuid.UUID) error {
	if _, err := srv.ownedList(ctx, srv.listRepo, accountID, listID); err != nil {
		return err
	}

	if err := srv.listRepo.DeleteList(ctx, listID); err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return domainerrors.ErrListNotFound
		}

		return errors.Wrap(err, "failed to delete list")
	}

	srv.log(ctx).Info("List deleted", slog.String("listID", listID.String()))

	return nil
}

func validateAddItemInput(input *usecase.AddItemInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("item is required")
	}
	if !input.ItemType.IsValid() {
		return domainerrors.ErrInvalidItemType
	}
	if strings.TrimSpace(input.ItemID) == "" || strings.TrimSpace(input.ItemName) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("item_id and item_name are required")
	}

	return nil
}

// AddItem appends a new item at max(position)+1 under the list lock. Re-adding an
// item that is already on the list only refreshes its display metadata.
func (srv *listService) AddItem(ctx context.Context, accountID, listID uuid.UUID, input *usecase.AddItemInput) (*entity.ListItem, error) {
	if err := validateAddItemInput(input); err != nil {
		return nil, err
	}

	var added *entity.ListItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listRepo := repoFactory.ListRepo()
		itemRepo := repoFactory.ListItemRepo()

		if _, err := srv.lockOwnedList(ctx, listRepo, accountID, listID); err != nil {
			return err
		}

		maxPosition, err := itemRepo.MaxPosition(ctx, listID)
		if err != nil {
			return errors.Wrap(err, "failed to read max position")
		}

		added, err = itemRepo.UpsertItem(ctx, &entity.ListItem{
			ListID:       listID,
			ItemType:     input.ItemType,
			ItemID:       strings.TrimSpace(input.ItemID),
			ItemName:     strings.TrimSpace(input.ItemName),
			ItemSubtitle: input.ItemSubtitle,
			ImageURL:     input.ImageURL,
			Position:     maxPosition + 1,
		})
		if err != nil {
			return errors.Wrap(err, "failed to upsert list item")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("List item added",
		slog.String("listID", listID.String()),
		slog.String("itemID", added.ID.String()),
		slog.Int("position", added.Position),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LibraryEvent{
		Type:      service.EventListItemAdded,
		AccountID: accountID.String(),
		ListID:    listID.String(),
		ItemID:    added.ID.String(),
	})

	return added, nil
}

// ReorderItems renumbers the list to match orderedItemIDs. The ids must be an
// exact permutation of the list's current items.
func (srv *listService) ReorderItems(ctx context.Context, accountID, listID uuid.UUID, orderedItemIDs []uuid.UUID) (*entity.List, error) {
	var reordered *entity.List
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listRepo := repoFactory.ListRepo()
		itemRepo := repoFactory.ListItemRepo()

		list, err := srv.lockOwnedList(ctx, listRepo, accountID, listID)
		if err != nil {
			return err
		}

		current, err := itemRepo.FindItemsByList(ctx, listID)
		if err != nil {
			return errors.Wrap(err, "failed to load list items")
		}
		if err := checkPermutation(current, orderedItemIDs); err != nil {
			return err
		}

		if err := itemRepo.UpdatePositions(ctx, listID, orderedItemIDs); err != nil {
			if errors.Is(err, repository.ErrListItemNotFound) {
				return domainerrors.ErrReorderMismatch
			}

			return errors.Wrap(err, "failed to update positions")
		}

		reordered, err = srv.withItems(ctx, itemRepo, list)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("List reordered",
		slog.String("listID", listID.String()),
		slog.Int("items", len(orderedItemIDs)),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LibraryEvent{
		Type:      service.EventListReordered,
		AccountID: accountID.String(),
		ListID:    listID.String(),
	})

	return reordered, nil
}

// checkPermutation rejects unknown ids, duplicates and omissions.
func checkPermutation(current []*entity.ListItem, orderedItemIDs []uuid.UUID) error {
	if len(current) != len(orderedItemIDs) {
		return domainerrors.ErrReorderMismatch
	}

	remaining := make(map[uuid.UUID]struct{}, len(current))
	for _, item := range current {
		remaining[item.ID] = struct{}{}
	}
	for _, id := range orderedItemIDs {
		if _, ok := remaining[id]; !ok {
			return domainerrors.ErrReorderMismatch
		}
		delete(remaining, id)
	}

	return nil
}

// MoveItem swaps the item with its neighbour and renumbers the list through
// ReorderItems. At either end the current list is returned unchanged.
func (srv *listService) MoveItem(
	ctx context.Context,
	accountID, listID, itemID uuid.UUID,
	direction entity.MoveDirection,
) (*entity.List, error) {
	if direction != entity.MoveUp && direction != entity.MoveDown {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("direction must be up or down")
	}

	list, err := srv.ownedList(ctx, srv.listRepo, accountID, listID)
	if err != nil {
		return nil, err
	}

	list, err = srv.withItems(ctx, srv.listItemRepo, list)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, item := range list.Items {
		if item.ID == itemID {
			index = i

			break
		}
	}
	if index < 0 {
		return nil, domainerrors.ErrListItemNotFound
	}

	neighbour := index - 1
	if direction == entity.MoveDown {
		neighbour = index + 1
	}
	if neighbour < 0 || neighbour >= len(list.Items) {
		return list, nil
	}

	order := make([]uuid.UUID, len(list.Items))
	for i, item := range list.Items {
		order[i] = item.ID
	}
	order[index], order[neighbour] = order[neighbour], order[index]

	return srv.ReorderItems(ctx, accountID, listID, order)
}

func (srv *listService) RemoveItem(ctx context.Context, accountID, listID, itemID uuid.UUID) error {
	if _, err := srv.ownedList(ctx, srv.listRepo, accountID, listID); err != nil {
		return err
	}

	if err := srv.listItemRepo.DeleteItem(ctx, listID, itemID); err != nil {
		if errors.Is(err, repository.ErrListItemNotFound) {
			return domainerrors.ErrListItemNotFound
		}

		return errors.Wrap(err, "failed to remove list item")
	}

	return nil
}

// ownedList loads the list and checks that the account's Spotify identity owns it.
func (srv *listService) ownedList(
	ctx context.Context,
	listRepo repository.ListRepository,
	accountID, listID uuid.UUID,
) (*entity.List, error) {
	return srv.checkOwner(ctx, accountID, listID, listRepo.FindListByID)
}

// lockOwnedList is ownedList under a row lock; callers must be inside a transaction.
func (srv *listService) lockOwnedList(
	ctx context.Context,
	listRepo repository.ListRepository,
	accountID, listID uuid.UUID,
) (*entity.List, error) {
	return srv.checkOwner(ctx, accountID, listID, listRepo.LockList)
}

func (srv *listService) checkOwner(
	ctx context.Context,
	accountID, listID uuid.UUID,
	load func(context.Context, uuid.UUID) (*entity.List, error),
) (*entity.List, error) {
	ownerID, err := resolveSpotifyUserID(ctx, srv.accountRepo, accountID)
	if err != nil {
		return nil, err
	}

	list, err := load(ctx, listID)
	if errors.Is(err, repository.ErrListNotFound) {
		return nil, domainerrors.ErrListNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load list")
	}
	if !list.IsOwnedBy(ownerID) {
		return nil, domainerrors.ErrListForbidden
	}

	return list, nil
}

func (srv *listService) withItems(ctx context.Context, itemRepo repository.ListItemRepository, list *entity.List) (*entity.List, error) {
	items, err := itemRepo.FindItemsByList(ctx, list.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load list items")
	}
	if items == nil {
		items = []*entity.ListItem{}
	}
	list.Items = items

	return list, nil
}
