package impl

import (
	"context"
	"sort"
	"sync"
	"time"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// fakeLibrary is an in-memory store for accounts, lists and list items. Execute
// serialises transactions and restores a snapshot when fn fails.
type fakeLibrary struct {
	txMu sync.Mutex
	mu   sync.Mutex

	accounts map[uuid.UUID]*entity.Account
	lists    map[uuid.UUID]*entity.List
	items    map[uuid.UUID]*entity.ListItem

	// failPositionsAfter makes UpdatePositions fail once that many rows were written. Zero disables it.
	failPositionsAfter int
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{
		accounts: make(map[uuid.UUID]*entity.Account),
		lists:    make(map[uuid.UUID]*entity.List),
		items:    make(map[uuid.UUID]*entity.ListItem),
	}
}

func (f *fakeLibrary) addLinkedAccount() (accountID, spotifyUserID uuid.UUID) {
	accountID, spotifyUserID = uuid.New(), uuid.New()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[accountID] = linkedAccount(accountID, spotifyUserID)

	return accountID, spotifyUserID
}

func (f *fakeLibrary) addUnlinkedAccount() uuid.UUID {
	accountID := uuid.New()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[accountID] = &entity.Account{ID: accountID, Username: "unlinked"}

	return accountID
}

// positions returns item id -> position for the list.
func (f *fakeLibrary) positions(listID uuid.UUID) map[uuid.UUID]int {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[uuid.UUID]int)
	for _, item := range f.items {
		if item.ListID == listID {
			out[item.ID] = item.Position
		}
	}

	return out
}

// TransactionManager

func (f *fakeLibrary) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()

	f.mu.Lock()
	lists := make(map[uuid.UUID]entity.List, len(f.lists))
	for id, l := range f.lists {
		lists[id] = *l
	}
	items := make(map[uuid.UUID]entity.ListItem, len(f.items))
	for id, it := range f.items {
		items[id] = *it
	}
	f.mu.Unlock()

	if err := fn(f); err != nil {
		f.mu.Lock()
		f.lists = make(map[uuid.UUID]*entity.List, len(lists))
		for id, l := range lists {
			f.lists[id] = &l
		}
		f.items = make(map[uuid.UUID]*entity.ListItem, len(items))
		for id, it := range items {
			f.items[id] = &it
		}
		f.mu.Unlock()

		return err
	}

	return nil
}

// RepositoryFactory

func (f *fakeLibrary) AccountRepo() repository.AccountRepository         { return f }
func (f *fakeLibrary) SpotifyUserRepo() repository.SpotifyUserRepository { return nil }
func (f *fakeLibrary) ListRepo() repository.ListRepository               { return f }
func (f *fakeLibrary) ListItemRepo() repository.ListItemRepository       { return f }
func (f *fakeLibrary) RatingRepo() repository.RatingRepository           { return nil }

// AccountRepository

func (f *fakeLibrary) CreateAccount(context.Context, *entity.Account) error {
	return errors.New("not supported")
}

func (f *fakeLibrary) FindAccountByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	clone := *account

	return &clone, nil
}

func (f *fakeLibrary) FindAccountByUsername(context.Context, string) (*entity.Account, error) {
	return nil, repository.ErrAccountNotFound
}

func (f *fakeLibrary) FindAccountBySpotifyUserID(context.Context, uuid.UUID) (*entity.Account, error) {
	return nil, repository.ErrAccountNotFound
}

func (f *fakeLibrary) LinkSpotifyUser(context.Context, uuid.UUID, uuid.UUID) error {
	return errors.New("not supported")
}

// ListRepository

func (f *fakeLibrary) CreateList(_ context.Context, list *entity.List) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	list.ID = uuid.New()
	list.CreatedAt = now.Add(time.Duration(len(f.lists)) * time.Millisecond)
	list.UpdatedAt = list.CreatedAt
	clone := *list
	clone.Items = nil
	f.lists[list.ID] = &clone

	return nil
}

func (f *fakeLibrary) FindListByID(_ context.Context, id uuid.UUID) (*entity.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	list, ok := f.lists[id]
	if !ok {
		return nil, repository.ErrListNotFound
	}
	clone := *list

	return &clone, nil
}

func (f *fakeLibrary) LockList(ctx context.Context, id uuid.UUID) (*entity.List, error) {
	return f.FindListByID(ctx, id)
}

func (f *fakeLibrary) FindListsByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.List
	for _, list := range f.lists {
		if list.OwnerID == ownerID {
			clone := *list
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (f *fakeLibrary) RenameList(_ context.Context, id uuid.UUID, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	list, ok := f.lists[id]
	if !ok {
		return repository.ErrListNotFound
	}
	list.Name = name

	return nil
}

func (f *fakeLibrary) DeleteList(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.lists[id]; !ok {
		return repository.ErrListNotFound
	}
	delete(f.lists, id)
	for itemID, item := range f.items {
		if item.ListID == id {
			delete(f.items, itemID)
		}
	}

	return nil
}

// ListItemRepository

func (f *fakeLibrary) FindItemsByList(ctx context.Context, listID uuid.UUID) ([]*entity.ListItem, error) {
	return f.FindItemsByLists(ctx, []uuid.UUID{listID})
}

func (f *fakeLibrary) FindItemsByLists(_ context.Context, listIDs []uuid.UUID) ([]*entity.ListItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	wanted := make(map[uuid.UUID]bool, len(listIDs))
	for _, id := range listIDs {
		wanted[id] = true
	}

	var out []*entity.ListItem
	for _, item := range f.items {
		if wanted[item.ListID] {
			clone := *item
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ListID != out[j].ListID {
			return out[i].ListID.String() < out[j].ListID.String()
		}

		return out[i].Position < out[j].Position
	})

	return out, nil
}

func (f *fakeLibrary) MaxPosition(_ context.Context, listID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	highest := 0
	for _, item := range f.items {
		if item.ListID == listID && item.Position > highest {
			highest = item.Position
		}
	}

	return highest, nil
}

func (f *fakeLibrary) UpsertItem(_ context.Context, item *entity.ListItem) (*entity.ListItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.items {
		if existing.ListID == item.ListID && existing.ItemType == item.ItemType && existing.ItemID == item.ItemID {
			existing.ItemName = item.ItemName
			existing.ItemSubtitle = item.ItemSubtitle
			existing.ImageURL = item.ImageURL
			clone := *existing

			return &clone, nil
		}
	}

	stored := *item
	stored.ID = uuid.New()
	stored.AddedAt = time.Now()
	f.items[stored.ID] = &stored
	clone := stored

	return &clone, nil
}

func (f *fakeLibrary) UpdatePositions(_ context.Context, listID uuid.UUID, orderedItemIDs []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, id := range orderedItemIDs {
		if f.failPositionsAfter > 0 && i == f.failPositionsAfter {
			return errors.New("connection reset")
		}

		item, ok := f.items[id]
		if !ok || item.ListID != listID {
			return repository.ErrListItemNotFound
		}
		item.Position = i + 1
	}

	return nil
}

func (f *fakeLibrary) DeleteItem(_ context.Context, listID, itemID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[itemID]
	if !ok || item.ListID != listID {
		return repository.ErrListItemNotFound
	}
	delete(f.items, itemID)

	return nil
}
