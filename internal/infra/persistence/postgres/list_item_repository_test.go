package postgres

import (
	"context"
	"testing"

	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const updatePositionSQL = `^UPDATE "list_items" SET "position"`

func TestUpdatePositions_CommitsEveryRow(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	listID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	mock.ExpectBegin()
	for i, id := range ids {
		mock.ExpectExec(updatePositionSQL).
			WithArgs(i+1, id, listID).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.ListItemRepo().UpdatePositions(context.Background(), listID, ids)
	})
	require.NoError(t, err)
}

func TestUpdatePositions_UnknownItemRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	listID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	mock.ExpectBegin()
	mock.ExpectExec(updatePositionSQL).
		WithArgs(1, ids[0], listID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(updatePositionSQL).
		WithArgs(2, ids[1], listID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.ListItemRepo().UpdatePositions(context.Background(), listID, ids)
	})
	assert.ErrorIs(t, err, repository.ErrListItemNotFound)
}

func TestUpdatePositions_DriverErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	listID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectBegin()
	mock.ExpectExec(updatePositionSQL).
		WithArgs(1, ids[0], listID).
		WillReturnError(gorm.ErrInvalidDB)
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.ListItemRepo().UpdatePositions(context.Background(), listID, ids)
	})
	require.Error(t, err)

	var dbErr *domainerrors.DatabaseExecuteError
	assert.ErrorAs(t, err, &dbErr)
	assert.ErrorIs(t, err, gorm.ErrInvalidDB)
}

func TestExecute_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(gorm.ErrInvalidTransaction)

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return nil
	})
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestMaxPosition(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListItemRepository(db)
	listID := uuid.New()

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(position\), 0\) FROM "list_items"`).
		WithArgs(listID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4))

	got, err := repo.MaxPosition(context.Background(), listID)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestDeleteItem_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListItemRepository(db)
	listID, itemID := uuid.New(), uuid.New()

	mock.ExpectExec(`^DELETE FROM "list_items"`).
		WithArgs(itemID, listID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteItem(context.Background(), listID, itemID)
	assert.ErrorIs(t, err, repository.ErrListItemNotFound)
}

func TestFindItemsByLists_EmptyInputSkipsQuery(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewListItemRepository(db)

	items, err := repo.FindItemsByLists(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}
