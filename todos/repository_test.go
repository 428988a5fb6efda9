package todos

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
)

var todoRowColumns = []string{"id", "title", "description", "user_id", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewPostgresRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestPostgresRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO todos (title, description, user_id, created_at, updated_at)`)).
		WithArgs("t", "d", int64(4), now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	todo := &Todo{Title: "t", Description: "d", UserID: 4, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(context.Background(), todo))
	assert.Equal(t, int64(11), todo.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FindByID_ScopedByOwner(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM todos WHERE id = $1 AND user_id = $2`)).
		WithArgs(int64(5), int64(1)).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(int64(5), "t", "d", int64(1), now, now))

	todo, err := repo.FindByID(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, "t", todo.Title)
	assert.Equal(t, int64(1), todo.UserID)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM todos WHERE id = $1 AND user_id = $2`)).
		WithArgs(int64(5), int64(2)).
		WillReturnRows(sqlmock.NewRows(todoRowColumns))

	_, err = repo.FindByID(context.Background(), 5, 2)
	assert.ErrorIs(t, err, apperror.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListAndCount(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	search := "milk"
	q := ListQuery{
		Filter:    Filter{OwnerID: 1, Search: &search},
		Page:      2,
		Limit:     5,
		SortBy:    SortByCreatedAt,
		SortOrder: SortDesc,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM todos WHERE user_id = $1 AND (title ILIKE $2 OR description ILIKE $2)`)).
		WithArgs(int64(1), "%milk%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(6)))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC, id ASC LIMIT $3 OFFSET $4`)).
		WithArgs(int64(1), "%milk%", 5, 5).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(int64(6), "milk", "d", int64(1), now, now))

	total, err := repo.Count(context.Background(), q.Filter)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)

	todos, err := repo.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, int64(6), todos[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_List_EmptyIsNotNil(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .* FROM todos`).WillReturnRows(sqlmock.NewRows(todoRowColumns))

	todos, err := repo.List(context.Background(), ListQuery{Filter: Filter{OwnerID: 1}, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestPostgresRepository_Update(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	title := "new"

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE todos SET updated_at = $1, title = $2 WHERE id = $3 AND user_id = $4 RETURNING`)).
		WithArgs(now, "new", int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(int64(3), "new", "d", int64(1), now, now))

	todo, err := repo.Update(context.Background(), 3, 1, Patch{Title: &title, UpdatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, "new", todo.Title)

	mock.ExpectQuery(`UPDATE todos`).WillReturnRows(sqlmock.NewRows(todoRowColumns))
	_, err = repo.Update(context.Background(), 3, 2, Patch{UpdatedAt: now})
	assert.ErrorIs(t, err, apperror.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM todos WHERE id = $1 AND user_id = $2`)).
		WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 3, 1))

	mock.ExpectExec(`DELETE FROM todos`).
		WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 3, 1), apperror.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
