package todos

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
	"github.com/MehradEsmaeilZad81/TodoList/logging"
)

// tickingClock returns a clock that advances one second per call.
func tickingClock() func() time.Time {
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func newTestService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	svc := NewService(repo, logging.Discard())
	svc.now = tickingClock()
	return svc, repo
}

func mustCreate(t *testing.T, svc *Service, userID int64, title, description string) *Todo {
	t.Helper()
	todo, err := svc.Create(context.Background(), userID, CreateTodoRequest{Title: title, Description: description})
	require.NoError(t, err)
	return todo
}

func listParams(page, limit int) ListParams {
	p := DefaultListParams()
	p.Page, p.Limit = page, limit
	return p
}

func TestService_CreateGet_RoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := mustCreate(t, svc, 1, "Buy groceries", "Milk, eggs")
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := svc.Get(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestService_Create_Validation(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), 1, CreateTodoRequest{
		Title:       "",
		Description: strings.Repeat("d", 501),
	})
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	require.Len(t, appErr.Fields, 2)
	assert.Equal(t, "title", appErr.Fields[0].Field)
	assert.Equal(t, "description must be shorter than or equal to 500 characters", appErr.Fields[1].Message)
	assert.Empty(t, repo.todos)
}

func TestService_CrossUserAccessIsNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	todo := mustCreate(t, svc, 1, "mine", "private")

	_, err := svc.Get(ctx, todo.ID, 2)
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Update(ctx, todo.ID, 2, UpdateTodoRequest{Title: strPtr("stolen")})
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Remove(ctx, todo.ID, 2)
	assert.True(t, apperror.IsNotFound(err))

	got, err := svc.Get(ctx, todo.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Title)
}

func TestService_List_Pagination(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	for i := 1; i <= 25; i++ {
		mustCreate(t, svc, 1, fmt.Sprintf("todo %02d", i), "desc")
	}
	mustCreate(t, svc, 2, "other user", "desc")

	page1, err := svc.List(ctx, 1, listParams(1, 10))
	require.NoError(t, err)
	assert.Len(t, page1.Data, 10)
	assert.Equal(t, int64(25), page1.Total)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, "todo 25", page1.Data[0].Title, "newest first by default")

	page3, err := svc.List(ctx, 1, listParams(3, 10))
	require.NoError(t, err)
	assert.Len(t, page3.Data, 5)

	page4, err := svc.List(ctx, 1, listParams(4, 10))
	require.NoError(t, err)
	assert.NotNil(t, page4.Data)
	assert.Empty(t, page4.Data)
	assert.Equal(t, 3, page4.TotalPages)
}

func TestService_List_EmptyHasOnePage(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.List(context.Background(), 1, DefaultListParams())
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
	assert.NotNil(t, resp.Data)
}

func TestService_List_SearchAndSort(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	mustCreate(t, svc, 1, "Buy MILK", "store")
	mustCreate(t, svc, 1, "Call mom", "ask about milk recipe")
	mustCreate(t, svc, 1, "Exercise", "run")
	mustCreate(t, svc, 2, "milk", "not mine")

	params := DefaultListParams()
	params.Search = "  milk "
	params.SortBy = "title"
	params.SortOrder = "asc"

	resp, err := svc.List(ctx, 1, params)
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Buy MILK", resp.Data[0].Title)
	assert.Equal(t, "Call mom", resp.Data[1].Title)
	assert.Equal(t, int64(2), resp.Total)
}

func TestService_List_InvalidParams(t *testing.T) {
	svc, _ := newTestService()

	params := DefaultListParams()
	params.Page = 0
	params.Limit = 101
	params.SortBy = "id"
	params.SortOrder = "up"

	_, err := svc.List(context.Background(), 1, params)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.ValidationError, appErr.Type)
	assert.Len(t, appErr.Fields, 4)
}

func TestService_List_PageUpperBound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	params := DefaultListParams()
	params.Page = math.MaxInt
	_, err := svc.List(ctx, 1, params)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.ValidationError, appErr.Type)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "page", appErr.Fields[0].Field)
	assert.Equal(t, "page must not be greater than 1000000", appErr.Fields[0].Message)

	params.Page = 1000000
	resp, err := svc.List(ctx, 1, params)
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
}

func TestService_Update(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	todo := mustCreate(t, svc, 1, "old title", "old description")

	updated, err := svc.Update(ctx, todo.ID, 1, UpdateTodoRequest{Title: strPtr("new title")})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "old description", updated.Description)
	assert.True(t, updated.UpdatedAt.After(todo.UpdatedAt))
	assert.Equal(t, todo.CreatedAt, updated.CreatedAt)

	refreshed, err := svc.Update(ctx, todo.ID, 1, UpdateTodoRequest{})
	require.NoError(t, err)
	assert.Equal(t, "new title", refreshed.Title)
	assert.True(t, refreshed.UpdatedAt.After(updated.UpdatedAt))

	_, err = svc.Update(ctx, todo.ID, 1, UpdateTodoRequest{Description: strPtr("")})
	assert.True(t, apperror.IsValidationError(err))

	_, err = svc.Update(ctx, 999, 1, UpdateTodoRequest{Title: strPtr("x")})
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Remove_Twice(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	todo := mustCreate(t, svc, 1, "t", "d")

	resp, err := svc.Remove(ctx, todo.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Todo deleted successfully", resp.Message)

	_, err = svc.Remove(ctx, todo.ID, 1)
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Get(ctx, todo.ID, 1)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_StoreFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("connection reset")

	_, err := svc.List(context.Background(), 1, DefaultListParams())
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.DatabaseError, appErr.Type)

	_, err = svc.Get(context.Background(), 1, 1)
	appErr, ok = apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.DatabaseError, appErr.Type)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 100, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, totalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}
