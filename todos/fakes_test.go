package todos

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
)

// fakeRepo is an in-memory Repository following the same filter, sort and
// pagination rules as the SQL built in query.go.
type fakeRepo struct {
	mu     sync.Mutex
	todos  []Todo
	nextID int64
	err    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, todo *Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	todo.ID = f.nextID
	f.nextID++
	f.todos = append(f.todos, *todo)
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id, ownerID int64) (*Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.todos {
		if t.ID == id && t.UserID == ownerID {
			found := t
			return &found, nil
		}
	}
	return nil, apperror.ErrRecordNotFound
}

func (f *fakeRepo) matching(filter Filter) []Todo {
	term := strings.ToLower(filter.searchTerm())
	var out []Todo
	for _, t := range f.todos {
		if t.UserID != filter.OwnerID {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (f *fakeRepo) List(_ context.Context, q ListQuery) ([]Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	rows := f.matching(q.Filter)
	less := func(a, b Todo) int {
		switch q.SortBy {
		case SortByTitle:
			return strings.Compare(a.Title, b.Title)
		case SortByDescription:
			return strings.Compare(a.Description, b.Description)
		case SortByUpdatedAt:
			return a.UpdatedAt.Compare(b.UpdatedAt)
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		c := less(rows[i], rows[j])
		if q.SortOrder != SortAsc {
			c = -c
		}
		if c == 0 {
			return rows[i].ID < rows[j].ID
		}
		return c < 0
	})

	start := q.Offset()
	if start >= len(rows) {
		return []Todo{}, nil
	}
	end := min(start+q.Limit, len(rows))
	return rows[start:end], nil
}

func (f *fakeRepo) Count(_ context.Context, filter Filter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.matching(filter))), nil
}

func (f *fakeRepo) Update(_ context.Context, id, ownerID int64, p Patch) (*Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.todos {
		t := &f.todos[i]
		if t.ID != id || t.UserID != ownerID {
			continue
		}
		if p.Title != nil {
			t.Title = *p.Title
		}
		if p.Description != nil {
			t.Description = *p.Description
		}
		t.UpdatedAt = p.UpdatedAt
		updated := *t
		return &updated, nil
	}
	return nil, apperror.ErrRecordNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id, ownerID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.todos {
		if t.ID == id && t.UserID == ownerID {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return apperror.ErrRecordNotFound
}
