// Package storetest provides in-memory implementations of the user and todo
// repositories for tests that wire real services without PostgreSQL.
package storetest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
	"github.com/MehradEsmaeilZad81/TodoList/auth"
	"github.com/MehradEsmaeilZad81/TodoList/todos"
)

// Users is an in-memory auth.UserRepository.
type Users struct {
	mu     sync.Mutex
	byMail map[string]auth.User
	nextID int64
}

// NewUsers returns an empty Users store.
func NewUsers() *Users {
	return &Users{byMail: make(map[string]auth.User), nextID: 1}
}

func (s *Users) Create(_ context.Context, user *auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byMail[user.Email]; exists {
		return apperror.NewConflictError("Email already registered", nil)
	}
	now := time.Now().UTC()
	user.ID = s.nextID
	user.CreatedAt, user.UpdatedAt = now, now
	s.nextID++
	s.byMail[user.Email] = *user
	return nil
}

func (s *Users) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byMail[email]
	if !ok {
		return nil, apperror.ErrRecordNotFound
	}
	return &u, nil
}

// Len reports the number of stored users.
func (s *Users) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byMail)
}

// Todos is an in-memory todos.Repository with the same matching, ordering and
// paging rules as the PostgreSQL queries.
type Todos struct {
	mu     sync.Mutex
	rows   []todos.Todo
	nextID int64
}

// NewTodos returns an empty Todos store.
func NewTodos() *Todos {
	return &Todos{nextID: 1}
}

func (s *Todos) Create(_ context.Context, todo *todos.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	todo.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, *todo)
	return nil
}

func (s *Todos) FindByID(_ context.Context, id, ownerID int64) (*todos.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id, ownerID); i >= 0 {
		t := s.rows[i]
		return &t, nil
	}
	return nil, apperror.ErrRecordNotFound
}

func (s *Todos) List(_ context.Context, q todos.ListQuery) ([]todos.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.matching(q.Filter)
	sort.SliceStable(rows, func(i, j int) bool {
		c := compare(rows[i], rows[j], q.SortBy)
		if q.SortOrder != todos.SortAsc {
			c = -c
		}
		if c == 0 {
			return rows[i].ID < rows[j].ID
		}
		return c < 0
	})

	start := q.Offset()
	if start >= len(rows) {
		return []todos.Todo{}, nil
	}
	return rows[start:min(start+q.Limit, len(rows))], nil
}

func (s *Todos) Count(_ context.Context, f todos.Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.matching(f))), nil
}

func (s *Todos) Update(_ context.Context, id, ownerID int64, p todos.Patch) (*todos.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id, ownerID)
	if i < 0 {
		return nil, apperror.ErrRecordNotFound
	}
	t := &s.rows[i]
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

func (s *Todos) Delete(_ context.Context, id, ownerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id, ownerID)
	if i < 0 {
		return apperror.ErrRecordNotFound
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	return nil
}

func (s *Todos) index(id, ownerID int64) int {
	for i, t := range s.rows {
		if t.ID == id && t.UserID == ownerID {
			return i
		}
	}
	return -1
}

func (s *Todos) matching(f todos.Filter) []todos.Todo {
	term := ""
	if f.Search != nil {
		term = strings.ToLower(strings.TrimSpace(*f.Search))
	}
	var out []todos.Todo
	for _, t := range s.rows {
		if t.UserID != f.OwnerID {
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

func compare(a, b todos.Todo, field todos.SortField) int {
	switch field {
	case todos.SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case todos.SortByDescription:
		return strings.Compare(a.Description, b.Description)
	case todos.SortByUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}
