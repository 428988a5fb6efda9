package todos

import (
	"context"
	"errors"
	"time"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
	"github.com/MehradEsmaeilZad81/TodoList/logging"
	"github.com/MehradEsmaeilZad81/TodoList/validation"
)

const (
	msgNotFound = "Todo not found"
	msgDeleted  = "Todo deleted successfully"
)

// Service implements the todo operations for a single authenticated owner.
type Service struct {
	repo      Repository
	validator *validation.Validator
	log       logging.Logger
	now       func() time.Time
}

// NewService creates a new Service.
func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validation.Default(),
		log:       log.With("component", "todos"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new todo owned by userID.
func (s *Service) Create(ctx context.Context, userID int64, req CreateTodoRequest) (*Todo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	now := s.now()
	todo := &Todo{
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, s.storeError(ctx, "failed to create todo", err, "user_id", userID)
	}
	return todo, nil
}

// List returns one page of the caller's todos.
func (s *Service) List(ctx context.Context, userID int64, params ListParams) (*ListResponse, error) {
	if err := s.validator.Struct(params); err != nil {
		return nil, err
	}

	q := ListQuery{
		Filter:    Filter{OwnerID: userID},
		Page:      params.Page,
		Limit:     params.Limit,
		SortBy:    SortField(params.SortBy),
		SortOrder: SortOrder(params.SortOrder),
	}
	if params.Search != "" {
		search := params.Search
		q.Filter.Search = &search
	}

	total, err := s.repo.Count(ctx, q.Filter)
	if err != nil {
		return nil, s.storeError(ctx, "failed to count todos", err, "user_id", userID)
	}
	data, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, s.storeError(ctx, "failed to list todos", err, "user_id", userID)
	}
	if data == nil {
		data = []Todo{}
	}

	return &ListResponse{
		Data:       data,
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: totalPages(total, q.Limit),
	}, nil
}

// Get returns the todo with id if userID owns it.
func (s *Service) Get(ctx context.Context, id, userID int64) (*Todo, error) {
	todo, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, apperror.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError(msgNotFound, nil)
		}
		return nil, s.storeError(ctx, "failed to load todo", err, "todo_id", id)
	}
	return todo, nil
}

// Update applies the provided fields and refreshes updatedAt.
// An empty patch only refreshes updatedAt.
func (s *Service) Update(ctx context.Context, id, userID int64, req UpdateTodoRequest) (*Todo, error) {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	todo, err := s.repo.Update(ctx, id, userID, Patch{
		Title:       req.Title,
		Description: req.Description,
		UpdatedAt:   s.now(),
	})
	if err != nil {
		if errors.Is(err, apperror.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError(msgNotFound, nil)
		}
		return nil, s.storeError(ctx, "failed to update todo", err, "todo_id", id)
	}
	return todo, nil
}

// Remove deletes the todo with id if userID owns it.
func (s *Service) Remove(ctx context.Context, id, userID int64) (*MessageResponse, error) {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, apperror.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError(msgNotFound, nil)
		}
		return nil, s.storeError(ctx, "failed to delete todo", err, "todo_id", id)
	}
	return &MessageResponse{Message: msgDeleted}, nil
}

// storeError logs a repository failure and wraps it as a DatabaseError.
func (s *Service) storeError(ctx context.Context, msg string, err error, args ...any) error {
	s.log.Error(ctx, msg, append(args, "error", err)...)
	return apperror.NewDatabaseError(msg, err)
}

// totalPages is ceil(total/limit), never less than 1.
func totalPages(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return max(pages, 1)
}
