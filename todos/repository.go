package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
)

// Repository is the todo store. Lookups and mutations take the owner id and
// return apperror.ErrRecordNotFound when no row matches both id and owner.
type Repository interface {
	Create(ctx context.Context, todo *Todo) error
	FindByID(ctx context.Context, id, ownerID int64) (*Todo, error)
	List(ctx context.Context, q ListQuery) ([]Todo, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Update(ctx context.Context, id, ownerID int64, p Patch) (*Todo, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

// PostgresRepository is the sqlx implementation of Repository.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a repository over db.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts todo and fills in its ID.
func (r *PostgresRepository) Create(ctx context.Context, todo *Todo) error {
	query := `INSERT INTO todos (title, description, user_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`
	err := r.db.QueryRowxContext(ctx, query,
		todo.Title, todo.Description, todo.UserID, todo.CreatedAt, todo.UpdatedAt,
	).Scan(&todo.ID)
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

// FindByID returns the todo with id owned by ownerID, or apperror.ErrRecordNotFound.
func (r *PostgresRepository) FindByID(ctx context.Context, id, ownerID int64) (*Todo, error) {
	var todo Todo
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1 AND user_id = $2`
	if err := r.db.GetContext(ctx, &todo, query, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrRecordNotFound
		}
		return nil, fmt.Errorf("select todo %d: %w", id, err)
	}
	return &todo, nil
}

// List returns one sorted page of the todos matching q.Filter.
func (r *PostgresRepository) List(ctx context.Context, q ListQuery) ([]Todo, error) {
	query, args := buildListQuery(q)
	todos := []Todo{}
	if err := r.db.SelectContext(ctx, &todos, query, args...); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// Count returns how many todos match f.
func (r *PostgresRepository) Count(ctx context.Context, f Filter) (int64, error) {
	query, args := buildCountQuery(f)
	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count todos: %w", err)
	}
	return total, nil
}

// Update applies p to the todo with id owned by ownerID and returns the stored row.
func (r *PostgresRepository) Update(ctx context.Context, id, ownerID int64, p Patch) (*Todo, error) {
	query, args := buildUpdateQuery(id, ownerID, p)
	var todo Todo
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&todo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrRecordNotFound
		}
		return nil, fmt.Errorf("update todo %d: %w", id, err)
	}
	return &todo, nil
}

// Delete removes the todo with id owned by ownerID. No matching row is apperror.ErrRecordNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}
	if n == 0 {
		return apperror.ErrRecordNotFound
	}
	return nil
}
