// Package seed loads sample users and todos through the regular services, so
// passwords are hashed and every record passes validation.
package seed

import (
	"context"
	"fmt"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
	"github.com/MehradEsmaeilZad81/TodoList/auth"
	"github.com/MehradEsmaeilZad81/TodoList/logging"
	"github.com/MehradEsmaeilZad81/TodoList/todos"
)

// DefaultPassword is shared by every sample account.
const DefaultPassword = "password123"

// Account is one sample user with the todos created for it.
type Account struct {
	Name  string
	Email string
	Todos []todos.CreateTodoRequest
}

// Accounts is the sample data set.
var Accounts = []Account{
	{
		Name:  "John Doe",
		Email: "john@example.com",
		Todos: []todos.CreateTodoRequest{
			{Title: "Buy groceries", Description: "Milk, eggs, bread, and vegetables"},
			{Title: "Complete project", Description: "Finish the todo list API implementation"},
			{Title: "Exercise", Description: "Go for a 30-minute run"},
		},
	},
	{
		Name:  "Jane Smith",
		Email: "jane@example.com",
		Todos: []todos.CreateTodoRequest{
			{Title: "Read book", Description: `Finish reading "Clean Code"`},
			{Title: "Call mom", Description: "Weekly check-in call"},
		},
	},
}

// Summary counts what a Run created and skipped.
type Summary struct {
	UsersCreated int
	UsersSkipped int
	TodosCreated int
}

// Run creates every account in accounts. An account whose email is already
// registered is skipped together with its todos, so running twice is harmless.
func Run(ctx context.Context, users *auth.Service, todoSvc *todos.Service, accounts []Account, log logging.Logger) (Summary, error) {
	var sum Summary
	for _, acc := range accounts {
		resp, err := users.Register(ctx, auth.RegisterRequest{
			Name:     acc.Name,
			Email:    acc.Email,
			Password: DefaultPassword,
		})
		if err != nil {
			if apperror.IsConflictError(err) {
				log.Info(ctx, "user already exists, skipping", "email", acc.Email)
				sum.UsersSkipped++
				continue
			}
			return sum, fmt.Errorf("seed user %s: %w", acc.Email, err)
		}

		id, err := users.Verify(resp.Token)
		if err != nil {
			return sum, fmt.Errorf("seed user %s: %w", acc.Email, err)
		}
		sum.UsersCreated++

		for _, req := range acc.Todos {
			if _, err := todoSvc.Create(ctx, id.UserID, req); err != nil {
				return sum, fmt.Errorf("seed todo %q for %s: %w", req.Title, acc.Email, err)
			}
			sum.TodosCreated++
		}
		log.Info(ctx, "seeded user", "email", acc.Email, "user_id", id.UserID, "todos", len(acc.Todos))
	}
	return sum, nil
}
