package todos

// CreateTodoRequest represents the payload for creating a todo.
type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=100" example:"Buy groceries"`
	Description string `json:"description" validate:"required,min=1,max=500" example:"Milk, eggs, bread, and vegetables"`
}

// UpdateTodoRequest is a partial update; omitted fields keep their value.
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitnil,min=1,max=100" example:"Buy groceries"`
	Description *string `json:"description,omitempty" validate:"omitnil,min=1,max=500" example:"Milk and eggs"`
}

// ListParams are the listing query parameters after parsing.
type ListParams struct {
	Page      int    `json:"page" validate:"gte=1,lte=1000000"`
	Limit     int    `json:"limit" validate:"gte=1,lte=100"`
	Search    string `json:"search"`
	SortBy    string `json:"sortBy" validate:"oneof=title description createdAt updatedAt"`
	SortOrder string `json:"sortOrder" validate:"oneof=asc desc"`
}

// DefaultListParams returns the parameters used when a client sends none.
func DefaultListParams() ListParams {
	return ListParams{
		Page:      1,
		Limit:     10,
		SortBy:    string(SortByCreatedAt),
		SortOrder: string(SortDesc),
	}
}

// ListResponse is one page of todos plus pagination metadata.
type ListResponse struct {
	Data       []Todo `json:"data"`
	Page       int    `json:"page" example:"1"`
	Limit      int    `json:"limit" example:"10"`
	Total      int64  `json:"total" example:"25"`
	TotalPages int    `json:"totalPages" example:"3"`
}

// MessageResponse is returned by operations without a resource body.
type MessageResponse struct {
	Message string `json:"message" example:"Todo deleted successfully"`
}
