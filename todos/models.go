// Package todos implements per-user todo records: creation, lookup, partial
// update, removal and a filtered, sorted, paginated listing. Every operation is
// scoped to the owning user.
package todos

import "time"

// Todo is a single todo record.
type Todo struct {
	ID          int64     `db:"id" json:"id" example:"1"`
	Title       string    `db:"title" json:"title" example:"Buy groceries"`
	Description string    `db:"description" json:"description" example:"Milk, eggs, bread, and vegetables"`
	UserID      int64     `db:"user_id" json:"userId" example:"1"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// SortField names a sortable attribute as clients spell it.
type SortField string

const (
	SortByTitle       SortField = "title"
	SortByDescription SortField = "description"
	SortByCreatedAt   SortField = "createdAt"
	SortByUpdatedAt   SortField = "updatedAt"
)

// sortColumns is the only source of column names that reach ORDER BY.
var sortColumns = map[SortField]string{
	SortByTitle:       "title",
	SortByDescription: "description",
	SortByCreatedAt:   "created_at",
	SortByUpdatedAt:   "updated_at",
}

// SortOrder is the listing direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filter selects the todos a listing covers.
// Search, when set and non-blank, matches title or description case-insensitively.
type Filter struct {
	OwnerID int64
	Search  *string
}

// ListQuery is a validated listing request.
type ListQuery struct {
	Filter    Filter
	Page      int
	Limit     int
	SortBy    SortField
	SortOrder SortOrder
}

// Offset is the number of rows skipped before the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Patch carries the fields an update changes. Nil fields are left alone.
type Patch struct {
	Title       *string
	Description *string
	UpdatedAt   time.Time
}
