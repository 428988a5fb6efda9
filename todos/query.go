package todos

import (
	"fmt"
	"strings"
)

// todoColumns is the column list every SELECT and RETURNING uses.
const todoColumns = "id, title, description, user_id, created_at, updated_at"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// searchTerm returns the trimmed search text, or "" when there is none.
func (f Filter) searchTerm() string {
	if f.Search == nil {
		return ""
	}
	return strings.TrimSpace(*f.Search)
}

// whereClause renders f as a WHERE body with `$n` placeholders.
// Argument numbering starts at $1.
func whereClause(f Filter) (string, []any) {
	clauses := []string{"user_id = $1"}
	args := []any{f.OwnerID}

	if term := f.searchTerm(); term != "" {
		args = append(args, "%"+escapeLike(term)+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	return strings.Join(clauses, " AND "), args
}

// orderClause maps the requested sort onto a whitelisted column.
// Ties are broken by id so pages never overlap.
func orderClause(field SortField, order SortOrder) string {
	column, ok := sortColumns[field]
	if !ok {
		column = sortColumns[SortByCreatedAt]
	}
	direction := "DESC"
	if order == SortAsc {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s, id ASC", column, direction)
}

// buildListQuery returns the SELECT for one page of q.
func buildListQuery(q ListQuery) (string, []any) {
	where, args := whereClause(q.Filter)
	args = append(args, q.Limit, q.Offset())
	query := fmt.Sprintf(
		"SELECT %s FROM todos WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		todoColumns, where, orderClause(q.SortBy, q.SortOrder), len(args)-1, len(args),
	)
	return query, args
}

// buildCountQuery counts every row matching f.
func buildCountQuery(f Filter) (string, []any) {
	where, args := whereClause(f)
	return "SELECT COUNT(*) FROM todos WHERE " + where, args
}

// buildUpdateQuery renders a scoped UPDATE setting updated_at plus each
// provided field, returning the updated row.
func buildUpdateQuery(id, ownerID int64, p Patch) (string, []any) {
	setClauses := []string{"updated_at = $1"}
	args := []any{p.UpdatedAt}

	if p.Title != nil {
		args = append(args, *p.Title)
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", len(args)))
	}
	if p.Description != nil {
		args = append(args, *p.Description)
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", len(args)))
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf(
		"UPDATE todos SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), len(args)-1, len(args), todoColumns,
	)
	return query, args
}
