package todos

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
	"github.com/MehradEsmaeilZad81/TodoList/auth"
	"github.com/MehradEsmaeilZad81/TodoList/validation"
)

// Handler exposes the Service over HTTP. Every route expects auth.JWTMiddleware
// to have stored the caller's identity in the request context.
type Handler struct {
	service *Service
}

// NewHandler creates a new Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the todo routes with a `chi.Router`.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", h.create)
	router.Get("/", h.list)
	router.Get("/{id}", h.get)
	router.Patch("/{id}", h.update)
	router.Delete("/{id}", h.remove)
}

// create godoc
// @Summary Create a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param todo body todos.CreateTodoRequest true "Todo to create"
// @Success 201 {object} todos.Todo
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Router /todos [post]
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	var req CreateTodoRequest
	if err := validation.DecodeJSON(w, r, &req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	todo, err := h.service.Create(r.Context(), id.UserID, req)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusCreated, todo)
}

// list godoc
// @Summary List todos
// @Description Paginated, searchable and sortable listing of the caller's todos.
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1) minimum(1) maximum(1000000)
// @Param limit query int false "Items per page" default(10) minimum(1) maximum(100)
// @Param search query string false "Case-insensitive match on title or description"
// @Param sortBy query string false "Sort field" Enums(title, description, createdAt, updatedAt) default(createdAt)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success 200 {object} todos.ListResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Router /todos [get]
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	params, err := parseListParams(r.URL.Query())
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	resp, err := h.service.List(r.Context(), id.UserID, params)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, resp)
}

// get godoc
// @Summary Get a todo
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} todos.Todo
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /todos/{id} [get]
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, todoID, ok := identityAndID(w, r)
	if !ok {
		return
	}

	todo, err := h.service.Get(r.Context(), todoID, id.UserID)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, todo)
}

// update godoc
// @Summary Update a todo
// @Description Applies only the provided fields.
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Param todo body todos.UpdateTodoRequest true "Fields to change"
// @Success 200 {object} todos.Todo
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /todos/{id} [patch]
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, todoID, ok := identityAndID(w, r)
	if !ok {
		return
	}
	var req UpdateTodoRequest
	if err := validation.DecodeJSON(w, r, &req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	todo, err := h.service.Update(r.Context(), todoID, id.UserID, req)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, todo)
}

// remove godoc
// @Summary Delete a todo
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} todos.MessageResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /todos/{id} [delete]
func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, todoID, ok := identityAndID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Remove(r.Context(), todoID, id.UserID)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, resp)
}

func identity(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		apperror.WriteError(w, r, apperror.NewAuthError("Unauthorized", nil))
		return nil, false
	}
	return id, true
}

func identityAndID(w http.ResponseWriter, r *http.Request) (*auth.Identity, int64, bool) {
	id, ok := identity(w, r)
	if !ok {
		return nil, 0, false
	}
	todoID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		apperror.WriteError(w, r, err)
		return nil, 0, false
	}
	return id, todoID, true
}

// parseID accepts positive decimal ids only.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.NewValidationError(apperror.FieldError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	return id, nil
}

// parseListParams reads the listing query string on top of the defaults.
// Range and enum checks happen in Service.List; only integer syntax and search
// encoding are checked here.
func parseListParams(values url.Values) (ListParams, error) {
	params := DefaultListParams()
	var fields []apperror.FieldError

	parseInt := func(key string, target *int) {
		raw := values.Get(key)
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, apperror.FieldError{Field: key, Message: key + " must be an integer number"})
			return
		}
		*target = n
	}
	parseInt("page", &params.Page)
	parseInt("limit", &params.Limit)

	if v := values.Get("sortBy"); v != "" {
		params.SortBy = v
	}
	if v := values.Get("sortOrder"); v != "" {
		params.SortOrder = v
	}
	params.Search = values.Get("search")
	if !utf8.ValidString(params.Search) || strings.ContainsRune(params.Search, 0) {
		fields = append(fields, apperror.FieldError{Field: "search", Message: "search must be valid UTF-8 text"})
	}

	if len(fields) > 0 {
		return ListParams{}, apperror.NewValidationError(fields...)
	}
	return params, nil
}
