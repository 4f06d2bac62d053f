package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bloglist/bloglist-go/internal/middleware"
	"github.com/bloglist/bloglist-go/internal/model"
	"github.com/bloglist/bloglist-go/internal/service"
)

// BlogHandler handles HTTP requests for blog operations. Mutating routes
// sit behind the authenticator middleware; the handler pulls the resolved
// user out of the context once and passes it explicitly into the service.
type BlogHandler struct {
	service *service.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(svc *service.BlogService) *BlogHandler {
	return &BlogHandler{service: svc}
}

// HandleList handles GET /api/blogs requests.
func (h *BlogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, blogs)
}

// HandleGet handles GET /api/blogs/{id} requests.
func (h *BlogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	blog, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

// HandleCreate handles POST /api/blogs requests.
func (h *BlogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("token missing or invalid"))
		return
	}

	var req model.CreateBlogRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	blog, err := h.service.Create(r.Context(), user, req)
	if err != nil {
		if errors.Is(err, service.ErrTitleOrURLMissing) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, blog)
}

// HandleUpdate handles PATCH /api/blogs/{id} requests.
func (h *BlogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("token missing or invalid"))
		return
	}

	id := chi.URLParam(r, "id")

	var req model.UpdateBlogRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	blog, err := h.service.Update(r.Context(), user, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUpdateForbidden):
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

// HandleDelete handles DELETE /api/blogs/{id} requests.
func (h *BlogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("token missing or invalid"))
		return
	}

	id := chi.URLParam(r, "id")

	err := h.service.Delete(r.Context(), user, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrDeleteForbidden):
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
