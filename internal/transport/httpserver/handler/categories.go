package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	categorydomain "fintrack-go/internal/domain/category"
	"fintrack-go/internal/transport/httpserver/middleware"
)

type createCategoryRequest struct {
	Name string `json:"name"`
}

type categoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	items, err := h.Categories.List(r.Context(), userID)
	if err != nil {
		h.log.InternalError("category.list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]categoryResponse, 0, len(items))
	for _, c := range items {
		out = append(out, categoryResponse{ID: c.ID, Name: c.Name})
	}

	writeData(w, http.StatusOK, out)
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	created, err := h.Categories.Create(r.Context(), userID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, categorydomain.ErrCategoryExists):
			h.log.BusinessError("category.create: duplicate name", err, "user_id", userID)
			writeError(w, http.StatusConflict, "category name already exists")
		case isValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.InternalError("category.create failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeData(w, http.StatusCreated, categoryResponse{ID: created.ID, Name: created.Name})
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	categoryID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Categories.Delete(r.Context(), userID, categoryID); err != nil {
		switch {
		case errors.Is(err, categorydomain.ErrCategoryInUse):
			h.log.BusinessError("category.delete: still referenced", err, "user_id", userID, "category_id", categoryID)
			writeError(w, http.StatusConflict, "category is referenced by budgets or transactions")
		case errors.Is(err, categorydomain.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "category not found")
		default:
			h.log.InternalError("category.delete failed", err, "user_id", userID, "category_id", categoryID)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeMessage(w, http.StatusOK, "category deleted")
}
