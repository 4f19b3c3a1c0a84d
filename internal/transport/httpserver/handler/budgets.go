package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	budgetdomain "fintrack-go/internal/domain/budget"
	"fintrack-go/internal/transport/httpserver/middleware"
)

type createBudgetRequest struct {
	CategoryID uint    `json:"category_id"`
	Amount     float64 `json:"amount"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
}

type updateBudgetRequest struct {
	CategoryID *uint    `json:"category_id"`
	Amount     *float64 `json:"amount"`
	StartDate  *string  `json:"start_date"`
	EndDate    *string  `json:"end_date"`
}

// budgetResponse carries the stored row plus the derived fields: status comes
// from the window against today, spend and remaining from the ledger.
type budgetResponse struct {
	ID              uint    `json:"id"`
	CategoryID      uint    `json:"category_id"`
	CategoryName    string  `json:"category_name,omitempty"`
	Amount          float64 `json:"amount"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Status          string  `json:"status"`
	SpentAmount     float64 `json:"spent_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
}

func (h *Handlers) toBudgetResponse(b budgetdomain.BudgetWithSpend) budgetResponse {
	return budgetResponse{
		ID:              b.ID,
		CategoryID:      b.CategoryID,
		CategoryName:    b.CategoryName,
		Amount:          b.Amount,
		StartDate:       formatDate(b.StartDate),
		EndDate:         formatDate(b.EndDate),
		Status:          string(b.StatusOn(h.Budgets.Today())),
		SpentAmount:     b.SpentAmount,
		RemainingAmount: b.RemainingAmount(),
	}
}

func (h *Handlers) listBudgetsFor(w http.ResponseWriter, r *http.Request, userID uint) {
	items, err := h.Budgets.List(r.Context(), userID)
	if err != nil {
		h.log.InternalError("budget.list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]budgetResponse, 0, len(items))
	for _, b := range items {
		out = append(out, h.toBudgetResponse(b))
	}

	writeData(w, http.StatusOK, out)
}

func (h *Handlers) ListBudgets(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	h.listBudgetsFor(w, r, userID)
}

// ListBudgetsByUser serves the path-scoped variant. The path user must be the
// authenticated caller; anything else is a 403, never a data leak.
func (h *Handlers) ListBudgetsByUser(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.UserIDFromContext(r.Context())

	pathID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if pathID != callerID {
		h.log.Warn("budget.list: cross-user access", "caller_id", callerID, "path_id", pathID)
		writeError(w, http.StatusForbidden, "cannot access another user's budgets")
		return
	}

	h.listBudgetsFor(w, r, callerID)
}

func (h *Handlers) CreateBudget(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req createBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	start, err := parseDateRequired(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := parseDateRequired(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	created, err := h.Budgets.Create(r.Context(), budgetdomain.CreateInput{
		UserID:     userID,
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		switch {
		case errors.Is(err, budgetdomain.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "category not found")
		case isValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.InternalError("budget.create failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeData(w, http.StatusCreated, h.toBudgetResponse(*created))
}

func (h *Handlers) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	budgetID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updateBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	input := budgetdomain.UpdateInput{
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
	}
	if req.StartDate != nil {
		start, err := parseDateRequired(*req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDateRequired(*req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
			return
		}
		input.EndDate = &end
	}

	updated, err := h.Budgets.Update(r.Context(), userID, budgetID, input)
	if err != nil {
		switch {
		case errors.Is(err, budgetdomain.ErrBudgetNotFound):
			writeError(w, http.StatusNotFound, "budget not found")
		case errors.Is(err, budgetdomain.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "category not found")
		case isValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.InternalError("budget.update failed", err, "user_id", userID, "budget_id", budgetID)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeData(w, http.StatusOK, h.toBudgetResponse(*updated))
}

func (h *Handlers) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	budgetID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Budgets.Delete(r.Context(), userID, budgetID); err != nil {
		if errors.Is(err, budgetdomain.ErrBudgetNotFound) {
			writeError(w, http.StatusNotFound, "budget not found")
			return
		}
		h.log.InternalError("budget.delete failed", err, "user_id", userID, "budget_id", budgetID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeMessage(w, http.StatusOK, "budget deleted")
}
