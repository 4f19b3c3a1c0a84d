package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	debtdomain "fintrack-go/internal/domain/debt"
	"fintrack-go/internal/transport/httpserver/middleware"
)

type createDebtRequest struct {
	DebtorName  string  `json:"debtor_name"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	DueDate     string  `json:"due_date"`
	Description string  `json:"description"`
}

type updateDebtRequest struct {
	DebtorName  *string  `json:"debtor_name"`
	Amount      *float64 `json:"amount"`
	DueDate     *string  `json:"due_date"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
}

type debtResponse struct {
	ID          uint    `json:"id"`
	DebtorName  string  `json:"debtor_name"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date"`
	Description string  `json:"description"`
}

func toDebtResponse(d debtdomain.Debt) debtResponse {
	return debtResponse{
		ID:          d.ID,
		DebtorName:  d.DebtorName,
		Amount:      d.Amount,
		Type:        string(d.Type),
		Status:      string(d.Status),
		DueDate:     formatDate(d.DueDate),
		Description: d.Description,
	}
}

func toDebtResponses(items []debtdomain.Debt) []debtResponse {
	out := make([]debtResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toDebtResponse(d))
	}
	return out
}

func (h *Handlers) ListDebts(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	items, err := h.Debts.List(r.Context(), userID)
	if err != nil {
		h.log.InternalError("debt.list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusOK, toDebtResponses(items))
}

func (h *Handlers) CreateDebt(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req createDebtRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	due, err := parseDateRequired(req.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "due_date must be YYYY-MM-DD")
		return
	}

	created, err := h.Debts.Create(r.Context(), debtdomain.CreateInput{
		UserID:      userID,
		DebtorName:  req.DebtorName,
		Amount:      req.Amount,
		Type:        debtdomain.Type(req.Type),
		DueDate:     due,
		Description: req.Description,
	})
	if err != nil {
		if isValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.InternalError("debt.create failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusCreated, toDebtResponse(*created))
}

// UpdateDebt applies a partial update. Marking a pending debt paid settles it
// against the wallet in the same database transaction.
func (h *Handlers) UpdateDebt(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	debtID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updateDebtRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	input := debtdomain.UpdateInput{
		DebtorName:  req.DebtorName,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.DueDate != nil {
		due, err := parseDateRequired(*req.DueDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "due_date must be YYYY-MM-DD")
			return
		}
		input.DueDate = &due
	}
	if req.Status != nil {
		status := debtdomain.Status(*req.Status)
		input.Status = &status
	}

	updated, err := h.Debts.Update(r.Context(), userID, debtID, input)
	if err != nil {
		switch {
		case errors.Is(err, debtdomain.ErrDebtNotFound):
			writeError(w, http.StatusNotFound, "debt not found")
		case errors.Is(err, debtdomain.ErrSameStatus):
			h.log.BusinessError("debt.update: status unchanged", err, "user_id", userID, "debt_id", debtID)
			writeError(w, http.StatusBadRequest, "debt already has that status")
		case errors.Is(err, debtdomain.ErrStatusReverted):
			h.log.BusinessError("debt.update: revert attempt", err, "user_id", userID, "debt_id", debtID)
			writeError(w, http.StatusBadRequest, "paid debts cannot return to pending")
		case errors.Is(err, debtdomain.ErrWalletNotFound):
			writeError(w, http.StatusNotFound, "wallet not found")
		case isValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.InternalError("debt.update failed", err, "user_id", userID, "debt_id", debtID)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeData(w, http.StatusOK, toDebtResponse(*updated))
}

func (h *Handlers) UpcomingDebts(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	items, err := h.Debts.Upcoming(r.Context(), userID)
	if err != nil {
		h.log.InternalError("debt.upcoming failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusOK, toDebtResponses(items))
}
