package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	goaldomain "fintrack-go/internal/domain/goal"
	"fintrack-go/internal/transport/httpserver/middleware"
)

type createGoalRequest struct {
	GoalName            string  `json:"goal_name"`
	TargetAmount        float64 `json:"target_amount"`
	SavedAmount         float64 `json:"saved_amount"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	Deadline            *string `json:"deadline"`
	Priority            string  `json:"priority"`
}

type updateGoalRequest struct {
	GoalName            *string  `json:"goal_name"`
	TargetAmount        *float64 `json:"target_amount"`
	SavedAmount         *float64 `json:"saved_amount"`
	MonthlyContribution *float64 `json:"monthly_contribution"`
	Deadline            *string  `json:"deadline"`
	Priority            *string  `json:"priority"`
	Status              *string  `json:"status"`
}

type goalResponse struct {
	ID                  uint    `json:"id"`
	GoalName            string  `json:"goal_name"`
	TargetAmount        float64 `json:"target_amount"`
	SavedAmount         float64 `json:"saved_amount"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	Deadline            string  `json:"deadline,omitempty"`
	Priority            string  `json:"priority"`
	Status              string  `json:"status"`
	ProgressPercent     float64 `json:"progress_percent"`
}

type goalSummaryResponse struct {
	ActiveCount     int64   `json:"active_count"`
	TotalTarget     float64 `json:"total_target"`
	TotalSaved      float64 `json:"total_saved"`
	ProgressPercent float64 `json:"progress_percent"`
}

func toGoalResponse(g goaldomain.SavingGoal) goalResponse {
	return goalResponse{
		ID:                  g.ID,
		GoalName:            g.GoalName,
		TargetAmount:        g.TargetAmount,
		SavedAmount:         g.SavedAmount,
		MonthlyContribution: g.MonthlyContribution,
		Deadline:            formatDatePtr(g.Deadline),
		Priority:            string(g.Priority),
		Status:              string(g.Status),
		ProgressPercent:     g.ProgressPercent(),
	}
}

func toGoalResponses(items []goaldomain.SavingGoal) []goalResponse {
	out := make([]goalResponse, 0, len(items))
	for _, g := range items {
		out = append(out, toGoalResponse(g))
	}
	return out
}

func (h *Handlers) ListGoals(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	items, err := h.Goals.List(r.Context(), userID)
	if err != nil {
		h.log.InternalError("goal.list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusOK, toGoalResponses(items))
}

func (h *Handlers) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req createGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	input := goaldomain.CreateInput{
		UserID:              userID,
		GoalName:            req.GoalName,
		TargetAmount:        req.TargetAmount,
		SavedAmount:         req.SavedAmount,
		MonthlyContribution: req.MonthlyContribution,
		Priority:            goaldomain.Priority(req.Priority),
	}
	if req.Deadline != nil {
		deadline, err := parseDateRequired(*req.Deadline)
		if err != nil {
			writeError(w, http.StatusBadRequest, "deadline must be YYYY-MM-DD")
			return
		}
		input.Deadline = &deadline
	}

	created, err := h.Goals.Create(r.Context(), input)
	if err != nil {
		if isValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.InternalError("goal.create failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusCreated, toGoalResponse(*created))
}

func (h *Handlers) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	goalID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updateGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	input := goaldomain.UpdateInput{
		GoalName:            req.GoalName,
		TargetAmount:        req.TargetAmount,
		SavedAmount:         req.SavedAmount,
		MonthlyContribution: req.MonthlyContribution,
	}
	if req.Deadline != nil {
		deadline, err := parseDateRequired(*req.Deadline)
		if err != nil {
			writeError(w, http.StatusBadRequest, "deadline must be YYYY-MM-DD")
			return
		}
		input.Deadline = &deadline
	}
	if req.Priority != nil {
		priority := goaldomain.Priority(*req.Priority)
		input.Priority = &priority
	}
	if req.Status != nil {
		status := goaldomain.Status(*req.Status)
		input.Status = &status
	}

	updated, err := h.Goals.Update(r.Context(), userID, goalID, input)
	if err != nil {
		switch {
		case errors.Is(err, goaldomain.ErrGoalNotFound):
			writeError(w, http.StatusNotFound, "saving goal not found")
		case isValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.InternalError("goal.update failed", err, "user_id", userID, "goal_id", goalID)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeData(w, http.StatusOK, toGoalResponse(*updated))
}

func (h *Handlers) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	goalID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Goals.Delete(r.Context(), userID, goalID); err != nil {
		if errors.Is(err, goaldomain.ErrGoalNotFound) {
			writeError(w, http.StatusNotFound, "saving goal not found")
			return
		}
		h.log.InternalError("goal.delete failed", err, "user_id", userID, "goal_id", goalID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeMessage(w, http.StatusOK, "saving goal deleted")
}

func (h *Handlers) GoalSummary(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	summary, err := h.Goals.Summary(r.Context(), userID)
	if err != nil {
		h.log.InternalError("goal.summary failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusOK, goalSummaryResponse{
		ActiveCount:     summary.ActiveCount,
		TotalTarget:     summary.TotalTarget,
		TotalSaved:      summary.TotalSaved,
		ProgressPercent: summary.ProgressPercent,
	})
}

func (h *Handlers) GoalProgress(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	items, err := h.Goals.Progress(r.Context(), userID)
	if err != nil {
		h.log.InternalError("goal.progress failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusOK, toGoalResponses(items))
}
