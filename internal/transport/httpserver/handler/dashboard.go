package handler

import (
	"net/http"

	"fintrack-go/internal/transport/httpserver/middleware"
)

// Dashboard returns the consolidated snapshot: wallet balances, six months of
// spending trends, budget and savings overviews, and upcoming payments.
func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	snapshot, err := h.Dashboard.Build(r.Context(), userID)
	if err != nil {
		h.log.InternalError("dashboard.build failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusOK, snapshot)
}
