package handler

import (
	"errors"
	"net/http"

	walletdomain "fintrack-go/internal/domain/wallet"
	"fintrack-go/internal/transport/httpserver/middleware"
)

type createWalletRequest struct {
	InitialBalance float64 `json:"initial_balance"`
}

type updateWalletRequest struct {
	CurrentBalance *float64 `json:"current_balance"`
}

type walletResponse struct {
	ID             uint    `json:"id"`
	InitialBalance float64 `json:"initial_balance"`
	CurrentBalance float64 `json:"current_balance"`
}

func toWalletResponse(w walletdomain.Wallet) walletResponse {
	return walletResponse{
		ID:             w.ID,
		InitialBalance: w.InitialBalance,
		CurrentBalance: w.CurrentBalance,
	}
}

func (h *Handlers) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	found, err := h.Wallets.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletdomain.ErrWalletNotFound) {
			writeError(w, http.StatusNotFound, "wallet not found")
			return
		}
		h.log.InternalError("wallet.get failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusOK, toWalletResponse(*found))
}

func (h *Handlers) CreateWallet(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req createWalletRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	created, err := h.Wallets.Create(r.Context(), userID, req.InitialBalance)
	if err != nil {
		switch {
		case errors.Is(err, walletdomain.ErrWalletExists):
			h.log.BusinessError("wallet.create: already exists", err, "user_id", userID)
			writeError(w, http.StatusConflict, "wallet already exists")
		case isValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.InternalError("wallet.create failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeData(w, http.StatusCreated, toWalletResponse(*created))
}

func (h *Handlers) UpdateWallet(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req updateWalletRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	updated, err := h.Wallets.Update(r.Context(), userID, walletdomain.UpdateInput{
		CurrentBalance: req.CurrentBalance,
	})
	if err != nil {
		switch {
		case errors.Is(err, walletdomain.ErrWalletNotFound):
			writeError(w, http.StatusNotFound, "wallet not found")
		case isValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.InternalError("wallet.update failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeData(w, http.StatusOK, toWalletResponse(*updated))
}
