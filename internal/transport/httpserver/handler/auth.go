package handler

import (
	"errors"
	"net/http"
	"time"

	"fintrack-go/internal/auth"
	userdomain "fintrack-go/internal/domain/user"
	"fintrack-go/internal/transport/httpserver/middleware"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type userResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	PicturePath string `json:"picture_path,omitempty"`
}

func toUserResponse(u userdomain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		PicturePath: u.PicturePath,
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	_, err := h.Users.Register(r.Context(), userdomain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, userdomain.ErrEmailTaken) {
			h.log.BusinessError("auth.register: email taken", err)
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		if isValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.InternalError("auth.register: create user failed", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeMessage(w, http.StatusCreated, "registration successful")
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	found, err := h.Users.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrUserNotFound):
			h.log.BusinessError("auth.login: user not found", err, "name", req.Name)
			writeError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, userdomain.ErrPasswordMismatch):
			h.log.BusinessError("auth.login: bad password", err, "name", req.Name)
			writeError(w, http.StatusBadRequest, "incorrect password")
		case isValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.InternalError("auth.login: lookup failed", err, "name", req.Name)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	token, err := auth.GenerateToken(h.cfg.Auth.JWTSecret, found.ID, h.cfg.Auth.TokenTTL)
	if err != nil {
		h.log.InternalError("auth.login: sign token failed", err, "user_id", found.ID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.Auth.TokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.Env != "development",
	})

	writeData(w, http.StatusOK, toUserResponse(*found))
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeMessage(w, http.StatusOK, "logged out")
}

// AuthCheck echoes the identity carried by the verified credential.
func (h *Handlers) AuthCheck(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	found, err := h.Users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			h.log.BusinessError("auth.check: user gone", err, "user_id", userID)
			writeError(w, http.StatusUnauthorized, "user no longer exists")
			return
		}
		h.log.InternalError("auth.check: lookup failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusOK, toUserResponse(*found))
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
