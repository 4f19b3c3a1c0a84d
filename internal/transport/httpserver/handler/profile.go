package handler

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	userdomain "fintrack-go/internal/domain/user"
	"fintrack-go/internal/transport/httpserver/middleware"
)

type updateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

var allowedPictureExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	updated, err := h.Users.UpdateProfile(r.Context(), userID, userdomain.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, userdomain.ErrEmailTaken):
			h.log.BusinessError("profile.update: email taken", err, "user_id", userID)
			writeError(w, http.StatusConflict, "email already registered")
		case isValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.InternalError("profile.update failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeData(w, http.StatusOK, toUserResponse(*updated))
}

// UploadProfilePicture stores the multipart "picture" file under the uploads
// directory with a generated name and keeps the path on the user record.
func (h *Handlers) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Uploads.MaxSizeBytes)
	if err := r.ParseMultipartForm(h.cfg.Uploads.MaxSizeBytes); err != nil {
		writeError(w, http.StatusBadRequest, "picture exceeds the size limit or the form is malformed")
		return
	}

	file, header, err := r.FormFile("picture")
	if err != nil {
		writeError(w, http.StatusBadRequest, "picture file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedPictureExts[ext] {
		writeError(w, http.StatusBadRequest, "picture must be png, jpg, jpeg or webp")
		return
	}

	if err := os.MkdirAll(h.cfg.Uploads.Dir, 0o755); err != nil {
		h.log.InternalError("profile.picture: create upload dir failed", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	storedPath := filepath.Join(h.cfg.Uploads.Dir, uuid.NewString()+ext)
	dst, err := os.Create(storedPath)
	if err != nil {
		h.log.InternalError("profile.picture: create file failed", err, "path", storedPath)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.log.InternalError("profile.picture: write file failed", err, "path", storedPath)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	updated, err := h.Users.UpdatePicture(r.Context(), userID, storedPath)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		h.log.InternalError("profile.picture: update record failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusOK, toUserResponse(*updated))
}
