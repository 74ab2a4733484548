package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tuctuc-telu/shuttle-tracker/internal/auth"
	"github.com/tuctuc-telu/shuttle-tracker/internal/db"
	"github.com/tuctuc-telu/shuttle-tracker/internal/models"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService *auth.Service
	repo        db.Repo
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *auth.Service, repo db.Repo) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		repo:        repo,
	}
}

// Register handles user registration. NIM uniqueness is enforced here;
// the access layer itself does not dedupe.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.Name == "" || req.NIM == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "name, nim and password are required")
		return
	}

	_, err := h.repo.FindUserByNIM(r.Context(), req.NIM)
	if err == nil {
		respondError(w, http.StatusConflict, "nim already registered")
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		respondInternal(w, err)
		return
	}

	if _, err := h.repo.CreateUser(r.Context(), req.Name, req.NIM, req.Password, req.Faculty); err != nil {
		respondInternal(w, err)
		return
	}

	user, err := h.repo.FindUserByNIM(r.Context(), req.NIM)
	if err != nil {
		respondInternal(w, err)
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		respondInternal(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "registration successful",
		Data:    models.AuthResponse{User: user.Public(), Token: token},
	})
}

// Login handles user login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.NIM == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "nim and password are required")
		return
	}

	user, err := h.repo.FindUserByNIM(r.Context(), req.NIM)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "nim not registered")
			return
		}
		respondInternal(w, err)
		return
	}

	if !h.repo.VerifyPassword(req.Password, user.PasswordHash) {
		respondError(w, http.StatusUnauthorized, "incorrect password")
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		respondInternal(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "login successful",
		Data:    models.AuthResponse{User: user.Public(), Token: token},
	})
}
