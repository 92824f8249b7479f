package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"mini-diary/models"
	"mini-diary/store"
)

type AuthHandler struct {
	Users *store.UserStore
}

type signupRequest struct {
	Name     *string `json:"name"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Password string  `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	}
	err := h.Users.Create(&user)
	if errors.Is(err, store.ErrDuplicate) {
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeMessage(w, "Signup successful, please login")
}

// Login checks the supplied credentials against the stored record. The
// comparison happens here rather than in the WHERE clause because MySQL's
// default collation would match passwords case-insensitively.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.Users.FindByUsername(req.Username)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user.Password != req.Password {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	writeMessage(w, "Login successful")
}
