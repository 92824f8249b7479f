package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"mini-diary/models"
	"mini-diary/store"

	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	Users *store.UserStore
}

// Get returns the profile without the password field.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	user, err := h.Users.FindByUsername(username)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not fetch profile")
		return
	}
	writeJSON(w, http.StatusOK, user.Profile())
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.Users.Update(username, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Could not update profile")
		return
	}
	writeMessage(w, "Profile updated successfully")
}

// GetFull is the legacy /profile/{username} route used by the older
// frontend. It returns the whole record, password included, and reports
// errors under a "message" key instead of "error".
func (h *ProfileHandler) GetFull(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	user, err := h.Users.FindByUsername(username)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Profile not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateFull is the legacy update route. Merge semantics are the same as
// Update; only the response keys differ.
func (h *ProfileHandler) UpdateFull(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	if _, err := h.Users.Update(username, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}
	writeMessage(w, "Profile updated successfully")
}
