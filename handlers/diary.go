package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mini-diary/models"
	"mini-diary/store"

	"github.com/go-chi/chi/v5"
)

type DiaryHandler struct {
	Entries *store.DiaryStore
}

type entryRequest struct {
	User    string      `json:"user"`
	Title   string      `json:"title"`
	Date    models.Date `json:"date"`
	Mood    *string     `json:"mood"`
	Content string      `json:"content"`
	Lat     *float64    `json:"lat"`
	Lng     *float64    `json:"lng"`
}

func (req *entryRequest) entry() models.Entry {
	return models.Entry{
		User:    req.User,
		Title:   req.Title,
		Date:    req.Date,
		Mood:    req.Mood,
		Content: req.Content,
		Lat:     req.Lat,
		Lng:     req.Lng,
	}
}

func (h *DiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.User == "" || req.Title == "" || req.Content == "" || req.Date.IsZero() {
		writeError(w, http.StatusBadRequest, "User, title, date and content are required")
		return
	}

	entry := req.entry()
	if err := h.Entries.Create(&entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Could not save entry")
		return
	}
	writeMessage(w, "Diary entry saved!")
}

func (h *DiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		writeError(w, http.StatusBadRequest, "User is required")
		return
	}

	var day *time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := models.ParseDate(dateStr)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Could not fetch entries")
			return
		}
		day = &parsed.Time
	}

	entries, err := h.Entries.ListByUser(user, day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not fetch entries")
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// Update replaces every field of the entry with the request values. Omitted
// mood/lat/lng clear the stored ones; this route is a full replace, unlike
// the profile update's merge.
func (h *DiaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.Entries.UpdateByID(id, req.entry())
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not update entry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Entry updated", "entry": updated})
}

func (h *DiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	_, err := h.Entries.DeleteByID(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not delete entry")
		return
	}
	writeMessage(w, "Entry deleted")
}
