package store

import (
	"database/sql"
	"errors"
	"time"

	"mini-diary/models"

	"github.com/google/uuid"
)

const entryColumns = "id, user, title, date, mood, content, lat, lng"

// DiaryStore persists diary entries.
type DiaryStore struct {
	DB *sql.DB
}

func NewDiaryStore(db *sql.DB) *DiaryStore {
	return &DiaryStore{DB: db}
}

// Create inserts the entry under a freshly minted identifier and fills it in
// on the passed entry.
func (s *DiaryStore) Create(e *models.Entry) error {
	e.ID = uuid.NewString()
	_, err := s.DB.Exec(
		"INSERT INTO entries (id, user, title, date, mood, content, lat, lng) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.User, e.Title, e.Date, e.Mood, e.Content, e.Lat, e.Lng,
	)
	return err
}

// ListByUser returns the user's entries newest-first. When day is non-nil the
// result is restricted to the half-open window [day, day+1), matching every
// stored timestamp on that calendar day regardless of time of day.
func (s *DiaryStore) ListByUser(user string, day *time.Time) ([]models.Entry, error) {
	query := "SELECT " + entryColumns + " FROM entries WHERE user = ?"
	args := []any{user}
	if day != nil {
		query += " AND date >= ? AND date < ?"
		args = append(args, *day, day.AddDate(0, 0, 1))
	}
	query += " ORDER BY date DESC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.ID, &e.User, &e.Title, &e.Date, &e.Mood, &e.Content, &e.Lat, &e.Lng); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *DiaryStore) findByID(id string) (*models.Entry, error) {
	var e models.Entry
	err := s.DB.QueryRow(
		"SELECT "+entryColumns+" FROM entries WHERE id = ?", id,
	).Scan(&e.ID, &e.User, &e.Title, &e.Date, &e.Mood, &e.Content, &e.Lat, &e.Lng)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateByID overwrites every column with the supplied values, including
// clearing mood/lat/lng when they are nil. This is deliberately a full
// replace, not a merge. The updated row is read back so that an update whose
// values happen to match the old ones is not mistaken for a missing row
// (MySQL reports zero affected rows for no-op updates).
func (s *DiaryStore) UpdateByID(id string, e models.Entry) (*models.Entry, error) {
	_, err := s.DB.Exec(
		"UPDATE entries SET user = ?, title = ?, content = ?, date = ?, mood = ?, lat = ?, lng = ? WHERE id = ?",
		e.User, e.Title, e.Content, e.Date, e.Mood, e.Lat, e.Lng, id,
	)
	if err != nil {
		return nil, err
	}
	return s.findByID(id)
}

// DeleteByID removes the entry and returns it.
func (s *DiaryStore) DeleteByID(id string) (*models.Entry, error) {
	e, err := s.findByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.DB.Exec("DELETE FROM entries WHERE id = ?", id); err != nil {
		return nil, err
	}
	return e, nil
}
