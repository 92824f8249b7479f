package store

import (
	"database/sql"
	"errors"

	"mini-diary/models"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrNotFound means the record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means a unique constraint rejected the write.
	ErrDuplicate = errors.New("duplicate key")
)

const mysqlDuplicateEntry = 1062

// UserStore persists account records.
type UserStore struct {
	DB *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{DB: db}
}

func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	var u models.User
	err := s.DB.QueryRow(
		"SELECT id, name, email, username, password, profile_pic FROM users WHERE username = ?",
		username,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.Password, &u.ProfilePic)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new account. A username collision comes back as
// ErrDuplicate; the UNIQUE column is the only uniqueness check.
func (s *UserStore) Create(u *models.User) error {
	res, err := s.DB.Exec(
		"INSERT INTO users (name, email, username, password, profile_pic) VALUES (?, ?, ?, ?, ?)",
		u.Name, u.Email, u.Username, u.Password, u.ProfilePic,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err == nil {
		u.ID = int(id)
	}
	return nil
}

// Update merges a patch into an existing account and writes it back.
// Name and Password are skipped when absent or empty; Email and ProfilePic
// are applied whenever present, including an explicit empty string.
func (s *UserStore) Update(username string, patch models.UserPatch) (*models.User, error) {
	u, err := s.FindByUsername(username)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && *patch.Name != "" {
		u.Name = patch.Name
	}
	if patch.Email != nil {
		u.Email = patch.Email
	}
	if patch.ProfilePic != nil {
		u.ProfilePic = patch.ProfilePic
	}
	if patch.Password != nil && *patch.Password != "" {
		u.Password = *patch.Password
	}

	_, err = s.DB.Exec(
		"UPDATE users SET name = ?, email = ?, password = ?, profile_pic = ? WHERE username = ?",
		u.Name, u.Email, u.Password, u.ProfilePic, username,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}
