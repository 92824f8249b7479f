package store

import (
	"database/sql"
	"testing"

	"mini-diary/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "username", "password", "profile_pic"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func strPtr(s string) *string { return &s }

func TestUserStoreFindByUsername(t *testing.T) {
	db, mock := newMock(t)
	s := NewUserStore(db)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Alice", "alice@example.com", "alice", "secret", nil))

	u, err := s.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "secret", u.Password)
	require.NotNil(t, u.Name)
	assert.Equal(t, "Alice", *u.Name)
	assert.Nil(t, u.ProfilePic)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreFindByUsernameNotFound(t *testing.T) {
	db, mock := newMock(t)
	s := NewUserStore(db)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := s.FindByUsername("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStoreCreate(t *testing.T) {
	db, mock := newMock(t)
	s := NewUserStore(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Alice", "alice@example.com", "alice", "secret", nil).
		WillReturnResult(sqlmock.NewResult(7, 1))

	u := models.User{
		Name:     strPtr("Alice"),
		Email:    strPtr("alice@example.com"),
		Username: "alice",
		Password: "secret",
	}
	require.NoError(t, s.Create(&u))
	assert.Equal(t, 7, u.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreCreateDuplicate(t *testing.T) {
	db, mock := newMock(t)
	s := NewUserStore(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice'"})

	err := s.Create(&models.User{Username: "alice", Password: "secret"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserStoreUpdateMerge(t *testing.T) {
	db, mock := newMock(t)
	s := NewUserStore(db)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Alice", "alice@example.com", "alice", "secret", "old-pic"))

	// Empty name and password must be skipped, empty email and a new
	// profilePic must be applied.
	mock.ExpectExec("UPDATE users SET").
		WithArgs("Alice", "", "secret", "new-pic", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := s.Update("alice", models.UserPatch{
		Name:       strPtr(""),
		Email:      strPtr(""),
		Password:   strPtr(""),
		ProfilePic: strPtr("new-pic"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", *u.Name)
	assert.Equal(t, "", *u.Email)
	assert.Equal(t, "secret", u.Password)
	assert.Equal(t, "new-pic", *u.ProfilePic)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreUpdateAbsentFieldsUntouched(t *testing.T) {
	db, mock := newMock(t)
	s := NewUserStore(db)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Alice", "alice@example.com", "alice", "secret", nil))

	mock.ExpectExec("UPDATE users SET").
		WithArgs("Alice", "alice@example.com", "hunter2", nil, "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := s.Update("alice", models.UserPatch{Password: strPtr("hunter2")})
	require.NoError(t, err)
	assert.Equal(t, "hunter2", u.Password)
	assert.Equal(t, "alice@example.com", *u.Email)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreUpdateNotFound(t *testing.T) {
	db, mock := newMock(t)
	s := NewUserStore(db)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Update("ghost", models.UserPatch{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, ErrNotFound)
}
