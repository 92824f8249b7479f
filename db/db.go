package db

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
)

// Connect opens the database from the DSN env var and creates the schema if
// it does not exist yet. The DSN must include parseTime=true so DATETIME
// columns scan as time.Time. The caller owns the returned handle.
func Connect() (*sql.DB, error) {
	dsn := os.Getenv("DSN")
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("DB connection error: %w", err)
	}

	usersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255),
		email VARCHAR(255),
		username VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		profile_pic MEDIUMTEXT
	);`

	entriesTable := `
	CREATE TABLE IF NOT EXISTS entries (
		id CHAR(36) PRIMARY KEY,
		user VARCHAR(255) NOT NULL,
		title VARCHAR(255) NOT NULL,
		date DATETIME NOT NULL,
		mood VARCHAR(255),
		content TEXT NOT NULL,
		lat DOUBLE,
		lng DOUBLE,
		INDEX user_date (user, date)
	);`

	if _, err := db.Exec(usersTable); err != nil {
		return nil, fmt.Errorf("error creating users table: %w", err)
	}
	if _, err := db.Exec(entriesTable); err != nil {
		return nil, fmt.Errorf("error creating entries table: %w", err)
	}

	return db, nil
}
