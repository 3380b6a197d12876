package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// schema holds the table set: venues, artists, and shows with two
// required foreign keys cascading from both parents.  Statements are
// idempotent so EnsureSchema can run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS venues (
	id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	name                VARCHAR(255) NOT NULL,
	city                VARCHAR(120) NOT NULL,
	state               VARCHAR(120) NOT NULL,
	address             VARCHAR(120) NOT NULL,
	phone               VARCHAR(120) NOT NULL DEFAULT '',
	image_link          VARCHAR(500) NOT NULL DEFAULT '',
	website             VARCHAR(120) NOT NULL DEFAULT '',
	facebook_link       VARCHAR(120) NOT NULL DEFAULT '',
	genres              VARCHAR(120) NOT NULL DEFAULT '',
	seeking_talent      BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description VARCHAR(500) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS artists (
	id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	name                VARCHAR(255) NOT NULL,
	city                VARCHAR(120) NOT NULL,
	state               VARCHAR(120) NOT NULL,
	phone               VARCHAR(120) NOT NULL DEFAULT '',
	image_link          VARCHAR(500) NOT NULL DEFAULT '',
	website             VARCHAR(120) NOT NULL DEFAULT '',
	facebook_link       VARCHAR(120) NOT NULL DEFAULT '',
	genres              VARCHAR(120) NOT NULL DEFAULT '',
	seeking_venue       BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description VARCHAR(500) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS shows (
	id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	venue_id   BIGINT UNSIGNED NOT NULL,
	artist_id  BIGINT UNSIGNED NOT NULL,
	start_time DATETIME NOT NULL,
	CONSTRAINT fk_shows_venue  FOREIGN KEY (venue_id)  REFERENCES venues (id)  ON DELETE CASCADE,
	CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id) ON DELETE CASCADE
);
`

// EnsureSchema creates the tables when they do not exist yet.  The
// driver executes one statement at a time, so the DDL is split on the
// statement separator.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
