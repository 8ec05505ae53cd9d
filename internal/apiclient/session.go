package apiclient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Session is the locally cached sign-in state of atelierctl.
type Session struct {
	Email   string
	Token   string
	SavedAt time.Time
}

// A single-row table is enough: atelierctl manages one admin session at a time.
const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
    id       INTEGER PRIMARY KEY CHECK (id = 1),
    email    TEXT NOT NULL,
    token    TEXT NOT NULL,
    saved_at TIMESTAMP NOT NULL
);`

const (
	saveSession = `
INSERT INTO sessions (id, email, token, saved_at) VALUES (1, $1, $2, $3)
ON CONFLICT (id) DO UPDATE SET email = excluded.email, token = excluded.token, saved_at = excluded.saved_at;`

	loadSession  = `SELECT email, token, saved_at FROM sessions WHERE id = 1;`
	clearSession = `DELETE FROM sessions WHERE id = 1;`
)

type sqliteSessionStore struct {
	db *sql.DB
}

// NewSessionStore opens (creating if needed) the local sqlite database that
// caches the admin session token between atelierctl runs.
func NewSessionStore(ctx context.Context, dbPath string) (SessionStore, error) {
	if err := createLocalDBFileIfNotExists(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening connection to local DB: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting local DB: %w", err)
	}

	if _, err = db.ExecContext(ctx, createSessionsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating sessions table: %w", err)
	}

	return &sqliteSessionStore{db: db}, nil
}

func (s *sqliteSessionStore) SaveSession(ctx context.Context, email, token string) error {
	if _, err := s.db.ExecContext(ctx, saveSession, email, token, time.Now()); err != nil {
		return fmt.Errorf("error saving local session: %w", err)
	}
	return nil
}

func (s *sqliteSessionStore) LoadSession(ctx context.Context) (Session, error) {
	var session Session

	row := s.db.QueryRowContext(ctx, loadSession)
	if err := row.Scan(&session.Email, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrLocalSessionNotFound
		}
		return Session{}, fmt.Errorf("error loading local session: %w", err)
	}

	return session, nil
}

func (s *sqliteSessionStore) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, clearSession); err != nil {
		return fmt.Errorf("error clearing local session: %w", err)
	}
	return nil
}

func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating local DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
