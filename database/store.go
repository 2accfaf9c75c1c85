package database

import (
	"database/sql"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// Store wraps the sqlite handle with the two record kinds the client keeps
// locally: the single session row and named survey drafts. Values are opaque
// JSON blobs; the owning packages do the (un)marshaling.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SaveSession(token string, userJSON []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, token, user_json, saved_at) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET token = ?, user_json = ?, saved_at = ?`,
		token, string(userJSON), time.Now(),
		token, string(userJSON), time.Now(),
	)
	return err
}

func (s *Store) LoadSession() (token string, userJSON []byte, err error) {
	var user string
	err = s.db.QueryRow(`SELECT token, user_json FROM session WHERE id = 1`).
		Scan(&token, &user)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
		return
	}
	userJSON = []byte(user)
	return
}

func (s *Store) DeleteSession() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE id = 1`)
	return err
}

func (s *Store) SaveDraft(name string, surveyJSON []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO draft (name, survey_json, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET survey_json = ?, updated_at = ?`,
		name, string(surveyJSON), time.Now(),
		string(surveyJSON), time.Now(),
	)
	return err
}

func (s *Store) LoadDraft(name string) ([]byte, error) {
	var surveyJSON string
	err := s.db.QueryRow(`SELECT survey_json FROM draft WHERE name = ?`, name).
		Scan(&surveyJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(surveyJSON), nil
}

func (s *Store) DeleteDraft(name string) error {
	res, err := s.db.Exec(`DELETE FROM draft WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n < 1 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListDrafts() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM draft ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
