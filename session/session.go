// Package session is the explicit authentication context of the client. It
// replaces ambient "is there a token somewhere" checks: the session is loaded
// once at startup, is either authenticated or anonymous, and is handed to
// whatever needs the current user.
package session

import (
	"encoding/json"
	"errors"

	"github.com/lauracmd12/Front-Davivienda/database"
	"github.com/lauracmd12/Front-Davivienda/log"
	"github.com/lauracmd12/Front-Davivienda/model"
)

type Session struct {
	store *database.Store
	token string
	user  model.User
	valid bool
}

// Load reads the stored session and validates it. A missing record yields an
// anonymous session; an unparseable stored user record is treated as not
// authenticated and the corrupt record is cleared.
func Load(store *database.Store) *Session {
	s := &Session{store: store}

	token, userJSON, err := store.LoadSession()
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			log.Warnf("session.load: %s", err)
		}
		return s
	}

	var user model.User
	if err := json.Unmarshal(userJSON, &user); err != nil || token == "" || user.ID == "" {
		log.Warn("session.load: stored session is not usable, signing out")
		if err := store.DeleteSession(); err != nil {
			log.Warnf("session.clear: %s", err)
		}
		return s
	}

	s.token = token
	s.user = user
	s.valid = true
	return s
}

func (s *Session) Authenticated() bool {
	return s.valid
}

func (s *Session) User() model.User {
	return s.user
}

// UserID returns the session user id, or "" for an anonymous session.
func (s *Session) UserID() string {
	if !s.valid {
		return ""
	}
	return s.user.ID
}

func (s *Session) Token() string {
	if !s.valid {
		return ""
	}
	return s.token
}

func (s *Session) SignIn(token string, user model.User) error {
	if token == "" || user.ID == "" {
		return errors.New("login response carried no usable session")
	}
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.store.SaveSession(token, userJSON); err != nil {
		return err
	}
	s.token = token
	s.user = user
	s.valid = true
	return nil
}

func (s *Session) SignOut() error {
	s.token = ""
	s.user = model.User{}
	s.valid = false
	return s.store.DeleteSession()
}
