// Package session resolves the current user. A login writes a single session
// record under the userSession key; the user itself is always re-resolved by
// scanning the users collection so deactivated or deleted accounts lose
// access immediately.
package session

import (
	"errors"
	"fmt"
	"time"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/storage"
)

// ErrNoSession is returned when no session exists or the session's user is
// gone or inactive. Callers must treat it as an authorization failure.
var ErrNoSession = errors.New("no active session")

// Session is the persisted login record.
type Session struct {
	Role      models.Role `json:"role"`
	Username  string      `json:"username"`
	LoginTime time.Time   `json:"loginTime"`
}

// Save persists the session under the userSession key.
func Save(store *storage.Store, sess Session) error {
	return store.PutSingle(storage.KeyUserSession, sess)
}

// Clear removes the persisted session.
func Clear(store *storage.Store) error {
	return store.Remove(storage.KeyUserSession)
}

// Resolve looks up a user by username and verifies the account is active.
func Resolve(store *storage.Store, username string) (models.User, error) {
	if username == "" {
		return models.User{}, ErrNoSession
	}
	users, err := storage.GetAll[models.User](store, storage.KeyUsers)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			if u.Status == models.UserInactive {
				return models.User{}, fmt.Errorf("user %s is inactive: %w", username, ErrNoSession)
			}
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %s: %w", username, ErrNoSession)
}

// Current resolves the user of the persisted session record.
func Current(store *storage.Store) (models.User, error) {
	var sess Session
	ok, err := store.GetSingle(storage.KeyUserSession, &sess)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrNoSession
	}
	return Resolve(store, sess.Username)
}
