package store

import (
	"encoding/json"
	"fmt"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
)

// Session returns the durably stored current user, or nil when no session
// is active. The session record is kept separate from the user collection
// so a restart restores the signed-in user without re-deriving it.
func (s *Store) Session() (*models.User, error) {
	blob, ok, err := s.readBlob(keySession)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(blob), &user); err != nil {
		return nil, fmt.Errorf("corrupt session record: %w", err)
	}
	return &user, nil
}

func (s *Store) SaveSession(user models.User) error {
	blob, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.writeBlob(keySession, string(blob))
}

func (s *Store) ClearSession() error {
	return s.deleteBlob(keySession)
}
