package store

import (
	"encoding/json"
	"fmt"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
)

// Users returns the full user collection. Unlike products, a corrupt blob
// is a hard error: there is no sensible default to substitute for real
// accounts.
func (s *Store) Users() ([]models.User, error) {
	blob, ok, err := s.readBlob(keyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(blob), &users); err != nil {
		return nil, fmt.Errorf("corrupt user collection: %w", err)
	}
	return users, nil
}

func (s *Store) SaveUsers(users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	blob, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.writeBlob(keyUsers, string(blob))
}

// UserByEmail finds a user record by its lookup key. Returns nil when no
// record exists for the email.
func (s *Store) UserByEmail(email string) (*models.User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// UpsertUser replaces the record matching user.Email, or appends when no
// such record exists. Email uniqueness in the collection is maintained here.
func (s *Store) UpsertUser(user models.User) error {
	users, err := s.Users()
	if err != nil {
		return err
	}

	replaced := false
	for i := range users {
		if users[i].Email == user.Email {
			users[i] = user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, user)
	}
	return s.SaveUsers(users)
}
