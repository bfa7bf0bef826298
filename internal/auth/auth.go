// Package auth is the single source of truth for the currently signed-in
// user, their wishlist, and their order history. Sessions are mocked: a
// login is a bare email, find-or-create, no credential. The active session
// is persisted separately from the user collection so a restart restores
// it, and every wishlist mutation writes both records in lock-step.
package auth

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/store"
)

type Manager struct {
	store      *store.Store
	adminEmail string

	mu     sync.RWMutex
	user   *models.User
	orders []models.Order
}

// NewManager restores the durable session, if any, and eagerly loads that
// user's orders. A corrupt session record starts anonymous rather than
// failing startup.
func NewManager(s *store.Store, adminEmail string) *Manager {
	m := &Manager{store: s, adminEmail: adminEmail}

	user, err := s.Session()
	if err != nil {
		slog.Error("Failed to restore session, starting anonymous", "error", err)
		return m
	}
	if user != nil {
		m.user = user
		m.orders = m.loadOrders(user.ID)
	}
	return m
}

// Current returns the signed-in user, or nil when anonymous.
func (m *Manager) Current() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Orders returns the current session's order history, newest-first.
func (m *Manager) Orders() []models.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	return out
}

// Login finds the user record for email or creates one (id = email, name =
// local part, empty wishlist). The admin flag is recomputed from the
// configured admin email on every login and written back; a stored flag is
// never trusted.
func (m *Manager) Login(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	isAdmin := email == m.adminEmail

	user, err := m.store.UserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &models.User{
			ID:       email, // simple id strategy: id == email
			Name:     localPart(email),
			Email:    email,
			IsAdmin:  isAdmin,
			Wishlist: []string{},
		}
	} else {
		user.IsAdmin = isAdmin
	}

	if err := m.store.UpsertUser(*user); err != nil {
		return nil, err
	}
	if err := m.store.SaveSession(*user); err != nil {
		return nil, err
	}

	m.user = user
	m.orders = m.loadOrders(user.ID)
	slog.Info("User logged in", "email", email, "admin", isAdmin)

	u := *user
	return &u, nil
}

// Logout clears the in-memory and durable session. The user and order
// collections are untouched.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = nil
	m.orders = nil
	return m.store.ClearSession()
}

// ToggleWishlist flips membership of productID in the wishlist: add when
// absent, remove when present. The session record and the user collection
// are both written before in-memory state so they never diverge. No-op
// when anonymous.
func (m *Manager) ToggleWishlist(productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return nil
	}

	updated := *m.user
	wishlist := make([]string, 0, len(updated.Wishlist)+1)
	removed := false
	for _, id := range updated.Wishlist {
		if id == productID {
			removed = true
			continue
		}
		wishlist = append(wishlist, id)
	}
	if !removed {
		wishlist = append(wishlist, productID)
	}
	updated.Wishlist = wishlist

	if err := m.store.SaveSession(updated); err != nil {
		return err
	}
	if err := m.store.UpsertUser(updated); err != nil {
		return err
	}
	m.user = &updated
	return nil
}

// AddOrder appends to the order collection and reloads the session's order
// history (guest orders reload against the guest sentinel).
func (m *Manager) AddOrder(order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.AppendOrder(order); err != nil {
		return err
	}

	userID := models.GuestUserID
	if m.user != nil {
		userID = m.user.ID
	}
	m.orders = m.loadOrders(userID)
	return nil
}

func (m *Manager) loadOrders(userID string) []models.Order {
	orders, err := m.store.OrdersForUser(userID)
	if err != nil {
		slog.Error("Failed to load order history", "userId", userID, "error", err)
		return nil
	}
	return orders
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
