package store

import (
	"path/filepath"
	"testing"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "walkin.db"))
	require.NoError(t, err)
	return s
}

func corruptBlob(t *testing.T, s *Store, key string) {
	t.Helper()
	_, err := s.DB.Exec(`UPDATE kv SET value = '{not json' WHERE key = ?`, key)
	require.NoError(t, err)
}

func TestNewStoreSeedsCollections(t *testing.T) {
	s := newTestStore(t)

	products := s.Products()
	require.Len(t, products, 6)
	assert.Equal(t, "Walkin Air Pro", products[0].Name)

	users, err := s.Users()
	require.NoError(t, err)
	assert.Empty(t, users)

	orders, err := s.Orders()
	require.NoError(t, err)
	assert.Empty(t, orders)

	session, err := s.Session()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSeedIsPersistent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walkin.db")

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveProducts([]models.Product{{ID: "x", Name: "Only Shoe", Sizes: []int{9}}}))
	require.NoError(t, s.DB.Close())

	// Reopening must not reseed over the edited catalog.
	s2, err := NewStore(path)
	require.NoError(t, err)
	products := s2.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Only Shoe", products[0].Name)
}

func TestProductsFallBackToDefaultsOnCorruptBlob(t *testing.T) {
	s := newTestStore(t)
	corruptBlob(t, s, keyProducts)

	products := s.Products()
	assert.Equal(t, DefaultCatalog(), products)
}

func TestCorruptUsersIsAnError(t *testing.T) {
	s := newTestStore(t)
	corruptBlob(t, s, keyUsers)

	_, err := s.Users()
	assert.Error(t, err)
}

func TestCorruptOrdersIsAnError(t *testing.T) {
	s := newTestStore(t)
	corruptBlob(t, s, keyOrders)

	_, err := s.Orders()
	assert.Error(t, err)
}

func TestUpsertUserKeepsEmailsUnique(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertUser(models.User{ID: "a@x.com", Email: "a@x.com", Name: "a"}))
	require.NoError(t, s.UpsertUser(models.User{ID: "b@x.com", Email: "b@x.com", Name: "b"}))
	require.NoError(t, s.UpsertUser(models.User{ID: "a@x.com", Email: "a@x.com", Name: "renamed", Wishlist: []string{"1"}}))

	users, err := s.Users()
	require.NoError(t, err)
	require.Len(t, users, 2)

	found, err := s.UserByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "renamed", found.Name)
	assert.Equal(t, []string{"1"}, found.Wishlist)
}

func TestUserByEmailMissing(t *testing.T) {
	s := newTestStore(t)

	found, err := s.UserByEmail("ghost@x.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestAppendOrderIsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first := models.Order{ID: "A", UserID: "u", Status: models.StatusProcessing}
	second := models.Order{ID: "B", UserID: "u", Status: models.StatusProcessing}
	require.NoError(t, s.AppendOrder(first))
	require.NoError(t, s.AppendOrder(second))

	orders, err := s.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "B", orders[0].ID)
	assert.Equal(t, "A", orders[1].ID)
}

func TestOrdersForUserFiltersPreservingOrder(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AppendOrder(models.Order{ID: "A", UserID: "u1"}))
	require.NoError(t, s.AppendOrder(models.Order{ID: "B", UserID: "u2"}))
	require.NoError(t, s.AppendOrder(models.Order{ID: "C", UserID: "u1"}))

	orders, err := s.OrdersForUser("u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "C", orders[0].ID)
	assert.Equal(t, "A", orders[1].ID)

	none, err := s.OrdersForUser("nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSessionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	user := models.User{ID: "a@x.com", Email: "a@x.com", Name: "a", Wishlist: []string{"1"}}
	require.NoError(t, s.SaveSession(user))

	got, err := s.Session()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user, *got)

	require.NoError(t, s.ClearSession())
	got, err = s.Session()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDashboardStats(t *testing.T) {
	s := newTestStore(t)

	item := models.CartItem{Product: models.Product{ID: "1", Name: "Walkin Air Pro"}, SelectedSize: 9, Quantity: 1}
	require.NoError(t, s.AppendOrder(models.Order{ID: "A", UserID: "u", Status: models.StatusProcessing, Items: []models.CartItem{item}}))
	require.NoError(t, s.AppendOrder(models.Order{ID: "B", UserID: "u", Status: models.StatusProcessing, Items: []models.CartItem{item}}))

	stats, err := s.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 2, stats.OrdersByStatus[models.StatusProcessing])
	require.NotEmpty(t, stats.ProductOrdCount)
	assert.Equal(t, "Walkin Air Pro", stats.ProductOrdCount[0].Name)
	assert.Equal(t, 2, stats.ProductOrdCount[0].OrderCount)
}
