package models

// Review is attached to a product when a signed-in customer submits one.
// Reviews are append-only: never edited or removed once written.
type Review struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"` // display name captured at submission time
	Rating   int    `json:"rating"`   // 1..5
	Comment  string `json:"comment"`
	Date     string `json:"date"` // calendar date, e.g. "2023-10-15"
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"` // free-form label ("Running", "Lifestyle", ...)
	Description string   `json:"description"`
	Image       string   `json:"image"` // URL or /static/uploads path
	Sizes       []int    `json:"sizes"`
	Featured    bool     `json:"featured,omitempty"`
	Reviews     []Review `json:"reviews,omitempty"`
}

// CartItem is a snapshot of a product at the moment it was added to the
// cart, plus the chosen size and quantity. Cart lines are keyed by
// (product id, selected size).
type CartItem struct {
	Product
	SelectedSize int `json:"selectedSize"`
	Quantity     int `json:"quantity"`
}

type User struct {
	ID       string   `json:"id"` // equal to Email under the current identity scheme
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	IsAdmin  bool     `json:"isAdmin"`
	Wishlist []string `json:"wishlist"` // product ids, no duplicates
}

// Order statuses. Orders are created as Processing; the other two states
// are declared for display but no transition produces them yet.
const (
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
)

// GuestUserID is the userId recorded on orders placed without a session.
const GuestUserID = "guest"

type Order struct {
	ID     string     `json:"id"`
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
	Total  float64    `json:"total"` // tax-inclusive
	Date   string     `json:"date"`  // ISO-8601 creation timestamp
	Status string     `json:"status"`
}
