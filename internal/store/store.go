package store

import (
	"errors"

	"github.com/fjod/go_cart/pos/internal/domain"
	"github.com/google/uuid"
)

// Common errors returned by the store
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product already registered")
)

// ProductStore defines the catalog of products carts can refer to by handle
type ProductStore interface {
	// Add registers a product under its handle
	Add(product *domain.Product) error

	// Get returns the shared product instance for the handle
	Get(id uuid.UUID) (*domain.Product, error)

	// List returns all products in registration order
	List() []*domain.Product

	// Close releases the store
	Close() error
}
