// Package catalog holds the fixed product table and answers synchronous
// queries against it.
package catalog

import (
	"fmt"
	"strings"

	"alloy-catalog/internal/model"

	"golang.org/x/text/cases"
)

// Store is an immutable, in-memory product table. It is safe for
// concurrent use without locking because nothing mutates it after NewStore.
type Store struct {
	products []model.Product
}

// NewStore validates the table and returns a store over a private copy.
// IDs must be unique and every category must belong to the enumeration.
func NewStore(products []model.Product) (*Store, error) {
	seen := make(map[string]struct{}, len(products))
	table := make([]model.Product, 0, len(products))

	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %d: id is required", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("product %d: duplicate id %q", i, p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("product %q: unknown category %q", p.ID, p.Category)
		}
		seen[p.ID] = struct{}{}
		table = append(table, p.Clone())
	}

	return &Store{products: table}, nil
}

// Default returns a store over the reference catalogue.
func Default() *Store {
	s, err := NewStore(referenceProducts())
	if err != nil {
		panic(fmt.Sprintf("catalog: reference table is invalid: %v", err))
	}
	return s
}

// ListAll returns every product in table order.
func (s *Store) ListAll() []model.Product {
	out := make([]model.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// ListByCategory returns products of the given category in table order.
// An unknown category yields an empty slice.
func (s *Store) ListByCategory(category model.Category) []model.Product {
	out := []model.Product{}
	if !category.Valid() {
		return out
	}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out
}

// FindByID returns the first product with the given id.
func (s *Store) FindByID(id string) (model.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return model.Product{}, false
}

// Search matches query case-insensitively against name and description.
// A blank query matches nothing.
func (s *Store) Search(query string) []model.Product {
	out := []model.Product{}
	q := strings.TrimSpace(query)
	if q == "" {
		return out
	}
	// A Caser is not safe for concurrent use.
	fold := cases.Fold()
	needle := fold.String(q)
	for _, p := range s.products {
		if strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(p.Description), needle) {
			out = append(out, p.Clone())
		}
	}
	return out
}
