package collaborator

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/orderflow/backend/internal/domain/ordering"
	"github.com/orderflow/backend/internal/domain/shared/valueobject"
)

// InMemoryCatalog implements ProductCodeChecker and ProductPricer over
// a map of product prices. It stands in for the catalog and pricing
// services in deployments that do not have them.
type InMemoryCatalog struct {
	mu     sync.RWMutex
	prices map[string]valueobject.Price
}

// NewInMemoryCatalog creates an empty catalog
func NewInMemoryCatalog() *InMemoryCatalog {
	return &InMemoryCatalog{prices: make(map[string]valueobject.Price)}
}

// NewSeededCatalog creates a catalog preloaded with a small demo
// assortment
func NewSeededCatalog() *InMemoryCatalog {
	catalog := NewInMemoryCatalog()
	catalog.SetPrice("W1234", valueobject.MustNewPrice(decimal.NewFromInt(3000)))
	catalog.SetPrice("G123", valueobject.MustNewPrice(decimal.NewFromFloat(4500)))
	return catalog
}

// SetPrice registers or updates a product's unit price
func (c *InMemoryCatalog) SetPrice(code string, price valueobject.Price) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prices[code] = price
}

// Exists reports whether the product code refers to a known product
func (c *InMemoryCatalog) Exists(_ context.Context, code ordering.ProductCode) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.prices[code.Value()]
	return ok, nil
}

// Price returns the unit price for a known product
func (c *InMemoryCatalog) Price(_ context.Context, code ordering.ProductCode) (valueobject.Price, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	price, ok := c.prices[code.Value()]
	if !ok {
		return valueobject.Price{}, fmt.Errorf("no price on file for product %s", code.Value())
	}
	return price, nil
}
