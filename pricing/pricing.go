// Package pricing implements the bulk price adjustment engine: given
// a scope (one supplier or every product) and a percentage, it plans a
// batch of new sale prices that the database layer applies as one
// atomic multi-key update.
package pricing

import (
	"errors"
	"fmt"

	"github.com/Ezequielp19/sistema-ventas/models"
)

// AllSuppliers is the scope sentinel selecting every product in the
// store, regardless of supplier or visibility.
const AllSuppliers = "all"

// Direction of a price adjustment.
type Direction string

const (
	Increase Direction = "increase"
	Decrease Direction = "decrease"
)

var (
	ErrNegativePercentage = errors.New("percentage must not be negative")
	// ErrExcessiveDecrease rejects decreases above 100%: they would
	// drive prices negative. Exactly 100% is allowed and zeroes the
	// price.
	ErrExcessiveDecrease = errors.New("decrease percentage above 100 is not allowed")
)

// ParseDirection validates a wire value.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Increase, Decrease:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("invalid direction %q", s)
	}
}

// Factor converts a percentage and direction into the multiplier
// applied to each base price: a 20 percent increase gives 1.2 and a
// 20 percent decrease gives 0.8.
func Factor(percentage float64, dir Direction) (float64, error) {
	if percentage < 0 {
		return 0, ErrNegativePercentage
	}
	switch dir {
	case Increase:
		return 1 + percentage/100, nil
	case Decrease:
		if percentage > 100 {
			return 0, ErrExcessiveDecrease
		}
		return 1 - percentage/100, nil
	default:
		return 0, fmt.Errorf("invalid direction %q", dir)
	}
}

// Resolve returns the products selected by the scope, in snapshot
// order. Scope selection ignores visibility: inactive and out-of-stock
// products are adjusted too.
func Resolve(products []models.Product, scope string) []models.Product {
	if scope == "" || scope == AllSuppliers {
		return products
	}
	var affected []models.Product
	for _, p := range products {
		if p.Supplier == scope {
			affected = append(affected, p)
		}
	}
	return affected
}

// Count reports how many products a scope would affect, for the
// confirmation prompt shown before a batch runs.
func Count(products []models.Product, scope string) int {
	return len(Resolve(products, scope))
}

// Update is one planned price write.
type Update struct {
	Key      string  `json:"key"`
	NewPrice float64 `json:"newPrice"`
}

// Plan computes the batch of price updates for a scope. The base price
// of each product is its effective sale price (legacy aliases were
// resolved at the database boundary). The returned batch must be
// applied atomically: all keys or none.
func Plan(products []models.Product, scope string, percentage float64, dir Direction) ([]Update, error) {
	factor, err := Factor(percentage, dir)
	if err != nil {
		return nil, err
	}

	affected := Resolve(products, scope)
	updates := make([]Update, 0, len(affected))
	for _, p := range affected {
		updates = append(updates, Update{Key: p.Key, NewPrice: p.SalePrice * factor})
	}
	return updates, nil
}
