package order

import (
	"math"

	"dispatch/internal/pkg/errs"
)

// DefaultUnit is used when a line item does not specify a measurement unit.
const DefaultUnit = "unit"

// Item is an immutable line item within an order: a name, a quantity
// expressed in some unit (grams, pieces, ...), and the price per unit.
//
// Quantity and unit price must be non-negative and finite. Items are value
// objects; they carry no identity of their own.
type Item struct {
	name      string
	quantity  float64
	unit      string
	unitPrice float64
}

// NewItem creates a validated line item. An empty unit falls back to
// DefaultUnit.
func NewItem(name string, quantity float64, unit string, unitPrice float64) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxFloat64)
	}
	if unitPrice < 0 || math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) {
		return Item{}, errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 0, math.MaxFloat64)
	}
	if unit == "" {
		unit = DefaultUnit
	}

	return Item{
		name:      name,
		quantity:  quantity,
		unit:      unit,
		unitPrice: unitPrice,
	}, nil
}

// Name returns the item's display name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity in the item's unit.
func (i Item) Quantity() float64 {
	return i.quantity
}

// Unit returns the measurement unit, e.g. "g" or "unit".
func (i Item) Unit() string {
	return i.unit
}

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Cost returns quantity x unit price for this line.
func (i Item) Cost() float64 {
	return i.quantity * i.unitPrice
}
