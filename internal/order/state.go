package order

import "github.com/shopspring/decimal"

// Order is a point-in-time copy of the order attributes.
type Order struct {
	Quantity   int
	Flavor     string
	PickupDate string
	Price      decimal.Decimal
}

// IsZero reports whether the order holds only defaults.
func (o Order) IsZero() bool {
	return o.Quantity == 0 && o.Flavor == "" && o.PickupDate == "" && o.Price.IsZero()
}

// State is the single in-progress order. It is mutated only through its
// methods; every mutation recomputes the price.
type State struct {
	catalog Catalog
	pricing Pricing
	order   Order
}

func NewState(catalog Catalog, pricing Pricing) *State {
	return &State{catalog: catalog, pricing: pricing}
}

func (s *State) Catalog() Catalog { return s.catalog }
func (s *State) Pricing() Pricing { return s.pricing }

// Getters return the zero value for an attribute that has not been chosen.
func (s *State) Quantity() int          { return s.order.Quantity }
func (s *State) Flavor() string         { return s.order.Flavor }
func (s *State) PickupDate() string     { return s.order.PickupDate }
func (s *State) Price() decimal.Decimal { return s.order.Price }
func (s *State) Snapshot() Order        { return s.order }

// SetQuantityAndFlavor records the Start screen choice. If no pickup date has
// been chosen yet the earliest date becomes the default.
func (s *State) SetQuantityAndFlavor(quantity int, flavor string) error {
	if !s.catalog.HasQuantity(quantity) {
		return newValidationError("quantity %d is not offered", quantity)
	}
	if !s.catalog.HasFlavor(flavor) {
		return newValidationError("flavor %q is not offered", flavor)
	}
	s.order.Quantity = quantity
	s.order.Flavor = flavor
	if s.order.PickupDate == "" {
		s.order.PickupDate = s.catalog.Earliest()
	}
	s.recompute()
	return nil
}

// SetFlavor changes the flavor and keeps the chosen quantity.
func (s *State) SetFlavor(flavor string) error {
	if s.order.Quantity == 0 {
		return newValidationError("choose a quantity before a flavor")
	}
	return s.SetQuantityAndFlavor(s.order.Quantity, flavor)
}

// SetPickupDate changes the pickup date. Setting the current date again is a no-op.
func (s *State) SetPickupDate(date string) error {
	if !s.catalog.HasDate(date) {
		return newValidationError("pickup date %q is not offered", date)
	}
	s.order.PickupDate = date
	s.recompute()
	return nil
}

// Reset clears all four attributes.
func (s *State) Reset() {
	s.order = Order{}
}

func (s *State) recompute() {
	s.order.Price = s.pricing.Price(s.order.Quantity, s.order.PickupDate, s.catalog.Earliest())
}
