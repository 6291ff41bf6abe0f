package order

import (
	"slices"
	"time"
)

const (
	DefaultDateLayout = "Mon Jan 2"
	DefaultPickupDays = 4
)

// Quantities are the only order sizes on offer.
var Quantities = []int{1, 6, 12}

// Catalog is the fixed set of choices a user can pick from.
type Catalog struct {
	Quantities []int
	Flavors    []string
	Dates      []string
}

// NewCatalog builds a catalog from flavor labels and pickup dates.
func NewCatalog(flavors, dates []string) Catalog {
	return Catalog{
		Quantities: slices.Clone(Quantities),
		Flavors:    slices.Clone(flavors),
		Dates:      slices.Clone(dates),
	}
}

// PickupDates returns days consecutive dates starting at now, formatted with layout.
func PickupDates(now time.Time, days int, layout string) []string {
	if days <= 0 {
		days = DefaultPickupDays
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	out := make([]string, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, now.AddDate(0, 0, i).Format(layout))
	}
	return out
}

// Earliest is the same-day pickup date, or "" for an empty catalog.
func (c Catalog) Earliest() string {
	if len(c.Dates) == 0 {
		return ""
	}
	return c.Dates[0]
}

// DefaultFlavor is the flavor preselected when a quantity is chosen.
func (c Catalog) DefaultFlavor() string {
	if len(c.Flavors) == 0 {
		return ""
	}
	return c.Flavors[0]
}

// HasQuantity reports whether q is one of the offered order sizes.
func (c Catalog) HasQuantity(q int) bool { return slices.Contains(c.Quantities, q) }

// HasFlavor and HasDate report membership; the empty string is never offered.
func (c Catalog) HasFlavor(f string) bool { return f != "" && slices.Contains(c.Flavors, f) }
func (c Catalog) HasDate(d string) bool   { return d != "" && slices.Contains(c.Dates, d) }
