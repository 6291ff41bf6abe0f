package order

import "github.com/shopspring/decimal"

// Pricing holds the two constants of the price rule.
type Pricing struct {
	UnitPrice        decimal.Decimal
	SameDaySurcharge decimal.Decimal
}

// DefaultPricing returns $2.00 per cupcake and a $3.00 same-day surcharge.
func DefaultPricing() Pricing {
	return Pricing{
		UnitPrice:        decimal.NewFromInt(2),
		SameDaySurcharge: decimal.NewFromInt(3),
	}
}

// Price returns quantity*unit, plus the surcharge when date is the earliest
// offered pickup date. An unset date never carries the surcharge.
func (p Pricing) Price(quantity int, date, earliest string) decimal.Decimal {
	price := p.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	if date != "" && date == earliest {
		price = price.Add(p.SameDaySurcharge)
	}
	return price
}

// FormatPrice renders a price with two decimals behind the currency symbol.
func FormatPrice(price decimal.Decimal, symbol string) string {
	if price.IsNegative() {
		return "-" + symbol + price.Neg().StringFixed(2)
	}
	return symbol + price.StringFixed(2)
}
