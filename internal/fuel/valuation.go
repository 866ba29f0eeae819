package fuel

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// DefaultYear is applied to inputs that omit the year.
	DefaultYear = 2024
	// MinYear is the earliest year an operation may be recorded for.
	MinYear = 2020
	// QuantityPlaces is the number of decimal places a quantity may carry.
	QuantityPlaces = 3
)

var (
	// SelicRate is the fixed macroeconomic reference rate, in percent, applied to every valuation.
	SelicRate = decimal.RequireFromString("11.5")
	// MaxQuantity is the largest quantity, in liters, accepted for one operation.
	MaxQuantity = decimal.NewFromInt(1_000_000)

	hundred = decimal.NewFromInt(100)
)

// Round2 rounds half away from zero to cents, which is half-up for the
// non-negative amounts produced here.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeTotal returns round2(quantity x unitPrice x (1 + taxRate/100) x (1 + selicRate/100)).
// Rounding happens once, on the final product.
func ComputeTotal(quantity, unitPrice, taxRate, selicRate decimal.Decimal) decimal.Decimal {
	taxFactor := decimal.NewFromInt(1).Add(taxRate.Div(hundred))
	selicFactor := decimal.NewFromInt(1).Add(selicRate.Div(hundred))
	return Round2(quantity.Mul(unitPrice).Mul(taxFactor).Mul(selicFactor))
}

// ComputeTotalDefault is ComputeTotal with the fixed SelicRate.
func ComputeTotalDefault(quantity, unitPrice, taxRate decimal.Decimal) decimal.Decimal {
	return ComputeTotal(quantity, unitPrice, taxRate, SelicRate)
}

// Input is the caller-supplied part of an operation.
type Input struct {
	Type     OperationType
	FuelType FuelType
	Quantity decimal.Decimal
	Month    int
	Year     int
}

// WithDefaults returns a copy of in with a zero year replaced by DefaultYear.
func (in Input) WithDefaults() Input {
	if in.Year == 0 {
		in.Year = DefaultYear
	}
	return in
}

// Key returns the rate key the input resolves against.
func (in Input) Key() RateKey {
	return RateKey{Month: in.Month, Year: in.Year, FuelType: in.FuelType, OperationType: in.Type}
}

// Validate checks the shape of in and reports every violation at once.
// maxYear is the latest acceptable year, normally the current one.
func (in Input) Validate(maxYear int) error {
	verr := &ValidationError{}
	in.ValidateInto(verr, maxYear)
	return verr.OrNil()
}

// ValidateInto records every shape violation of in on verr. A field verr
// already reports is not checked again.
func (in Input) ValidateInto(verr *ValidationError, maxYear int) {
	if !in.Type.Valid() {
		verr.Add("type", `type must be "purchase" or "sale"`, string(in.Type))
	}
	if !in.FuelType.Valid() {
		verr.Add("fuelType", `fuelType must be "gasoline", "ethanol" or "diesel"`, string(in.FuelType))
	}
	switch {
	case verr.Has("quantity"):
	case !in.Quantity.IsPositive():
		verr.Add("quantity", "quantity must be greater than zero", in.Quantity.String())
	case in.Quantity.GreaterThan(MaxQuantity):
		verr.Add("quantity", fmt.Sprintf("quantity must not exceed %s liters", MaxQuantity), in.Quantity.String())
	case !in.Quantity.Equal(in.Quantity.Round(QuantityPlaces)):
		verr.Add("quantity", fmt.Sprintf("quantity must have at most %d decimal places", QuantityPlaces), in.Quantity.String())
	}
	if !ValidMonth(in.Month) {
		verr.Add("month", "month must be a number between 1 and 12", in.Month)
	}
	if in.Year < MinYear || in.Year > maxYear {
		verr.Add("year", fmt.Sprintf("year must be between %d and %d", MinYear, maxYear), in.Year)
	}
}

// Valuation is the priced snapshot of an operation.
type Valuation struct {
	Type       OperationType
	FuelType   FuelType
	Month      int
	Year       int
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TaxRate    decimal.Decimal
	SelicRate  decimal.Decimal
	TotalValue decimal.Decimal
}

// Value prices quantity against an already resolved rate.
func Value(quantity decimal.Decimal, rate Rate) Valuation {
	return Valuation{
		Type:       rate.OperationType,
		FuelType:   rate.FuelType,
		Month:      rate.Month,
		Year:       rate.Year,
		Quantity:   quantity,
		UnitPrice:  rate.UnitPrice,
		TaxRate:    rate.TaxRate,
		SelicRate:  SelicRate,
		TotalValue: ComputeTotalDefault(quantity, rate.UnitPrice, rate.TaxRate),
	}
}

// Evaluate runs validate, resolve and compute for in. Every path that prices
// an operation, persisted or not, goes through here.
func Evaluate(resolver Resolver, in Input, maxYear int) (Valuation, error) {
	in = in.WithDefaults()
	if err := in.Validate(maxYear); err != nil {
		return Valuation{}, err
	}

	rate, err := resolver.ResolveRate(in.Key())
	if err != nil {
		return Valuation{}, err
	}

	return Value(in.Quantity, rate), nil
}

// Patch holds the input fields an update supplies. Nil fields keep their stored value.
type Patch struct {
	Type     *OperationType
	FuelType *FuelType
	Quantity *decimal.Decimal
	Month    *int
	Year     *int
}

// Apply overlays the supplied fields of p on current.
func (p Patch) Apply(current Input) Input {
	if p.Type != nil {
		current.Type = *p.Type
	}
	if p.FuelType != nil {
		current.FuelType = *p.FuelType
	}
	if p.Quantity != nil {
		current.Quantity = *p.Quantity
	}
	if p.Month != nil {
		current.Month = *p.Month
	}
	if p.Year != nil {
		current.Year = *p.Year
	}
	return current
}

// ValidateInto records violations of the supplied fields of p on verr.
func (p Patch) ValidateInto(verr *ValidationError, maxYear int) {
	base := Input{
		Type:     OperationTypePurchase,
		FuelType: FuelTypeGasoline,
		Quantity: decimal.NewFromInt(1),
		Month:    1,
		Year:     MinYear,
	}
	p.Apply(base).ValidateInto(verr, maxYear)
}

// Input returns the caller-supplied part of v.
func (v Valuation) Input() Input {
	return Input{Type: v.Type, FuelType: v.FuelType, Quantity: v.Quantity, Month: v.Month, Year: v.Year}
}

// Revalue applies p to a stored valuation. The rate is resolved again only when
// the rate key changes; otherwise the stored unit price, tax rate and selic
// rate are kept and only the total is recomputed.
func Revalue(resolver Resolver, current Valuation, p Patch, maxYear int) (Valuation, error) {
	in := p.Apply(current.Input())
	if err := in.Validate(maxYear); err != nil {
		return Valuation{}, err
	}

	if in.Key() != current.Input().Key() {
		rate, err := resolver.ResolveRate(in.Key())
		if err != nil {
			return Valuation{}, err
		}
		return Value(in.Quantity, rate), nil
	}

	next := current
	next.Quantity = in.Quantity
	next.TotalValue = ComputeTotal(in.Quantity, current.UnitPrice, current.TaxRate, current.SelicRate)
	return next, nil
}
