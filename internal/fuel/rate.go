package fuel

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// RateKey identifies at most one Rate.
type RateKey struct {
	Month         int
	Year          int
	FuelType      FuelType
	OperationType OperationType
}

func (k RateKey) String() string {
	return fmt.Sprintf("%s %s %02d/%d", k.OperationType, k.FuelType, k.Month, k.Year)
}

// Rate is the unit price and tax rate in force for one RateKey.
// TaxRate is a percentage, 17.20 means 17.20%.
type Rate struct {
	RateKey
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
}

// RateFilter narrows a listing of rates. Zero values match everything.
type RateFilter struct {
	Month         int
	Year          int
	FuelType      FuelType
	OperationType OperationType
}

func (f RateFilter) matches(r Rate) bool {
	if f.Month != 0 && r.Month != f.Month {
		return false
	}
	if f.Year != 0 && r.Year != f.Year {
		return false
	}
	if f.FuelType != "" && r.FuelType != f.FuelType {
		return false
	}
	if f.OperationType != "" && r.OperationType != f.OperationType {
		return false
	}
	return true
}

// Resolver looks up the rate for a key.
type Resolver interface {
	ResolveRate(key RateKey) (Rate, error)
}

// RateTable is an immutable, exact-match index over a set of rates.
// It is safe for concurrent use.
type RateTable struct {
	rates map[RateKey]Rate
	years map[int]struct{}
}

var _ Resolver = (*RateTable)(nil)

// NewRateTable indexes rates. Two rates sharing a key is an error.
func NewRateTable(rates []Rate) (*RateTable, error) {
	t := &RateTable{
		rates: make(map[RateKey]Rate, len(rates)),
		years: make(map[int]struct{}),
	}
	for _, r := range rates {
		if _, exists := t.rates[r.RateKey]; exists {
			return nil, fmt.Errorf("duplicate rate for %s", r.RateKey)
		}
		t.rates[r.RateKey] = r
		t.years[r.Year] = struct{}{}
	}
	return t, nil
}

// ResolveRate returns the rate for key. A year without any rows yields
// ErrUnsupportedYear, a missing combination inside a known year yields ErrRateNotFound.
func (t *RateTable) ResolveRate(key RateKey) (Rate, error) {
	if r, ok := t.rates[key]; ok {
		return r, nil
	}
	if !t.SupportsYear(key.Year) {
		return Rate{}, fmt.Errorf("%w: %d", ErrUnsupportedYear, key.Year)
	}
	return Rate{}, fmt.Errorf("%w for %s", ErrRateNotFound, key)
}

// SupportsYear reports whether any rate exists for year.
func (t *RateTable) SupportsYear(year int) bool {
	_, ok := t.years[year]
	return ok
}

// Years returns the supported years in ascending order.
func (t *RateTable) Years() []int {
	years := make([]int, 0, len(t.years))
	for y := range t.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// List returns the rates matching filter, newest year and month first,
// then by fuel and operation type.
func (t *RateTable) List(filter RateFilter) []Rate {
	result := make([]Rate, 0)
	for _, r := range t.rates {
		if filter.matches(r) {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		if a.FuelType != b.FuelType {
			return fuelOrder(a.FuelType) < fuelOrder(b.FuelType)
		}
		return a.OperationType < b.OperationType
	})
	return result
}

// Len returns the number of rates in the table.
func (t *RateTable) Len() int {
	return len(t.rates)
}

func fuelOrder(f FuelType) int {
	for i, ft := range FuelTypes {
		if ft == f {
			return i
		}
	}
	return len(FuelTypes)
}
