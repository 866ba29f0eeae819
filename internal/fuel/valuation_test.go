package fuel

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestTable(t *testing.T) *RateTable {
	t.Helper()
	table, err := NewRateTable([]Rate{
		{RateKey: RateKey{Month: 1, Year: 2024, FuelType: FuelTypeGasoline, OperationType: OperationTypePurchase}, UnitPrice: d("5.92"), TaxRate: d("17.20")},
		{RateKey: RateKey{Month: 1, Year: 2024, FuelType: FuelTypeGasoline, OperationType: OperationTypeSale}, UnitPrice: d("5.94"), TaxRate: d("17.00")},
		{RateKey: RateKey{Month: 2, Year: 2024, FuelType: FuelTypeDiesel, OperationType: OperationTypePurchase}, UnitPrice: d("5.88"), TaxRate: d("19.30")},
	})
	require.NoError(t, err)
	return table
}

// -- ComputeTotal tests --

func TestComputeTotal_ReferenceScenario(t *testing.T) {
	total := ComputeTotal(d("100"), d("5.92"), d("17.20"), d("11.5"))
	assert.True(t, total.Equal(d("773.61")), "got %s", total)
}

func TestComputeTotalDefault_UsesSelicRate(t *testing.T) {
	total := ComputeTotalDefault(d("100"), d("5.92"), d("17.20"))
	assert.True(t, total.Equal(d("773.61")), "got %s", total)
}

func TestComputeTotal_ZeroQuantityOrPrice(t *testing.T) {
	assert.True(t, ComputeTotal(decimal.Zero, d("5.92"), d("17.20"), d("11.5")).IsZero())
	assert.True(t, ComputeTotal(d("100"), decimal.Zero, d("17.20"), d("11.5")).IsZero())
}

func TestComputeTotal_RoundsOnceHalfUp(t *testing.T) {
	// 1 x 1 x 1.005 x 1 = 1.005 -> 1.01
	total := ComputeTotal(d("1"), d("1"), d("0.5"), decimal.Zero)
	assert.Equal(t, "1.01", total.StringFixed(2))

	// 3 x 3.33 x 1.1 x 1.1 = 12.0879, rounded once at the end
	total = ComputeTotal(d("3"), d("3.33"), d("10"), d("10"))
	assert.Equal(t, "12.09", total.StringFixed(2))
}

func TestComputeTotal_MonotonicInEachArgument(t *testing.T) {
	base := []decimal.Decimal{d("10.5"), d("5.92"), d("17.2"), d("11.5")}
	steps := []decimal.Decimal{d("0"), d("0.001"), d("0.5"), d("7"), d("250")}

	total := func(args []decimal.Decimal) decimal.Decimal {
		return ComputeTotal(args[0], args[1], args[2], args[3])
	}

	for pos := range base {
		prev := total(base)
		for _, step := range steps {
			args := append([]decimal.Decimal(nil), base...)
			args[pos] = args[pos].Add(step)
			next := total(args)
			assert.False(t, next.LessThan(prev), "argument %d step %s: %s < %s", pos, step, next, prev)
			prev = next
		}
	}
}

// -- Validate tests --

func TestValidate_ValidInput(t *testing.T) {
	in := Input{Type: OperationTypeSale, FuelType: FuelTypeEthanol, Quantity: d("0.001"), Month: 12, Year: 2024}
	assert.NoError(t, in.Validate(2026))
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	in := Input{Type: "rent", FuelType: "kerosene", Quantity: decimal.Zero, Month: 13, Year: 2019}

	err := in.Validate(2026)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	fields := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		fields[i] = f.Field
	}
	assert.Equal(t, []string{"type", "fuelType", "quantity", "month", "year"}, fields)
}

func TestValidateInto_KeepsRecordedQuantityError(t *testing.T) {
	verr := &ValidationError{}
	verr.Add("quantity", "quantity must be a decimal number", "lots")

	Input{Type: "loan", FuelType: FuelTypeDiesel, Month: 0, Year: 2024}.ValidateInto(verr, 2026)

	fields := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		fields[i] = f.Field
	}
	assert.Equal(t, []string{"quantity", "type", "month"}, fields)
}

func TestPatchValidateInto_ChecksOnlySuppliedFields(t *testing.T) {
	month := 14
	fuelType := FuelType("kerosene")
	verr := &ValidationError{}

	Patch{Month: &month, FuelType: &fuelType}.ValidateInto(verr, 2026)

	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "fuelType", verr.Fields[0].Field)
	assert.Equal(t, "month", verr.Fields[1].Field)

	empty := &ValidationError{}
	Patch{}.ValidateInto(empty, 2026)
	assert.NoError(t, empty.OrNil())
}

func TestValidate_QuantityBounds(t *testing.T) {
	valid := Input{Type: OperationTypePurchase, FuelType: FuelTypeDiesel, Month: 1, Year: 2024}

	valid.Quantity = d("1000000")
	assert.NoError(t, valid.Validate(2026))

	valid.Quantity = d("1000000.001")
	assert.Error(t, valid.Validate(2026))

	valid.Quantity = d("-1")
	assert.Error(t, valid.Validate(2026))

	valid.Quantity = d("1.2345")
	assert.Error(t, valid.Validate(2026), "more than three decimal places")

	valid.Quantity = d("1.2000")
	assert.NoError(t, valid.Validate(2026), "trailing zeros are not extra precision")
}

func TestValidate_YearAfterMax(t *testing.T) {
	in := Input{Type: OperationTypePurchase, FuelType: FuelTypeDiesel, Quantity: d("1"), Month: 1, Year: 2027}
	assert.Error(t, in.Validate(2026))
}

// -- Evaluate tests --

func TestEvaluate_DefaultsYear(t *testing.T) {
	table := newTestTable(t)

	v, err := Evaluate(table, Input{Type: OperationTypePurchase, FuelType: FuelTypeGasoline, Quantity: d("100"), Month: 1}, 2026)

	require.NoError(t, err)
	assert.Equal(t, DefaultYear, v.Year)
	assert.True(t, v.UnitPrice.Equal(d("5.92")))
	assert.True(t, v.TaxRate.Equal(d("17.20")))
	assert.True(t, v.SelicRate.Equal(SelicRate))
	assert.True(t, v.TotalValue.Equal(d("773.61")))
}

func TestEvaluate_InvalidInputSkipsResolution(t *testing.T) {
	table := newTestTable(t)

	_, err := Evaluate(table, Input{Type: OperationTypePurchase, FuelType: FuelTypeGasoline, Month: 1}, 2026)

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.False(t, errors.Is(err, ErrRateNotFound))
}

func TestEvaluate_UnsupportedYear(t *testing.T) {
	table := newTestTable(t)

	for _, ft := range FuelTypes {
		for _, ot := range OperationTypes {
			for month := 1; month <= 12; month++ {
				_, err := Evaluate(table, Input{Type: ot, FuelType: ft, Quantity: d("1"), Month: month, Year: 2025}, 2026)
				assert.ErrorIs(t, err, ErrUnsupportedYear)
				assert.NotErrorIs(t, err, ErrRateNotFound)
			}
		}
	}
}

func TestEvaluate_RateNotFoundInSupportedYear(t *testing.T) {
	table := newTestTable(t)

	_, err := Evaluate(table, Input{Type: OperationTypeSale, FuelType: FuelTypeDiesel, Quantity: d("1"), Month: 7, Year: 2024}, 2026)

	assert.ErrorIs(t, err, ErrRateNotFound)
	assert.NotErrorIs(t, err, ErrUnsupportedYear)
}

// -- Revalue tests --

type failingResolver struct{}

func (failingResolver) ResolveRate(key RateKey) (Rate, error) {
	return Rate{}, errors.New("unexpected resolution of " + key.String())
}

func storedValuation() Valuation {
	// The stored price differs from the table so tests can tell which one was used.
	return Valuation{
		Type:       OperationTypePurchase,
		FuelType:   FuelTypeGasoline,
		Month:      1,
		Year:       2024,
		Quantity:   d("100"),
		UnitPrice:  d("6.00"),
		TaxRate:    d("17.20"),
		SelicRate:  SelicRate,
		TotalValue: ComputeTotalDefault(d("100"), d("6.00"), d("17.20")),
	}
}

func TestRevalue_QuantityOnlyKeepsStoredRate(t *testing.T) {
	q := d("10")

	v, err := Revalue(failingResolver{}, storedValuation(), Patch{Quantity: &q}, 2026)
	require.NoError(t, err)

	assert.True(t, v.Quantity.Equal(q))
	assert.True(t, v.UnitPrice.Equal(d("6.00")))
	// 10 x 6.00 x 1.172 x 1.115 = 78.4068
	assert.Equal(t, "78.41", v.TotalValue.StringFixed(2))
}

func TestRevalue_UnchangedKeyFieldsDoNotResolve(t *testing.T) {
	month := 1
	ft := FuelTypeGasoline

	v, err := Revalue(failingResolver{}, storedValuation(), Patch{Month: &month, FuelType: &ft}, 2026)
	require.NoError(t, err)
	assert.Equal(t, storedValuation(), v)
}

func TestRevalue_KeyChangeResolvesNewRate(t *testing.T) {
	sale := OperationTypeSale

	v, err := Revalue(newTestTable(t), storedValuation(), Patch{Type: &sale}, 2026)
	require.NoError(t, err)

	assert.Equal(t, OperationTypeSale, v.Type)
	assert.True(t, v.UnitPrice.Equal(d("5.94")))
	assert.True(t, v.TaxRate.Equal(d("17.00")))
	// 100 x 5.94 x 1.17 x 1.115 = 774.9027
	assert.Equal(t, "774.90", v.TotalValue.StringFixed(2))
}

func TestRevalue_UnsupportedYear(t *testing.T) {
	year := 2025

	_, err := Revalue(newTestTable(t), storedValuation(), Patch{Year: &year}, 2026)
	assert.ErrorIs(t, err, ErrUnsupportedYear)
}

func TestRevalue_InvalidPatch(t *testing.T) {
	q := d("-1")
	month := 13

	_, err := Revalue(failingResolver{}, storedValuation(), Patch{Quantity: &q, Month: &month}, 2026)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}
