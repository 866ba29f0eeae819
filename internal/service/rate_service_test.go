package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

func TestLoadRateService_IndexesRows(t *testing.T) {
	table := sqlconfig.NewMockIRateTable(t)
	table.EXPECT().List(context.Background()).Return([]*sqlconfig.Rate{
		{ID: 1, Month: 1, Year: 2024, FuelType: "gasoline", OperationType: "purchase", UnitPrice: d("5.92"), TaxRate: d("17.20")},
		{ID: 2, Month: 1, Year: 2024, FuelType: "gasoline", OperationType: "sale", UnitPrice: d("5.94"), TaxRate: d("17.00")},
	}, nil)

	svc, err := LoadRateService(context.Background(), table)
	require.NoError(t, err)

	rate, err := svc.Resolver().ResolveRate(fuel.RateKey{Month: 1, Year: 2024, FuelType: fuel.FuelTypeGasoline, OperationType: fuel.OperationTypeSale})
	require.NoError(t, err)
	assert.True(t, rate.UnitPrice.Equal(d("5.94")))
	assert.Equal(t, []int{2024}, svc.SupportedYears())
}

func TestLoadRateService_RejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		rows []*sqlconfig.Rate
	}{
		{
			name: "unknown fuel",
			rows: []*sqlconfig.Rate{{ID: 7, Month: 1, Year: 2024, FuelType: "kerosene", OperationType: "sale"}},
		},
		{
			name: "duplicate key",
			rows: []*sqlconfig.Rate{
				{ID: 1, Month: 1, Year: 2024, FuelType: "diesel", OperationType: "sale"},
				{ID: 2, Month: 1, Year: 2024, FuelType: "diesel", OperationType: "sale"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := sqlconfig.NewMockIRateTable(t)
			table.EXPECT().List(context.Background()).Return(tt.rows, nil)

			_, err := LoadRateService(context.Background(), table)
			assert.Error(t, err)
		})
	}
}

func TestListRates_FiltersAndValidates(t *testing.T) {
	svc := NewRateService(testRateTable(t))

	rates, err := svc.ListRates(context.Background(), fuel.RateFilter{FuelType: fuel.FuelTypeGasoline})
	require.NoError(t, err)
	assert.Len(t, rates, 2)

	_, err = svc.ListRates(context.Background(), fuel.RateFilter{Month: 13, OperationType: "lease"})
	var verr *fuel.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestRateStatistics(t *testing.T) {
	svc := NewRateService(testRateTable(t))

	summary, err := svc.RateStatistics(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalRates)

	_, err = svc.RateStatistics(context.Background(), 2023)
	assert.ErrorIs(t, err, fuel.ErrUnsupportedYear)
}
