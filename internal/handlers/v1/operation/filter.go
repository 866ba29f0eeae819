package operation

import (
	"strconv"
	"strings"

	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/service"
)

// FilterParams are the query parameters shared by listing, statistics and reports.
// Values arrive as strings so malformed numbers are reported like any other invalid field.
type FilterParams struct {
	Page     string `query:"page" doc:"Page number, default 1"`
	Limit    string `query:"limit" doc:"Page size 1-100, default 10"`
	Month    string `query:"month" doc:"Month 1-12"`
	Year     string `query:"year" doc:"Year"`
	Type     string `query:"type" doc:"purchase or sale"`
	FuelType string `query:"fuelType" doc:"gasoline, ethanol or diesel"`
}

// FilterEcho is the API model of the filters a response was computed with.
type FilterEcho struct {
	Page     int     `json:"page"`
	Limit    int     `json:"limit"`
	Month    *int    `json:"month,omitempty"`
	Year     *int    `json:"year,omitempty"`
	Type     *string `json:"type,omitempty"`
	FuelType *string `json:"fuelType,omitempty"`
}

// parseFilterParams converts query parameters into a service filter.
// Range checks are left to the service.
func parseFilterParams(p FilterParams) (service.OperationFilter, error) {
	var filter service.OperationFilter
	verr := &fuel.ValidationError{}

	parseInt := func(field, raw string) (int, bool) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			verr.Add(field, field+" must be an integer", raw)
			return 0, false
		}
		return n, true
	}

	if n, ok := parseInt("page", p.Page); ok {
		filter.Page = n
		if n == 0 {
			verr.Add("page", "page must be a positive integer", n)
		}
	}
	if n, ok := parseInt("limit", p.Limit); ok {
		filter.Limit = n
		if n == 0 {
			verr.Add("limit", "limit must be between 1 and 100", n)
		}
	}
	if n, ok := parseInt("month", p.Month); ok {
		filter.Month = &n
	}
	if n, ok := parseInt("year", p.Year); ok {
		filter.Year = &n
	}
	if p.Type != "" {
		ot := fuel.OperationType(p.Type)
		filter.Type = &ot
	}
	if p.FuelType != "" {
		ft := fuel.FuelType(p.FuelType)
		filter.FuelType = &ft
	}

	return filter, verr.OrNil()
}

func toFilterEcho(f service.OperationFilter) FilterEcho {
	echo := FilterEcho{Page: f.Page, Limit: f.Limit, Month: f.Month, Year: f.Year}
	if f.Type != nil {
		t := string(*f.Type)
		echo.Type = &t
	}
	if f.FuelType != nil {
		ft := string(*f.FuelType)
		echo.FuelType = &ft
	}
	return echo
}
