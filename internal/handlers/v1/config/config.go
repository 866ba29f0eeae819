// Package config serves the display catalogue the UI builds its forms from.
package config

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fuel-server/internal/fuel"
)

// Option is one selectable value with its display label and optional chart colour.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// NumberOption is a selectable numeric value.
type NumberOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// ConfigBody is the response body of the config endpoint.
type ConfigBody struct {
	FuelTypes      []Option       `json:"fuelTypes"`
	OperationTypes []Option       `json:"operationTypes"`
	Months         []NumberOption `json:"months"`
	Years          []NumberOption `json:"years" doc:"Years with rate data"`
	DefaultYear    int            `json:"defaultYear"`
	SelicRate      string         `json:"selicRate" doc:"SELIC rate in percent applied to every valuation"`
}

// ConfigOutput is the Huma output of the config endpoint.
type ConfigOutput struct {
	Body ConfigBody
}

type yearLister interface {
	SupportedYears() []int
}

// Handler handles GET /v1/config.
type Handler struct {
	RateService yearLister
}

func NewHandler(svc yearLister) *Handler {
	return &Handler{RateService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-config",
		Method:      http.MethodGet,
		Path:        "/v1/config",
		Summary:     "Get configuration",
		Description: "Fuel types, operation types, months and supported years with their labels.",
		Tags:        []string{"Config"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *struct{}) (*ConfigOutput, error) {
	body := ConfigBody{
		FuelTypes:      make([]Option, len(fuel.FuelTypes)),
		OperationTypes: make([]Option, len(fuel.OperationTypes)),
		Months:         make([]NumberOption, 12),
		DefaultYear:    fuel.DefaultYear,
		SelicRate:      fuel.SelicRate.StringFixed(2),
	}
	for i, ft := range fuel.FuelTypes {
		body.FuelTypes[i] = Option{Value: string(ft), Label: ft.Label(), Color: ft.Color()}
	}
	for i, ot := range fuel.OperationTypes {
		body.OperationTypes[i] = Option{Value: string(ot), Label: ot.Label(), Color: ot.Color()}
	}
	for m := 1; m <= 12; m++ {
		body.Months[m-1] = NumberOption{Value: m, Label: fuel.MonthLabel(m)}
	}

	years := h.RateService.SupportedYears()
	body.Years = make([]NumberOption, len(years))
	for i, y := range years {
		body.Years[i] = NumberOption{Value: y, Label: strconv.Itoa(y)}
	}
	return &ConfigOutput{Body: body}, nil
}
