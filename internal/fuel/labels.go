package fuel

var fuelLabels = map[FuelType]struct{ label, color string }{
	FuelTypeGasoline: {"Gasolina", "#ff9800"},
	FuelTypeEthanol:  {"Etanol", "#8bc34a"},
	FuelTypeDiesel:   {"Diesel", "#2196f3"},
}

var operationLabels = map[OperationType]struct{ label, color string }{
	OperationTypePurchase: {"Compra", "#f44336"},
	OperationTypeSale:     {"Venda", "#4caf50"},
}

var monthLabels = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// fallbackColor is used for values without a configured colour.
const fallbackColor = "#666"

// Label returns the display name of f, or f itself when unknown.
func (f FuelType) Label() string {
	if l, ok := fuelLabels[f]; ok {
		return l.label
	}
	return string(f)
}

// Color returns the chart colour of f.
func (f FuelType) Color() string {
	if l, ok := fuelLabels[f]; ok {
		return l.color
	}
	return fallbackColor
}

// Label returns the display name of o, or o itself when unknown.
func (o OperationType) Label() string {
	if l, ok := operationLabels[o]; ok {
		return l.label
	}
	return string(o)
}

// Color returns the chart colour of o.
func (o OperationType) Color() string {
	if l, ok := operationLabels[o]; ok {
		return l.color
	}
	return fallbackColor
}

// MonthLabel returns the display name of month m.
func MonthLabel(m int) string {
	if !ValidMonth(m) {
		return "Mês inválido"
	}
	return monthLabels[m-1]
}
