package fuel

// FuelType identifies the fuel an operation or rate refers to.
type FuelType string

const (
	FuelTypeGasoline FuelType = "gasoline"
	FuelTypeEthanol  FuelType = "ethanol"
	FuelTypeDiesel   FuelType = "diesel"
)

// FuelTypes lists every supported fuel type in display order.
var FuelTypes = []FuelType{FuelTypeGasoline, FuelTypeEthanol, FuelTypeDiesel}

// Valid reports whether f is one of the supported fuel types.
func (f FuelType) Valid() bool {
	switch f {
	case FuelTypeGasoline, FuelTypeEthanol, FuelTypeDiesel:
		return true
	}
	return false
}

// OperationType is the direction of an operation: a purchase or a sale.
type OperationType string

const (
	OperationTypePurchase OperationType = "purchase"
	OperationTypeSale     OperationType = "sale"
)

// OperationTypes lists every supported operation type in display order.
var OperationTypes = []OperationType{OperationTypePurchase, OperationTypeSale}

// Valid reports whether o is one of the supported operation types.
func (o OperationType) Valid() bool {
	return o == OperationTypePurchase || o == OperationTypeSale
}

// ValidMonth reports whether m is a calendar month number.
func ValidMonth(m int) bool {
	return m >= 1 && m <= 12
}
