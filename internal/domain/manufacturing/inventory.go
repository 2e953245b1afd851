package manufacturing

import "time"

// Inventory cantidad de un producto en una ubicación de almacén.
type Inventory struct {
	ID        string
	ProductID string
	Quantity  int
	Location  string
	UpdatedAt time.Time

	ProductCode string
	ProductName string
}
