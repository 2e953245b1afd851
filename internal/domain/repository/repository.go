// Package repository define los puertos de persistencia (DIP). Convenciones comunes:
//   - Get* devuelve (nil, nil) si la fila no existe.
//   - Create/Update devuelven domain.ErrDuplicate ante una clave única repetida.
//   - Delete devuelve domain.ErrConflict si otra fila todavía referencia a la eliminada.
package repository

// Page ventana de paginación (limit/offset) ya resuelta por la capa de aplicación.
type Page struct {
	Limit  int
	Offset int
}

// Repositories agrupa los puertos atados a una misma conexión o transacción.
type Repositories struct {
	Categories CategoryRepository
	Products   ProductRepository
	Customers  CustomerRepository
	Sales      SaleRepository
	SaleItems  SaleItemRepository
	Analytics  AnalyticsRepository

	MfgProducts      MfgProductRepository
	Processes        ProcessRepository
	ProductionOrders ProductionOrderRepository
	Inventory        InventoryRepository
}
