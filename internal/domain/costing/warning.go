package costing

// Warning anomalía de datos detectada durante el costeo que no detiene el lote.
// La capa de aplicación la registra en el log.
type Warning struct {
	Code            string
	MenuItemID      string
	PortionName     string
	InventoryItemID string
	Message         string
}

// Códigos de advertencia.
const (
	WarnUnknownTagMenuItem  = "unknown_tag_menu_item"
	WarnNonPositiveConsumed = "non_positive_consumption"
	WarnSalesQuantityDrift  = "sales_quantity_drift"
)
