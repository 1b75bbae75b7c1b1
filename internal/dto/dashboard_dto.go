package dto

// Dashboard summaries are precomputed server-side; every field travels with a
// name (the original wire format used positional tuples).

type DashboardStats struct {
	TotalProducts  int64 `json:"total_products"`
	TotalSuppliers int64 `json:"total_suppliers"`
	LowStockItems  int64 `json:"low_stock_items"`
	ActiveAlerts   int64 `json:"active_alerts"`
}

type InventoryStatusSummary struct {
	InStock    int64 `json:"in_stock"`
	LowStock   int64 `json:"low_stock"`
	OutOfStock int64 `json:"out_of_stock"`
}

// TransactionTrendPoint is one (date, type, count) row of the last-30-days
// grouping; the console folds these into one record per date.
type TransactionTrendPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type LowStockProduct struct {
	ProductName       string `json:"product_name"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
