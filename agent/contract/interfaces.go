package contract

import "context"

// Inventory is the read-only collaborator the dialogue core resolves
// queries against. Implementations must not mutate stock.
type Inventory interface {
	// FindExactMatch returns the single record matching the query, or nil
	// when no record exists.
	FindExactMatch(ctx context.Context, q ExactMatchQuery) (*StockRecord, error)
	LowStock(ctx context.Context, thresholdExclusive, limit int) ([]LowStockItem, error)
	SalesTotalsInWindow(ctx context.Context, w ReportWindow) (int, error)
	// TopSellingItemInWindow returns nil when no sales occurred in-window.
	TopSellingItemInWindow(ctx context.Context, w ReportWindow) (*TopSeller, error)
}
