// Package inventory is the read-only stock collaborator: bun models over
// the inventory and sales_log tables, the exact-match and reporting queries
// the dialogue core issues, and the dashboard aggregates.
package inventory

import (
	"database/sql"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type Config struct {
	DSN string `envconfig:"DSN" split_words:"true" required:"true"`
}

func Connect(cfg Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// Item is one stock row. The key tuple (school, category, size, color,
// outlet_id) is unique per outlet; color is NULL except for Sports Uniform
// (house color) and Normal Uniform ("Standard").
type Item struct {
	bun.BaseModel `bun:"table:inventory,alias:i" json:"-"`

	ID                int64     `bun:"id,pk,autoincrement" json:"id"`
	School            string    `bun:"school,notnull" json:"school"`
	Category          string    `bun:"category,notnull" json:"category"`
	ItemName          string    `bun:"item_name,notnull" json:"item_name"`
	Size              string    `bun:"size,notnull" json:"size"`
	Color             *string   `bun:"color" json:"color"`
	OutletID          int       `bun:"outlet_id,notnull" json:"outlet_id"`
	QuantityAvailable int       `bun:"quantity_available" json:"quantity_available"`
	QuantitySold      int       `bun:"quantity_sold" json:"quantity_sold"`
	QuantityIncoming  int       `bun:"quantity_incoming" json:"quantity_incoming"`
	LastUpdated       time.Time `bun:"last_updated,nullzero,notnull,default:current_timestamp" json:"last_updated"`
}

// SaleEntry is one sale event, feeding the summary reports.
type SaleEntry struct {
	bun.BaseModel `bun:"table:sales_log,alias:s" json:"-"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	InventoryID int64     `bun:"inventory_id" json:"inventory_id"`
	Quantity    int       `bun:"quantity" json:"quantity"`
	Timestamp   time.Time `bun:"timestamp,nullzero,notnull,default:current_timestamp" json:"timestamp"`
}

// Overview is the dashboard aggregate row.
type Overview struct {
	TotalAvailable int `bun:"total_available" json:"total_available"`
	TotalSold      int `bun:"total_sold" json:"total_sold"`
	TotalIncoming  int `bun:"total_incoming" json:"total_incoming"`
	LowStockCount  int `bun:"low_stock_count" json:"low_stock_count"`
}
