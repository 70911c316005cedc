package inventory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
	statex "github.com/pattarin-dev/unistock/agent/state"
)

// Repository implements the dialogue core's Inventory contract plus the
// dashboard reads. All queries are read-only.
type Repository struct {
	db *bun.DB
}

var _ contractx.Inventory = (*Repository)(nil)

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindExactMatch(ctx context.Context, q contractx.ExactMatchQuery) (*contractx.StockRecord, error) {
	item := new(Item)
	query := r.db.NewSelect().Model(item).
		Where("school = ?", q.School).
		Where("category = ?", q.Category).
		Where("size = ?", q.Size).
		Where("outlet_id = ?", q.OutletID)

	if q.Color != "" {
		query = query.Where("color = ?", q.Color)
	} else {
		// Non-sports categories store a placeholder or no color at all.
		query = query.Where("(color = ? OR color IS NULL)", statex.ColorStandard)
	}

	if err := query.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &contractx.StockRecord{
		ItemName:          item.ItemName,
		QuantityAvailable: item.QuantityAvailable,
	}, nil
}

func (r *Repository) LowStock(ctx context.Context, thresholdExclusive, limit int) ([]contractx.LowStockItem, error) {
	var items []Item
	err := r.db.NewSelect().Model(&items).
		Column("item_name", "quantity_available", "outlet_id").
		Where("quantity_available < ?", thresholdExclusive).
		OrderExpr("id").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]contractx.LowStockItem, 0, len(items))
	for _, item := range items {
		out = append(out, contractx.LowStockItem{
			ItemName:          item.ItemName,
			QuantityAvailable: item.QuantityAvailable,
			OutletID:          item.OutletID,
		})
	}
	return out, nil
}

func (r *Repository) SalesTotalsInWindow(ctx context.Context, w contractx.ReportWindow) (int, error) {
	var total int
	err := r.db.NewSelect().Model((*SaleEntry)(nil)).
		ColumnExpr("COALESCE(SUM(quantity), 0)").
		Where("timestamp >= ?", w.From).
		Where("timestamp < ?", w.To).
		Scan(ctx, &total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *Repository) TopSellingItemInWindow(ctx context.Context, w contractx.ReportWindow) (*contractx.TopSeller, error) {
	var row struct {
		ItemName string `bun:"item_name"`
		Qty      int    `bun:"qty"`
	}
	err := r.db.NewSelect().Model((*SaleEntry)(nil)).
		ColumnExpr("i.item_name AS item_name").
		ColumnExpr("SUM(s.quantity) AS qty").
		Join("JOIN inventory AS i ON i.id = s.inventory_id").
		Where("s.timestamp >= ?", w.From).
		Where("s.timestamp < ?", w.To).
		GroupExpr("i.item_name").
		// Ties break on name so the report is deterministic.
		OrderExpr("qty DESC, i.item_name").
		Limit(1).
		Scan(ctx, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &contractx.TopSeller{
		ItemName: row.ItemName,
		Quantity: row.Qty,
	}, nil
}

// List returns inventory rows for the dashboard; outletID <= 0 lists all.
func (r *Repository) List(ctx context.Context, outletID int) ([]Item, error) {
	var items []Item
	query := r.db.NewSelect().Model(&items).OrderExpr("id")
	if outletID > 0 {
		query = query.Where("outlet_id = ?", outletID)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

// Overview returns the dashboard aggregates; outletID <= 0 covers all outlets.
func (r *Repository) Overview(ctx context.Context, outletID int) (Overview, error) {
	var overview Overview
	query := r.db.NewSelect().Model((*Item)(nil)).
		ColumnExpr("COALESCE(SUM(quantity_available), 0) AS total_available").
		ColumnExpr("COALESCE(SUM(quantity_sold), 0) AS total_sold").
		ColumnExpr("COALESCE(SUM(quantity_incoming), 0) AS total_incoming").
		ColumnExpr("COUNT(CASE WHEN quantity_available < 5 THEN 1 END) AS low_stock_count")
	if outletID > 0 {
		query = query.Where("outlet_id = ?", outletID)
	}
	if err := query.Scan(ctx, &overview); err != nil {
		return Overview{}, err
	}
	return overview, nil
}
