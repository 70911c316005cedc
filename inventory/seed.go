package inventory

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/uptrace/bun"

	statex "github.com/pattarin-dev/unistock/agent/state"
)

var (
	seedSchools = []string{statex.SchoolShivNadar, statex.SchoolKnowledgeHabitat}

	seedCategories = []string{
		statex.CategoryNormalUniform,
		statex.CategoryShoes,
		statex.CategorySocks,
		statex.CategorySportsUniform,
	}

	ageSizes  = []string{"2–4Y", "4–6Y", "6–8Y", "8–10Y", "10–12Y", "12–14Y", "14Y+"}
	shoeSizes = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13+"}

	seedOutlets = []int{1, 2, 3, 4, 5}
)

// InitSchema creates the inventory and sales_log tables when absent.
func InitSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().Model((*Item)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create inventory table: %w", err)
	}
	if _, err := db.NewCreateTable().Model((*SaleEntry)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create sales_log table: %w", err)
	}
	return nil
}

// Seed fills an empty inventory with every school/category/size/outlet
// combination (house colors for Sports Uniform) plus a week of sales
// history per item. A non-empty inventory is left untouched.
func Seed(ctx context.Context, db *bun.DB, now time.Time) error {
	count, err := db.NewSelect().Model((*Item)(nil)).Count(ctx)
	if err != nil {
		return fmt.Errorf("count inventory: %w", err)
	}
	if count > 0 {
		return nil
	}

	items := BuildSeedItems()
	if _, err := db.NewInsert().Model(&items).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("seed inventory: %w", err)
	}

	sales := buildSeedSales(items, now)
	if _, err := db.NewInsert().Model(&sales).Exec(ctx); err != nil {
		return fmt.Errorf("seed sales_log: %w", err)
	}
	return nil
}

// BuildSeedItems produces the full seed catalog: shoe sizes for Shoes, age
// brackets otherwise; one row per house color for Sports Uniform, a
// "Standard" color for Normal Uniform, no color for the rest.
func BuildSeedItems() []*Item {
	var items []*Item

	for _, school := range seedSchools {
		for _, category := range seedCategories {
			sizes := ageSizes
			if category == statex.CategoryShoes {
				sizes = shoeSizes
			}

			displayName := category
			if category == statex.CategoryNormalUniform {
				displayName = "Uniform"
			}

			for _, size := range sizes {
				for _, outlet := range seedOutlets {
					if category == statex.CategorySportsUniform {
						for _, color := range statex.HouseColors {
							items = append(items, newSeedItem(school, category, displayName, size, strPtr(color), outlet))
						}
						continue
					}

					var color *string
					if category == statex.CategoryNormalUniform {
						color = strPtr(statex.ColorStandard)
					}
					items = append(items, newSeedItem(school, category, displayName, size, color, outlet))
				}
			}
		}
	}
	return items
}

func newSeedItem(school, category, displayName, size string, color *string, outlet int) *Item {
	return &Item{
		School:            school,
		Category:          category,
		ItemName:          displayName,
		Size:              size,
		Color:             color,
		OutletID:          outlet,
		QuantityAvailable: rand.Intn(50),
		QuantitySold:      rand.Intn(20),
		QuantityIncoming:  rand.Intn(30),
	}
}

func buildSeedSales(items []*Item, now time.Time) []*SaleEntry {
	sales := make([]*SaleEntry, 0, len(items)*7)
	for _, item := range items {
		for day := 0; day < 7; day++ {
			sales = append(sales, &SaleEntry{
				InventoryID: item.ID,
				Quantity:    rand.Intn(5),
				Timestamp:   now.AddDate(0, 0, -day),
			})
		}
	}
	return sales
}

func strPtr(s string) *string {
	return &s
}
