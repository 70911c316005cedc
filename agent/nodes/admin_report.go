package dialognode

import (
	"context"
	"fmt"
	"strings"
	"time"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
)

const (
	lowStockThreshold = 10
	lowStockLimit     = 8

	allOptimalReply = "All stock levels are currently optimal. No low-stock alerts recorded."
)

func lowStockReport(ctx context.Context, inv contractx.Inventory) (string, error) {
	items, err := inv.LowStock(ctx, lowStockThreshold, lowStockLimit)
	if err != nil {
		return "", fmt.Errorf("%w: low stock query: %v", contractx.ErrInventoryUnavailable, err)
	}
	if len(items) == 0 {
		return allOptimalReply, nil
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("• %s (Outlet %d): %d units left.", item.ItemName, item.OutletID, item.QuantityAvailable))
	}
	return "⚠️ **Stock Refill Needed:**\nBased on current levels, these items should be refilled soon:\n" + strings.Join(lines, "\n"), nil
}

func salesSummary(ctx context.Context, inv contractx.Inventory, text string, now time.Time) (string, error) {
	window := ResolveReportWindow(text, now)

	total, err := inv.SalesTotalsInWindow(ctx, window)
	if err != nil {
		return "", fmt.Errorf("%w: sales totals query: %v", contractx.ErrInventoryUnavailable, err)
	}
	top, err := inv.TopSellingItemInWindow(ctx, window)
	if err != nil {
		return "", fmt.Errorf("%w: top seller query: %v", contractx.ErrInventoryUnavailable, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Inventory Analysis (%s):**\n", window.Label)
	fmt.Fprintf(&b, "• Total Units Moved: %d\n", total)
	if top != nil {
		fmt.Fprintf(&b, "• Most Popular Item: %s (%d units)\n", top.ItemName, top.Quantity)
	}
	b.WriteString("\nSystem performance is stable across all distribution centers.")
	return b.String(), nil
}

// ResolveReportWindow maps period keywords in the raw turn text onto a
// half-open reporting interval: "today" covers the current calendar day,
// "yesterday" exactly the prior one, and the default trails seven days up
// to now.
func ResolveReportWindow(text string, now time.Time) contractx.ReportWindow {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case strings.Contains(text, "today"):
		return contractx.ReportWindow{
			From:  startOfDay,
			To:    startOfDay.AddDate(0, 0, 1),
			Label: "today",
		}
	case strings.Contains(text, "yesterday"):
		return contractx.ReportWindow{
			From:  startOfDay.AddDate(0, 0, -1),
			To:    startOfDay,
			Label: "yesterday",
		}
	default:
		return contractx.ReportWindow{
			From:  now.AddDate(0, 0, -7),
			To:    now,
			Label: "the last 7 days",
		}
	}
}
