package dialognode

import (
	"context"
	"fmt"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
	statex "github.com/pattarin-dev/unistock/agent/state"
)

// resolveAvailability runs the final exact-match lookup once every gate has
// passed. All three outcomes (in stock, out of stock, no record) are
// terminal for the session.
func resolveAvailability(ctx context.Context, inv contractx.Inventory, slots statex.Slots) (string, error) {
	record, err := inv.FindExactMatch(ctx, contractx.ExactMatchQuery{
		School:   slots.School,
		Category: slots.Category,
		Size:     slots.Size,
		OutletID: slots.OutletID,
		Color:    slots.Color,
	})
	if err != nil {
		return "", fmt.Errorf("%w: availability lookup: %v", contractx.ErrInventoryUnavailable, err)
	}

	if record == nil {
		return fmt.Sprintf("I couldn't find a record for %s %s in Size %s at Outlet %d. Please verify the details.",
			slots.School, slots.Category, slots.Size, slots.OutletID), nil
	}

	colorStr := ""
	if slots.Color != "" {
		colorStr = fmt.Sprintf(" (%s)", slots.Color)
	}

	if record.QuantityAvailable > 0 {
		return fmt.Sprintf("Yes, we have %s %s%s in Size %s in stock at Outlet %d.",
			slots.School, slots.Category, colorStr, slots.Size, slots.OutletID), nil
	}
	return fmt.Sprintf("I'm sorry, %s %s%s in Size %s is currently out of stock at Outlet %d.",
		slots.School, slots.Category, colorStr, slots.Size, slots.OutletID), nil
}
