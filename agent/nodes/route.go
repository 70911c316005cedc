package dialognode

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
	statex "github.com/pattarin-dev/unistock/agent/state"
)

const (
	colorPrompt = "Sounds good! Which uniform color would you like to check about (Red, Blue, Green, or Yellow)?"

	outletPrompt = "Got it. Last thing, which Outlet (1-5) should I check for you? (Note: Outlet 1 usually has the most variety in stock)."

	sizeChart = `📏 **Size Conversion Guide:**
• UK 24 → Age 2-4Y
• UK 26 → Age 4-6Y
• UK 28 → Age 6-8Y
• UK 30 → Age 8-10Y
• UK 32 → Age 10-12Y
• UK 34 → Age 12-14Y
• UK 36+ → Age 14Y+

No worries if you're unsure! **Outlet 1** usually carries our most comprehensive range of sizes. Would you like to check a specific one from the list above?`
)

// Route is the dialogue policy. There is no stored state identifier: the
// current step is inferred structurally from which slots are filled, and the
// whole gate sequence is re-evaluated from the top on every turn, so a later
// turn that fills an earlier gap continues from the first unmet gate.
func Route(ctx context.Context, in *GraphState, inv contractx.Inventory) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	// Admin intents bypass slot-filling entirely and are always terminal.
	if in.Role == contractx.RoleAdmin {
		switch in.Session.Slots.Intent {
		case statex.IntentLowStockAlert:
			reply, err := lowStockReport(ctx, inv)
			if err != nil {
				return nil, err
			}
			in.Reply = reply
			in.Terminal = true
			return in, nil
		case statex.IntentSummary:
			reply, err := salesSummary(ctx, inv, in.Text, in.Now)
			if err != nil {
				return nil, err
			}
			in.Reply = reply
			in.Terminal = true
			return in, nil
		}
	}

	slots := &in.Session.Slots

	// Gate 1: school and category jointly, naming exactly what is missing.
	if slots.School == "" || slots.Category == "" {
		var missing []string
		if slots.School == "" {
			missing = append(missing, "school (Complete Shiv Nadar or Knowledge Habitat)")
		}
		if slots.Category == "" {
			missing = append(missing, "item type (Uniform, Shoes, Sports, etc.)")
		}
		in.Reply = fmt.Sprintf("I can help with that! To get started, please let me know the %s.", strings.Join(missing, " and "))
		return in, nil
	}

	// Gate 2: house color, for Sports Uniform only.
	if slots.RequiresColor() && slots.Color == "" {
		in.Reply = colorPrompt
		return in, nil
	}

	// Gate 3: size. Asking for sizing help lands here even with a size set;
	// the slot is forced back to unset so the next turn re-enters this gate.
	if slots.Size == "" || in.SizeGuidance {
		slots.Size = ""
		in.Reply = sizeChart
		return in, nil
	}

	// Gate 4: outlet.
	if slots.OutletID == 0 {
		in.Reply = outletPrompt
		return in, nil
	}

	reply, err := resolveAvailability(ctx, inv, *slots)
	if err != nil {
		return nil, err
	}
	in.Reply = reply
	in.Terminal = true
	return in, nil
}
