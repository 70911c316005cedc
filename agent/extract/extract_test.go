package extract

import (
	"testing"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
	statex "github.com/pattarin-dev/unistock/agent/state"
)

func TestApplySchoolAndCategory(t *testing.T) {
	t.Parallel()

	slots, guidance := Apply("do you have shiv nadar uniforms", statex.Slots{}, contractx.RoleCustomer)
	if guidance {
		t.Fatal("unexpected guidance flag")
	}
	if slots.School != statex.SchoolShivNadar {
		t.Fatalf("school = %q", slots.School)
	}
	if slots.Category != statex.CategoryNormalUniform {
		t.Fatalf("category = %q", slots.Category)
	}

	slots, _ = Apply("khs socks", statex.Slots{}, contractx.RoleCustomer)
	if slots.School != statex.SchoolKnowledgeHabitat {
		t.Fatalf("school = %q", slots.School)
	}
	if slots.Category != statex.CategorySocks {
		t.Fatalf("category = %q", slots.Category)
	}
}

func TestApplyCategoryPriorityOrder(t *testing.T) {
	t.Parallel()

	// "sports uniform" matches both the sports and uniform buckets; the
	// sports bucket is tested first and wins.
	slots, _ := Apply("sports uniform", statex.Slots{}, contractx.RoleCustomer)
	if slots.Category != statex.CategorySportsUniform {
		t.Fatalf("category = %q", slots.Category)
	}
}

func TestApplyColorLastScanMatchWins(t *testing.T) {
	t.Parallel()

	// The scan iterates the color list and lets the last match overwrite,
	// so the later-listed color wins regardless of textual order.
	slots, _ := Apply("red or yellow", statex.Slots{}, contractx.RoleCustomer)
	if slots.Color != "Yellow" {
		t.Fatalf("color = %q", slots.Color)
	}
	slots, _ = Apply("yellow or red", statex.Slots{}, contractx.RoleCustomer)
	if slots.Color != "Yellow" {
		t.Fatalf("color = %q", slots.Color)
	}
}

func TestApplySizeAgeBracket(t *testing.T) {
	t.Parallel()

	slots, _ := Apply("outlet 2 size 8-10y", statex.Slots{}, contractx.RoleCustomer)
	if slots.Size != "8–10Y" {
		t.Fatalf("size = %q", slots.Size)
	}
	if slots.OutletID != 2 {
		t.Fatalf("outlet_id = %d", slots.OutletID)
	}

	slots, _ = Apply("14y+ please", statex.Slots{}, contractx.RoleCustomer)
	if slots.Size != "14Y+" {
		t.Fatalf("size = %q", slots.Size)
	}
}

func TestApplySizeUKChestMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want string
	}{
		{"size 30", "8–10Y"},
		{"size 24", "2–4Y"},
		{"size 36", "14Y+"},
		// In range but unmapped: raw digits pass through.
		{"size 38", "38"},
		// Out of chest range: literal shoe size.
		{"size 12", "12"},
		{"size 2 please", "2"},
	}
	for _, tc := range cases {
		slots, _ := Apply(tc.text, statex.Slots{}, contractx.RoleCustomer)
		if slots.Size != tc.want {
			t.Fatalf("Apply(%q) size = %q, want %q", tc.text, slots.Size, tc.want)
		}
	}
}

func TestApplySizeAmbiguousLoneDigit(t *testing.T) {
	t.Parallel()

	// "3" alone: neither val>5 nor a "size" keyword, so the size stays
	// unset and the outlet fallback claims the digit instead.
	slots, _ := Apply("3", statex.Slots{}, contractx.RoleCustomer)
	if slots.Size != "" {
		t.Fatalf("size = %q, want unset", slots.Size)
	}
	if slots.OutletID != 3 {
		t.Fatalf("outlet_id = %d, want 3", slots.OutletID)
	}
}

func TestApplySizeGuidanceKeywords(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"i don't know", "dont know", "not sure", "size help", "which size", "what size do i need"} {
		slots, guidance := Apply(text, statex.Slots{Size: "8–10Y"}, contractx.RoleCustomer)
		if !guidance {
			t.Fatalf("Apply(%q) guidance = false", text)
		}
		// Extraction itself leaves the slot; the policy performs the reset.
		if slots.Size != "8–10Y" {
			t.Fatalf("Apply(%q) size = %q", text, slots.Size)
		}
	}
}

func TestApplyOutletPatterns(t *testing.T) {
	t.Parallel()

	slots, _ := Apply("outlet 3 please", statex.Slots{}, contractx.RoleCustomer)
	if slots.OutletID != 3 {
		t.Fatalf("outlet_id = %d, want 3", slots.OutletID)
	}

	slots, _ = Apply("center 4", statex.Slots{}, contractx.RoleCustomer)
	if slots.OutletID != 4 {
		t.Fatalf("outlet_id = %d, want 4", slots.OutletID)
	}

	// Lone digit fallback applies only with no outlet set yet.
	slots, _ = Apply("check 2", statex.Slots{}, contractx.RoleCustomer)
	if slots.OutletID != 2 {
		t.Fatalf("outlet_id = %d, want 2", slots.OutletID)
	}
	slots, _ = Apply("check 2", statex.Slots{OutletID: 5}, contractx.RoleCustomer)
	if slots.OutletID != 5 {
		t.Fatalf("outlet_id = %d, want 5 retained", slots.OutletID)
	}

	// A size/year/age word blocks the fallback from misreading the digit.
	slots, _ = Apply("size 2 please", statex.Slots{}, contractx.RoleCustomer)
	if slots.OutletID != 0 {
		t.Fatalf("outlet_id = %d, want unset", slots.OutletID)
	}
}

func TestApplyOutletOnlyKnownIDs(t *testing.T) {
	t.Parallel()

	// Outlets run 1-5; a nonexistent outlet number never fills the slot.
	for _, text := range []string{"outlet 7", "outlet 12", "center 9", "hub 0"} {
		slots, _ := Apply(text, statex.Slots{}, contractx.RoleCustomer)
		if slots.OutletID != 0 {
			t.Fatalf("Apply(%q) outlet_id = %d, want unset", text, slots.OutletID)
		}
	}
}

func TestApplyAdminIntentRoleGated(t *testing.T) {
	t.Parallel()

	slots, _ := Apply("show me the summary report", statex.Slots{Intent: statex.IntentAvailabilityCheck}, contractx.RoleCustomer)
	if slots.Intent != statex.IntentAvailabilityCheck {
		t.Fatalf("intent = %q, want availability_check for customer", slots.Intent)
	}

	slots, _ = Apply("show me the summary report", statex.Slots{Intent: statex.IntentAvailabilityCheck}, contractx.RoleAdmin)
	if slots.Intent != statex.IntentSummary {
		t.Fatalf("intent = %q, want summary for admin", slots.Intent)
	}

	slots, _ = Apply("any low stock alerts?", statex.Slots{Intent: statex.IntentAvailabilityCheck}, contractx.RoleAdmin)
	if slots.Intent != statex.IntentLowStockAlert {
		t.Fatalf("intent = %q, want low_stock_alert", slots.Intent)
	}

	// No intent keywords leave the intent unchanged.
	slots, _ = Apply("hello there", statex.Slots{Intent: statex.IntentAvailabilityCheck}, contractx.RoleAdmin)
	if slots.Intent != statex.IntentAvailabilityCheck {
		t.Fatalf("intent = %q, want unchanged", slots.Intent)
	}
}

func TestApplyPreservesUnrelatedSlots(t *testing.T) {
	t.Parallel()

	in := statex.Slots{
		School:   statex.SchoolShivNadar,
		Category: statex.CategoryShoes,
		Size:     "7",
		OutletID: 1,
		Intent:   statex.IntentAvailabilityCheck,
	}
	out, guidance := Apply("thanks", in, contractx.RoleCustomer)
	if guidance {
		t.Fatal("unexpected guidance flag")
	}
	if out != in {
		t.Fatalf("slots changed: %+v -> %+v", in, out)
	}
}

func TestApplyIdempotent(t *testing.T) {
	t.Parallel()

	text := "shiv nadar sports uniform red size 30 outlet 2"
	once, _ := Apply(text, statex.Slots{Intent: statex.IntentAvailabilityCheck}, contractx.RoleCustomer)
	twice, _ := Apply(text, once, contractx.RoleCustomer)
	if once != twice {
		t.Fatalf("second application changed slots: %+v -> %+v", once, twice)
	}
}
