// Package extract turns one lower-cased message into slot updates.
//
// Every detector is an ordered rule list evaluated in a fixed, documented
// order, so the first/last-match precedence of each signal category is
// explicit rather than hidden in conditional fall-through. Apply is pure:
// it never touches the session store and calling it twice with the same
// text and resulting slots is a no-op on the second call.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
	statex "github.com/pattarin-dev/unistock/agent/state"
)

type aliasRule struct {
	value   string
	aliases []string
}

// schoolRules are tested top-down; the first bucket with any matching alias
// wins and later buckets are not consulted.
var schoolRules = []aliasRule{
	{value: statex.SchoolShivNadar, aliases: []string{"shiv", "nadar", "sns"}},
	{value: statex.SchoolKnowledgeHabitat, aliases: []string{"knowledge", "habitat", "khs"}},
}

// categoryRules are priority-ordered: sports keywords outrank the generic
// uniform words so "sports uniform" lands on Sports Uniform.
var categoryRules = []aliasRule{
	{value: statex.CategorySportsUniform, aliases: []string{"sport", "pt", "track"}},
	{value: statex.CategoryNormalUniform, aliases: []string{"uniform", "dress", "shirt", "pant"}},
	{value: statex.CategoryShoes, aliases: []string{"shoe", "footwear"}},
	{value: statex.CategorySocks, aliases: []string{"sock"}},
}

// sizeGuidanceKeywords mark a turn as asking how sizing works instead of
// stating a size.
var sizeGuidanceKeywords = []string{
	"don't know", "dont know", "not sure", "size help", "which size", "what size",
}

var (
	ageRangeRe   = regexp.MustCompile(`\d+[-–]\d+y|\d+y\+`)
	bareNumberRe = regexp.MustCompile(`\b(size\s+)?(\d+)\b`)
	loneOutletRe = regexp.MustCompile(`\b([1-5])\b`)
)

// outletPatterns are tried in order; the first match wins. Only digits 1-5
// match: a turn naming a nonexistent outlet leaves the slot unset, so the
// outlet gate asks again instead of carrying an impossible id forward.
var outletPatterns = []*regexp.Regexp{
	regexp.MustCompile(`outlet\s*([1-5])\b`),
	regexp.MustCompile(`center\s*([1-5])\b`),
	regexp.MustCompile(`hub\s*([1-5])\b`),
}

// ukChestToAge maps a UK chest size in [24,40] to its age bracket. In-range
// values without an entry fall through to the raw digits.
var ukChestToAge = map[int]string{
	24: "2–4Y",
	26: "4–6Y",
	28: "6–8Y",
	30: "8–10Y",
	32: "10–12Y",
	34: "12–14Y",
	36: "14Y+",
}

var lowStockKeywords = []string{"low stock", "alert", "refill", "reorder"}
var summaryKeywords = []string{"summary", "total", "analysis", "report"}

// Apply merges every signal detected in text into slots and reports whether
// the turn asked for sizing guidance. text must already be lower-cased.
// Detected signals overwrite; undetected fields keep their prior value —
// extraction never clears a filled slot (the guidance-driven size reset is
// the policy's job, not the extractor's).
func Apply(text string, slots statex.Slots, role contractx.Role) (statex.Slots, bool) {
	applySchool(text, &slots)
	applyCategory(text, &slots)
	applyColor(text, &slots)
	guidance := applySize(text, &slots)
	applyOutlet(text, &slots)
	applyIntent(text, &slots, role)
	return slots, guidance
}

func applySchool(text string, slots *statex.Slots) {
	for _, rule := range schoolRules {
		if containsAny(text, rule.aliases) {
			slots.School = rule.value
			return
		}
	}
}

func applyCategory(text string, slots *statex.Slots) {
	for _, rule := range categoryRules {
		if containsAny(text, rule.aliases) {
			slots.Category = rule.value
			return
		}
	}
}

// applyColor scans the house colors in list order and lets every match
// overwrite, so the last-listed color present in the text wins regardless
// of where it appears. Preserved precedence, not textual order.
func applyColor(text string, slots *statex.Slots) {
	for _, color := range statex.HouseColors {
		if strings.Contains(text, strings.ToLower(color)) {
			slots.Color = color
		}
	}
}

// applySize resolves the size slot in two stages: guidance keywords short-
// circuit extraction entirely, then an explicit age bracket, then a bare
// number that is either a UK chest size (mapped to an age bracket) or a
// literal shoe size.
func applySize(text string, slots *statex.Slots) bool {
	if containsAny(text, sizeGuidanceKeywords) {
		return true
	}

	if m := ageRangeRe.FindString(text); m != "" {
		slots.Size = strings.ToUpper(strings.ReplaceAll(m, "-", "–"))
		return false
	}

	m := bareNumberRe.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	val, err := strconv.Atoi(m[2])
	if err != nil {
		return false
	}
	if val <= 5 && !strings.Contains(text, "size") {
		// Too ambiguous to be a size; the outlet fallback may still claim it.
		return false
	}
	if val >= 24 && val <= 40 {
		if age, ok := ukChestToAge[val]; ok {
			slots.Size = age
		} else {
			slots.Size = m[2]
		}
		return false
	}
	slots.Size = m[2]
	return false
}

func applyOutlet(text string, slots *statex.Slots) {
	for _, re := range outletPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if id, err := strconv.Atoi(m[1]); err == nil {
				slots.OutletID = id
			}
			return
		}
	}

	// Fallback: a lone digit 1-5 counts as an outlet only when no outlet is
	// set yet and the message has no size/year/age wording that would make
	// the digit a size. Ambiguous inputs like a bare "3" resolve to the
	// outlet here; this numeric overload is accepted, not a defect.
	if slots.OutletID != 0 {
		return
	}
	if containsAny(text, []string{"size", "year", "age"}) {
		return
	}
	if m := loneOutletRe.FindStringSubmatch(text); m != nil {
		if id, err := strconv.Atoi(m[1]); err == nil {
			slots.OutletID = id
		}
	}
}

// applyIntent moves the intent to an admin report only for the admin role;
// absence of both keyword groups leaves the intent unchanged.
func applyIntent(text string, slots *statex.Slots, role contractx.Role) {
	if role != contractx.RoleAdmin {
		return
	}
	switch {
	case containsAny(text, lowStockKeywords):
		slots.Intent = statex.IntentLowStockAlert
	case containsAny(text, summaryKeywords):
		slots.Intent = statex.IntentSummary
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
