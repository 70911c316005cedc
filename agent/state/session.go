package state

import (
	"errors"
	"fmt"
	"time"
)

// Known schools and item categories. Extraction and seeding share these.
const (
	SchoolShivNadar        = "Complete Shiv Nadar School"
	SchoolKnowledgeHabitat = "Knowledge Habitat School"
)

const (
	CategoryNormalUniform = "Normal Uniform"
	CategoryShoes         = "Shoes"
	CategorySocks         = "Socks"
	CategorySportsUniform = "Sports Uniform"
)

// ColorStandard is the placeholder color stored for Normal Uniform rows.
const ColorStandard = "Standard"

// HouseColors are the Sports Uniform colors, in extraction scan order.
// The scan lets the last matching entry win, so a message naming several
// colors resolves to the later-listed one. Preserved as-is.
var HouseColors = []string{"Red", "Blue", "Green", "Yellow"}

type Intent string

const (
	IntentAvailabilityCheck Intent = "availability_check"
	IntentLowStockAlert     Intent = "low_stock_alert"
	IntentSummary           Intent = "summary"
)

// Slots is the structured query being filled from conversation turns.
// Zero values mean "not yet provided".
type Slots struct {
	School   string `json:"school,omitempty"`
	Category string `json:"category,omitempty"`
	Size     string `json:"size,omitempty"`
	Color    string `json:"color,omitempty"`
	OutletID int    `json:"outlet_id,omitempty"`
	Intent   Intent `json:"intent"`
}

// RequiresColor reports whether the color gate applies: only Sports Uniform
// carries a house color, every other category stores "Standard" or nothing.
func (s Slots) RequiresColor() bool {
	return s.Category == CategorySportsUniform
}

// Merge overwrites each slot for which patch carries a new detection and
// retains the prior value otherwise. Merging never clears a filled slot.
func (s *Slots) Merge(patch Slots) {
	if patch.School != "" {
		s.School = patch.School
	}
	if patch.Category != "" {
		s.Category = patch.Category
	}
	if patch.Size != "" {
		s.Size = patch.Size
	}
	if patch.Color != "" {
		s.Color = patch.Color
	}
	if patch.OutletID != 0 {
		s.OutletID = patch.OutletID
	}
	if patch.Intent != "" {
		s.Intent = patch.Intent
	}
}

var (
	ErrInvalidSlotValue = errors.New("invalid slot value")
)

var (
	validSchools = map[string]bool{
		SchoolShivNadar:        true,
		SchoolKnowledgeHabitat: true,
	}
	validCategories = map[string]bool{
		CategoryNormalUniform: true,
		CategoryShoes:         true,
		CategorySocks:         true,
		CategorySportsUniform: true,
	}
	validIntents = map[Intent]bool{
		IntentAvailabilityCheck: true,
		IntentLowStockAlert:     true,
		IntentSummary:           true,
	}
)

func (s Slots) Validate() error {
	if s.School != "" && !validSchools[s.School] {
		return fmt.Errorf("%w: school=%q", ErrInvalidSlotValue, s.School)
	}
	if s.Category != "" && !validCategories[s.Category] {
		return fmt.Errorf("%w: category=%q", ErrInvalidSlotValue, s.Category)
	}
	if s.Color != "" {
		known := false
		for _, c := range HouseColors {
			if s.Color == c {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: color=%q", ErrInvalidSlotValue, s.Color)
		}
	}
	if s.OutletID < 0 || s.OutletID > 5 {
		return fmt.Errorf("%w: outlet_id=%d", ErrInvalidSlotValue, s.OutletID)
	}
	if s.Intent != "" && !validIntents[s.Intent] {
		return fmt.Errorf("%w: intent=%q", ErrInvalidSlotValue, s.Intent)
	}
	return nil
}

// Session is the ephemeral per-conversation slot accumulation, keyed by an
// opaque session identifier. Created lazily on the first turn, deleted after
// every terminal reply.
type Session struct {
	SessionID string    `json:"session_id"`
	Slots     Slots     `json:"slots"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(sessionID string, now time.Time) *Session {
	return &Session{
		SessionID: sessionID,
		Slots:     Slots{Intent: IntentAvailabilityCheck},
		UpdatedAt: now.UTC(),
	}
}

func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}

func (s *Session) Validate() error {
	if s == nil {
		return errors.New("nil session")
	}
	return s.Slots.Validate()
}
