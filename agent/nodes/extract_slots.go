package dialognode

import (
	"fmt"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
	extractx "github.com/pattarin-dev/unistock/agent/extract"
)

// ExtractSlots runs the pure extractor over the turn text and merges the
// detections into the carried-forward session slots.
func ExtractSlots(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	slots, guidance := extractx.Apply(in.Text, in.Session.Slots, in.Role)
	in.Session.Slots = slots
	in.SizeGuidance = guidance
	return in, nil
}
