package dialognode

import (
	"context"
	"fmt"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
	statex "github.com/pattarin-dev/unistock/agent/state"
)

// SaveSession persists the merged slots before the policy branches, so a
// collaborator failure later in the turn leaves the accumulated state in
// place for a retry.
func SaveSession(ctx context.Context, in *GraphState, store statex.Store) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	in.Session.Touch(in.Now)
	if err := in.Session.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrValidation, err)
	}
	if err := store.Save(ctx, in.Session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return in, nil
}
