package dialognode

import (
	"context"
	"fmt"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
	statex "github.com/pattarin-dev/unistock/agent/state"
)

// FinalizeSession clears the session after a terminal reply and re-persists
// it otherwise (the size gate may have reset the size slot after the
// pre-branch save).
func FinalizeSession(ctx context.Context, in *GraphState, store statex.Store) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	if in.Terminal {
		if err := store.Delete(ctx, in.SessionID); err != nil {
			return nil, fmt.Errorf("clear session: %w", err)
		}
		return in, nil
	}

	if err := store.Save(ctx, in.Session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return in, nil
}
