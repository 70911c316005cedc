package dialognode

import (
	"context"
	"errors"
	"fmt"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
	statex "github.com/pattarin-dev/unistock/agent/state"
)

// LoadOrCreateSession fetches the slot state for the session id, creating a
// fresh record lazily on the first turn of a conversation.
func LoadOrCreateSession(ctx context.Context, in *GraphState, store statex.Store) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	session, err := store.Load(ctx, in.SessionID)
	if err != nil {
		if !errors.Is(err, statex.ErrStateNotFound) {
			return nil, fmt.Errorf("load session: %w", err)
		}
		session = statex.NewSession(in.SessionID, in.Now)
	}

	in.Session = session
	return in, nil
}
