// Package dialogue hosts the turn-handling engine: rule-based slot filling,
// a structurally inferred dialogue policy, and terminal query resolution
// against the inventory collaborator.
package dialogue

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
	nodex "github.com/pattarin-dev/unistock/agent/nodes"
	statex "github.com/pattarin-dev/unistock/agent/state"
)

var (
	ErrInvalidMessage = nodex.ErrInvalidMessage
	ErrInvalidSession = nodex.ErrInvalidSession
)

type Engine struct {
	store     statex.Store
	inventory contractx.Inventory

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	now func() time.Time
}

func New(store statex.Store, inventory contractx.Inventory) (*Engine, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if inventory == nil {
		return nil, errors.New("inventory collaborator is required")
	}

	e := &Engine{
		store:     store,
		inventory: inventory,
		now:       time.Now,
	}

	graphRunner, err := e.compileHandleTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	e.graphRunner = graphRunner

	return e, nil
}

// HandleTurn processes one conversational turn. On a collaborator failure
// the error propagates untouched so the transport can surface a failure
// status distinct from any scripted reply; the session keeps its merged
// slots for a retry of the same turn.
func (e *Engine) HandleTurn(ctx context.Context, req contractx.TurnRequest) (contractx.TurnReply, error) {
	out, err := e.graphRunner.Invoke(ctx, nodex.GraphInput{
		SessionID: req.SessionID,
		Message:   req.Message,
		Role:      contractx.ParseRole(req.Role),
	})
	if err != nil {
		return contractx.TurnReply{}, err
	}
	return contractx.TurnReply{
		Reply: out.Reply,
		Slots: out.Slots,
	}, nil
}
