// Package dialognode holds the individual nodes of the turn-handling graph.
// Each node is a small function over *GraphState; the dialogue engine wires
// them together with eino compose.
package dialognode

import (
	"errors"
	"strings"
	"time"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
	statex "github.com/pattarin-dev/unistock/agent/state"
)

var (
	ErrInvalidMessage = errors.New("message is empty")
	ErrInvalidSession = errors.New("session id is empty")
)

type GraphInput struct {
	SessionID string
	Message   string
	Role      contractx.Role
}

type GraphOutput struct {
	Reply string
	Slots statex.Slots
}

// GraphState flows through the turn graph. Text carries the lower-cased
// message every detector and keyword check runs against.
type GraphState struct {
	SessionID string
	Text      string
	Role      contractx.Role
	Now       time.Time

	Session *statex.Session

	// SizeGuidance is set when the current turn asked for sizing help; the
	// size gate treats it like an unset size and resets the slot.
	SizeGuidance bool

	Reply string
	// Terminal replies clear the session; clarification prompts do not.
	Terminal bool
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, ErrInvalidMessage
	}

	return &GraphState{
		SessionID: sessionID,
		Text:      strings.ToLower(message),
		Role:      in.Role,
		Now:       nowFn().UTC(),
	}, nil
}
