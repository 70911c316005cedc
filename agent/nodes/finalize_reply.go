package dialognode

import (
	"fmt"
	"strings"

	contractx "github.com/pattarin-dev/unistock/agent/contract"
)

// FinalizeReply snapshots the slots alongside the scripted reply. The
// snapshot reflects the slots as the reply saw them, even when the session
// itself was just cleared.
func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil || in.Session == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Reply)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: policy produced an empty reply", contractx.ErrValidation)
	}
	return GraphOutput{
		Reply: reply,
		Slots: in.Session.Slots,
	}, nil
}
