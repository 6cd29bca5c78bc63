package log

import (
	"fmt"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wtwire"
)

// NewMessageEvent describes msg, whose encoding is size bytes long.
func NewMessageEvent(msg wtwire.Message, size int) *MessageEvent {
	t := wtwire.TypeOf(msg)
	ev := &MessageEvent{
		Type: uint16(t),
		Name: t.String(),
		Size: size,
	}

	switch m := msg.(type) {
	case *wtwire.Init:
		ev.Summary = fmt.Sprintf("features=%s chain=%s", m.ConnFeatures.String(), m.ChainHash)
	case *wtwire.Error:
		ev.Code = u16(uint16(m.Code))
		ev.Summary = fmt.Sprintf("code=%s data=%d bytes", m.Code, len(m.Data))
	case *wtwire.CreateSession:
		ev.Summary = fmt.Sprintf("blob_type=%s max_updates=%d reward_base=%d reward_rate=%d sweep_fee_rate=%s",
			m.BlobType, m.MaxUpdates, m.RewardBase, m.RewardRate, m.SweepFeeRate)
	case *wtwire.CreateSessionReply:
		ev.Code = u16(uint16(m.Code))
		ev.LastApplied = u16(m.LastApplied)
		ev.Summary = fmt.Sprintf("code=%s data=%d bytes", m.Code, len(m.Data))
	case *wtwire.StateUpdate:
		ev.SeqNum = u16(m.SeqNum)
		ev.LastApplied = u16(m.LastApplied)
		ev.Summary = fmt.Sprintf("hint=%s complete=%t blob=%d bytes",
			m.Hint, m.IsComplete != 0, len(m.EncryptedBlob))
	case *wtwire.StateUpdateReply:
		ev.Code = u16(uint16(m.Code))
		ev.LastApplied = u16(m.LastApplied)
		ev.Summary = "code=" + m.Code.String()
	case *wtwire.DeleteSessionReply:
		ev.Code = u16(uint16(m.Code))
		ev.Summary = "code=" + m.Code.String()
	}
	return ev
}

func u16(v uint16) *uint16 { return &v }
