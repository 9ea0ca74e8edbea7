package lobby

import (
	"github.com/scoutfriends/scout-server/internal/protocol"
	"github.com/scoutfriends/scout-server/internal/types"
)

// outbox collects outbound messages while a lobby's lock is held and
// delivers them after it is released, so slow clients never extend the
// critical section. Recipients are captured at enqueue time.
type outbox struct {
	entries []outEntry
}

type outEntry struct {
	targets []types.ClientInterface
	msg     *protocol.Message
}

func (o *outbox) unicast(c types.ClientInterface, msg *protocol.Message) {
	if c == nil {
		return
	}
	o.entries = append(o.entries, outEntry{targets: []types.ClientInterface{c}, msg: msg})
}

func (o *outbox) send(targets []types.ClientInterface, msg *protocol.Message) {
	o.entries = append(o.entries, outEntry{targets: targets, msg: msg})
}

// flush delivers everything in enqueue order. Call without holding locks.
func (o *outbox) flush() {
	for _, e := range o.entries {
		for _, c := range e.targets {
			if c != nil {
				c.SendMessage(e.msg)
			}
		}
	}
	o.entries = nil
}
