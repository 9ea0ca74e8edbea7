package handler

import (
	"github.com/scoutfriends/scout-server/internal/protocol"
	"github.com/scoutfriends/scout-server/internal/types"
)

func (h *Handler) handlePing(client types.ClientInterface) {
	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, nil))
}
