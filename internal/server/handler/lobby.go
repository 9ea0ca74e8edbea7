package handler

import (
	"strings"

	"github.com/scoutfriends/scout-server/internal/protocol"
	"github.com/scoutfriends/scout-server/internal/types"
)

const maxNameLength = 20

// validName keeps display names printable and short. Uniqueness within
// a lobby is checked by the registry.
func validName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && len(name) <= maxNameLength
}

func (h *Handler) handleCreateLobby(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateLobbyPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	if !validName(payload.Name) {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeInvalidMsg, "Invalid player name"))
		return
	}

	// Leaving an old lobby first keeps a session in at most one lobby.
	if client.GetLobby() != "" {
		h.lobbyManager.HandleDisconnect(client)
	}

	h.lobbyManager.Create(client, strings.TrimSpace(payload.Name))
}

func (h *Handler) handleJoinLobby(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinLobbyPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	if !validName(payload.Name) {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeInvalidMsg, "Invalid player name"))
		return
	}

	if client.GetLobby() != "" {
		h.lobbyManager.HandleDisconnect(client)
	}

	if _, err := h.lobbyManager.Join(client, payload.LobbyCode, strings.TrimSpace(payload.Name)); err != nil {
		sendGameError(client, err)
	}
}
