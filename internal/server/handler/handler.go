// Package handler dispatches decoded wire messages to the lobby
// registry and game state machine. Handlers are thin: payloads are
// validated and converted here, the rules live in internal/game.
package handler

import (
	"errors"

	"github.com/scoutfriends/scout-server/internal/apperrors"
	"github.com/scoutfriends/scout-server/internal/game/lobby"
	"github.com/scoutfriends/scout-server/internal/logger"
	"github.com/scoutfriends/scout-server/internal/protocol"
	"github.com/scoutfriends/scout-server/internal/types"
)

// Deps are the handler's collaborators.
type Deps struct {
	LobbyManager *lobby.Manager
}

// Handler routes messages by type.
type Handler struct {
	lobbyManager *lobby.Manager
	handlers     map[protocol.MessageType]handlerFunc
}

type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler builds the dispatch table.
func NewHandler(deps Deps) *Handler {
	h := &Handler{
		lobbyManager: deps.LobbyManager,
	}
	h.initHandlers()
	return h
}

func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		protocol.MsgPing: func(c types.ClientInterface, _ *protocol.Message) { h.handlePing(c) },

		protocol.MsgCreateLobby: h.handleCreateLobby,
		protocol.MsgJoinLobby:   h.handleJoinLobby,

		protocol.MsgStartGame: h.handleStartGame,
		protocol.MsgFlipHand:  h.handleFlipHand,
		protocol.MsgKeepHand:  h.handleKeepHand,
		protocol.MsgPlayCards: h.handlePlayCards,
		protocol.MsgScoutCard: h.handleScoutCard,
		protocol.MsgEndTurn:   h.handleEndTurn,
	}
}

// Handle dispatches one message.
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	logger.Log.Warn("unknown message type", "type", msg.Type, "client", client.GetID())
	client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// sendGameError routes an error to the caller: rule violations arrive
// as player_error, everything else as error.
func sendGameError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		if gameErr.Rule {
			client.SendMessage(protocol.NewPlayerErrorMessageWithText(gameErr.Code, gameErr.Message))
		} else {
			client.SendMessage(protocol.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		}
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}

// lobbyByCode resolves a lobby reference, reporting failure to the caller.
func (h *Handler) lobbyByCode(client types.ClientInterface, code string) *lobby.Lobby {
	l := h.lobbyManager.Get(code)
	if l == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeLobbyNotFound))
		return nil
	}
	return l
}
