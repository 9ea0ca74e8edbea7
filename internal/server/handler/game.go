package handler

import (
	"github.com/scoutfriends/scout-server/internal/protocol"
	"github.com/scoutfriends/scout-server/internal/protocol/convert"
	"github.com/scoutfriends/scout-server/internal/types"
)

func (h *Handler) handleStartGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.LobbyRefPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	l := h.lobbyByCode(client, payload.LobbyCode)
	if l == nil {
		return
	}
	if err := l.StartGame(client.GetID()); err != nil {
		sendGameError(client, err)
	}
}

func (h *Handler) handleFlipHand(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.LobbyRefPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	l := h.lobbyByCode(client, payload.LobbyCode)
	if l == nil {
		return
	}
	if err := l.FlipHand(client.GetID()); err != nil {
		sendGameError(client, err)
	}
}

func (h *Handler) handleKeepHand(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.LobbyRefPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	l := h.lobbyByCode(client, payload.LobbyCode)
	if l == nil {
		return
	}
	if err := l.KeepHand(client.GetID()); err != nil {
		sendGameError(client, err)
	}
}

func (h *Handler) handlePlayCards(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayCardsPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	cards, err := convert.InfosToCards(payload.Cards)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeInvalidMsg, err.Error()))
		return
	}

	l := h.lobbyByCode(client, payload.LobbyCode)
	if l == nil {
		return
	}
	if err := l.PlayCards(client.GetID(), cards); err != nil {
		sendGameError(client, err)
	}
}

func (h *Handler) handleScoutCard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ScoutCardPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	c, err := convert.InfoToCard(payload.Card)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeInvalidMsg, err.Error()))
		return
	}

	l := h.lobbyByCode(client, payload.LobbyCode)
	if l == nil {
		return
	}
	if err := l.ScoutCard(client.GetID(), c, payload.InsertIndex); err != nil {
		sendGameError(client, err)
	}
}

func (h *Handler) handleEndTurn(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.LobbyRefPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	l := h.lobbyByCode(client, payload.LobbyCode)
	if l == nil {
		return
	}
	if err := l.EndTurn(client.GetID()); err != nil {
		sendGameError(client, err)
	}
}
