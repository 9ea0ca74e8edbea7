package lobby

import (
	"math/rand/v2"
	"slices"

	"github.com/scoutfriends/scout-server/internal/apperrors"
	"github.com/scoutfriends/scout-server/internal/game/card"
	"github.com/scoutfriends/scout-server/internal/game/rule"
	"github.com/scoutfriends/scout-server/internal/logger"
	"github.com/scoutfriends/scout-server/internal/protocol"
	"github.com/scoutfriends/scout-server/internal/protocol/convert"
)

// StartGame moves the lobby from WaitingForPlayers to Setup: randomizes
// turn order, deals hands and hands the first turn out. Host only.
func (l *Lobby) StartGame(callerID string) error {
	return l.run(func(o *outbox) error { return l.startGameLocked(callerID, o) })
}

func (l *Lobby) startGameLocked(callerID string, o *outbox) error {
	if l.State != StateWaitingForPlayers {
		return apperrors.ErrGameInProgress
	}
	if l.findByIDLocked(callerID) == nil {
		return apperrors.ErrNotInLobby
	}
	if callerID != l.HostID {
		return apperrors.ErrNotHost
	}
	if len(l.Players) < l.MinPlayers {
		return apperrors.Newf(protocol.ErrCodeNotEnoughPlayers, false,
			"Need at least %d players to start", l.MinPlayers)
	}

	deck := card.NewDeck(len(l.Players))
	deck.Shuffle()
	hands, err := deck.Deal(len(l.Players))
	if err != nil {
		return err
	}

	l.State = StateSetup
	rand.Shuffle(len(l.Players), func(i, j int) {
		l.Players[i], l.Players[j] = l.Players[j], l.Players[i]
	})
	for i, p := range l.Players {
		p.Hand = hands[i]
		p.Keep = false
		p.Tokens = l.StartingTokens
		p.IsTokenMode = false
		p.IsTurn = i == 0
	}

	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgGameStarted, nil))
	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgInitialGameState, l.gameStateLocked()))
	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgGameMode, protocol.GameModePayload{Mode: l.State.String()}))
	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgGameLog, protocol.GameLogPayload{
		Message: "Game started, flip or keep your hand",
	}))

	logger.Log.Info("🎮 game started", "lobby", l.Code, "players", len(l.Players))
	return nil
}

// FlipHand replaces every card in the caller's hand with its flipped
// orientation. Allowed any number of times during Setup, until the
// caller keeps.
func (l *Lobby) FlipHand(callerID string) error {
	return l.run(func(o *outbox) error { return l.flipHandLocked(callerID, o) })
}

func (l *Lobby) flipHandLocked(callerID string, o *outbox) error {
	if l.State != StateSetup {
		return apperrors.ErrWrongPhase
	}
	p := l.findByIDLocked(callerID)
	if p == nil {
		return apperrors.ErrNotInLobby
	}
	if p.Keep {
		return apperrors.ErrAlreadyKept
	}

	p.Hand = card.FlipAll(p.Hand)
	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgUpdateGameState, l.gameStateLocked()))
	return nil
}

// KeepHand finalizes the caller's hand orientation. When the last
// player keeps, the game moves to InProgress.
func (l *Lobby) KeepHand(callerID string) error {
	return l.run(func(o *outbox) error { return l.keepHandLocked(callerID, o) })
}

func (l *Lobby) keepHandLocked(callerID string, o *outbox) error {
	if l.State != StateSetup {
		return apperrors.ErrWrongPhase
	}
	p := l.findByIDLocked(callerID)
	if p == nil {
		return apperrors.ErrNotInLobby
	}
	if p.Keep {
		return apperrors.ErrAlreadyKept
	}

	p.Keep = true
	if l.allKeptLocked() {
		l.beginPlayLocked(o)
	}
	return nil
}

// beginPlayLocked transitions Setup → InProgress once every hand is kept.
func (l *Lobby) beginPlayLocked(o *outbox) {
	l.State = StateInProgress
	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgGameMode, protocol.GameModePayload{Mode: l.State.String()}))
	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgGameLog, protocol.GameLogPayload{
		Message: "All players kept their hands",
	}))
	logger.Log.Info("🃏 all hands kept", "lobby", l.Code)
}

// PlayCards proposes a set or run against the current table play.
func (l *Lobby) PlayCards(callerID string, cards []card.Card) error {
	return l.run(func(o *outbox) error { return l.playCardsLocked(callerID, cards, o) })
}

func (l *Lobby) playCardsLocked(callerID string, cards []card.Card, o *outbox) error {
	if l.State != StateInProgress {
		return apperrors.ErrWrongPhase
	}
	p := l.findByIDLocked(callerID)
	if p == nil {
		return apperrors.ErrNotInLobby
	}
	if !p.IsTurn {
		return apperrors.ErrNotYourTurn
	}
	if len(cards) == 0 {
		return apperrors.ErrEmptyPlay
	}
	if !rule.IsSequentialInHand(p.Hand, cards) {
		return apperrors.ErrNotAdjacent
	}
	kind := rule.Classify(cards)
	if kind == rule.Invalid {
		return apperrors.ErrInvalidShape
	}
	if err := rule.Beats(l.CurrentPlay, rule.Classify(l.CurrentPlay), cards, kind); err != nil {
		return err
	}

	// The beaten play's card count is the reward.
	p.Points += len(l.CurrentPlay)

	// Clone before deleting: the selection may alias the hand.
	start := slices.Index(p.Hand, cards[0])
	l.CurrentPlay = slices.Clone(cards)
	l.CurrentPlayOwner = p.Name
	p.Hand = slices.Delete(p.Hand, start, start+len(cards))
	p.IsTokenMode = false

	l.advanceTurnLocked()
	if l.checkRoundEndLocked(o) {
		return nil
	}

	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgUpdateGameState, l.gameStateLocked()))
	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgSetPlay, protocol.SetPlayPayload{
		Owner: p.Name,
		Cards: convert.CardsToInfos(l.CurrentPlay),
	}))
	return nil
}

// ScoutCard takes a card from either edge of the current play into the
// caller's hand. The play's owner earns a point; the scouted card is
// inserted in the orientation the client supplied.
func (l *Lobby) ScoutCard(callerID string, c card.Card, insertIndex int) error {
	return l.run(func(o *outbox) error { return l.scoutCardLocked(callerID, c, insertIndex, o) })
}

func (l *Lobby) scoutCardLocked(callerID string, c card.Card, insertIndex int, o *outbox) error {
	if l.State != StateInProgress {
		return apperrors.ErrWrongPhase
	}
	p := l.findByIDLocked(callerID)
	if p == nil {
		return apperrors.ErrNotInLobby
	}
	if !p.IsTurn {
		return apperrors.ErrNotYourTurn
	}
	if len(l.CurrentPlay) == 0 {
		return apperrors.ErrNoCurrentPlay
	}

	// Only the edges of the play may be scouted. Matching is
	// orientation-insensitive; the client picks the final facing.
	var fromFront bool
	switch {
	case c.Matches(l.CurrentPlay[0]):
		fromFront = true
	case c.Matches(l.CurrentPlay[len(l.CurrentPlay)-1]):
		fromFront = false
	default:
		return apperrors.ErrBadScoutCard
	}
	if insertIndex < 0 || insertIndex > len(p.Hand) {
		return apperrors.ErrBadInsertIndex
	}

	if owner := l.findByNameLocked(l.CurrentPlayOwner); owner != nil {
		owner.Points++
	} else {
		// Owner vanished from the roster. The game must stay playable:
		// skip the award and let the caller know.
		logger.Log.Warn("current play owner missing", "lobby", l.Code, "owner", l.CurrentPlayOwner)
		o.unicast(p.Client, protocol.MustNewMessage(protocol.MsgGameLog, protocol.GameLogPayload{
			Message: "Play data got corrupted, take a free turn",
		}))
	}

	p.Hand = slices.Insert(p.Hand, insertIndex, c)
	if fromFront {
		l.CurrentPlay = l.CurrentPlay[1:]
	} else {
		l.CurrentPlay = l.CurrentPlay[:len(l.CurrentPlay)-1]
	}
	if len(l.CurrentPlay) == 0 {
		l.CurrentPlayOwner = ""
	}

	if p.Tokens == 0 {
		// No token to spend: the scout ends the turn outright.
		l.finishTurnLocked(o)
		return nil
	}

	p.Tokens--
	p.IsTokenMode = true
	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgUpdateGameState, l.gameStateLocked()))
	return nil
}

// EndTurn passes the turn after a scout, declining the token play.
func (l *Lobby) EndTurn(callerID string) error {
	return l.run(func(o *outbox) error { return l.endTurnLocked(callerID, o) })
}

func (l *Lobby) endTurnLocked(callerID string, o *outbox) error {
	if l.State != StateInProgress {
		return apperrors.ErrWrongPhase
	}
	p := l.findByIDLocked(callerID)
	if p == nil {
		return apperrors.ErrNotInLobby
	}
	if !p.IsTurn {
		return apperrors.ErrNotYourTurn
	}
	if !p.IsTokenMode {
		return apperrors.ErrNotTokenMode
	}

	p.IsTokenMode = false
	l.finishTurnLocked(o)
	return nil
}

// finishTurnLocked advances the turn and broadcasts the new state
// unless the round just ended.
func (l *Lobby) finishTurnLocked(o *outbox) {
	l.advanceTurnLocked()
	if l.checkRoundEndLocked(o) {
		return
	}
	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgUpdateGameState, l.gameStateLocked()))
}

func (l *Lobby) advanceTurnLocked() {
	current := slices.IndexFunc(l.Players, func(p *Player) bool { return p.IsTurn })
	if current == -1 {
		return
	}
	l.Players[current].IsTurn = false
	l.Players[(current+1)%len(l.Players)].IsTurn = true
}

// checkRoundEndLocked ends the round when a hand is empty or when the
// standing play survived a full rotation back to its owner. Players
// left holding a hand that is not one whole set or run pay its card
// count as a penalty.
func (l *Lobby) checkRoundEndLocked(o *outbox) bool {
	reason := ""
	for _, p := range l.Players {
		if len(p.Hand) == 0 {
			reason = p.Name + " played their last card"
			break
		}
	}
	if reason == "" && l.CurrentPlayOwner != "" {
		if cur := l.currentTurnPlayerLocked(); cur != nil && cur.Name == l.CurrentPlayOwner {
			reason = l.CurrentPlayOwner + "'s play survived a full round"
		}
	}
	if reason == "" {
		return false
	}

	for _, p := range l.Players {
		if len(p.Hand) > 0 && rule.Classify(p.Hand) == rule.Invalid {
			p.Points -= len(p.Hand)
		}
	}
	l.State = StateCompleted

	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgFinishGame, l.gameStateLocked()))
	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgGameLog, protocol.GameLogPayload{Message: "Game over: " + reason}))
	l.broadcastLocked(o, protocol.MustNewMessage(protocol.MsgGameMode, protocol.GameModePayload{Mode: l.State.String()}))

	logger.Log.Info("🏁 game finished", "lobby", l.Code, "reason", reason)
	return true
}
