// Package convert translates between wire payloads and game types.
// Inbound values are validated here so the game core never sees an
// out-of-range card.
package convert

import (
	"fmt"

	"github.com/scoutfriends/scout-server/internal/game/card"
	"github.com/scoutfriends/scout-server/internal/protocol"
)

// CardToInfo converts a card to its wire form.
func CardToInfo(c card.Card) protocol.CardInfo {
	return protocol.CardInfo{Primary: c.Primary, Secondary: c.Secondary}
}

// CardsToInfos converts a hand to its wire form. Always returns a
// non-nil slice so empty hands encode as [] rather than null.
func CardsToInfos(cards []card.Card) []protocol.CardInfo {
	infos := make([]protocol.CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = CardToInfo(c)
	}
	return infos
}

// InfoToCard validates and converts a wire card.
func InfoToCard(info protocol.CardInfo) (card.Card, error) {
	c := card.Card{Primary: info.Primary, Secondary: info.Secondary}
	if !c.Valid() {
		return card.Card{}, fmt.Errorf("invalid card %d/%d", info.Primary, info.Secondary)
	}
	return c, nil
}

// InfosToCards validates and converts a wire card list.
func InfosToCards(infos []protocol.CardInfo) ([]card.Card, error) {
	cards := make([]card.Card, len(infos))
	for i, info := range infos {
		c, err := InfoToCard(info)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}
