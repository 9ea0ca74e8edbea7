package card

import (
	"fmt"
	"math/rand/v2"
)

// MinValue and MaxValue bound both faces of every card.
const (
	MinValue = 1
	MaxValue = 10
)

// Card is a two-sided numbered card. Primary is the face currently
// showing; Secondary is the hidden face. Both are in [1,10] and never
// equal. A card is immutable; Flip returns a new value.
type Card struct {
	Primary   int
	Secondary int
}

// Flip returns the card shown the other way up.
func (c Card) Flip() Card {
	return Card{Primary: c.Secondary, Secondary: c.Primary}
}

// Matches reports whether o is the same physical card, regardless of
// which face is showing.
func (c Card) Matches(o Card) bool {
	return c == o || c == o.Flip()
}

// Valid reports whether both faces are in range and distinct.
func (c Card) Valid() bool {
	return c.Primary >= MinValue && c.Primary <= MaxValue &&
		c.Secondary >= MinValue && c.Secondary <= MaxValue &&
		c.Primary != c.Secondary
}

func (c Card) String() string {
	return fmt.Sprintf("%d/%d", c.Primary, c.Secondary)
}

// Deck is an ordered pile of cards.
type Deck []Card

// NewDeck enumerates the 45 unordered pairs {i,j} with 1 <= i < j <= 10,
// each with a uniformly random visible orientation, then applies the
// player-count removal rule: 4 players drop the {9,10} card, 3 players
// drop every card containing a 10.
func NewDeck(playerCount int) Deck {
	deck := make(Deck, 0, 45)
	for i := MinValue; i <= MaxValue; i++ {
		for j := i + 1; j <= MaxValue; j++ {
			c := Card{Primary: i, Secondary: j}
			if rand.IntN(2) == 0 {
				c = c.Flip()
			}
			deck = append(deck, c)
		}
	}

	switch playerCount {
	case 4:
		deck = deck.remove(func(c Card) bool {
			return c.Matches(Card{Primary: 9, Secondary: 10})
		})
	case 3:
		deck = deck.remove(func(c Card) bool {
			return c.Primary == MaxValue || c.Secondary == MaxValue
		})
	}

	return deck
}

func (d Deck) remove(drop func(Card) bool) Deck {
	kept := d[:0]
	for _, c := range d {
		if !drop(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

// Shuffle produces a uniformly random permutation in place.
func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Deal splits the deck into n contiguous chunks, preserving order within
// each chunk. The deck size must be evenly divisible by n; leftover
// cards are never silently discarded.
func (d Deck) Deal(n int) ([][]Card, error) {
	if n <= 0 {
		return nil, fmt.Errorf("can not deal to %d players", n)
	}
	if len(d)%n != 0 {
		return nil, fmt.Errorf("deck of %d cards does not divide evenly among %d players", len(d), n)
	}

	per := len(d) / n
	hands := make([][]Card, n)
	for i := range n {
		hand := make([]Card, per)
		copy(hand, d[i*per:(i+1)*per])
		hands[i] = hand
	}
	return hands, nil
}

// FlipAll returns a new hand with every card flipped, preserving order.
func FlipAll(hand []Card) []Card {
	flipped := make([]Card, len(hand))
	for i, c := range hand {
		flipped[i] = c.Flip()
	}
	return flipped
}
